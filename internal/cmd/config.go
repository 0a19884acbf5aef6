package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the 'haybale config' command and its
// subcommands.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect haybale configuration",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the 'haybale config show' command.
func newConfigShowCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return &ExitError{Code: 2, Err: fmt.Errorf("load config: %w", err)}
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return &ExitError{Code: 2, Err: fmt.Errorf("marshal config: %w", err)}
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: .haybale/config.yaml)")

	return cmd
}
