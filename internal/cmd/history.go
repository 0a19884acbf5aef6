package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/haybale/internal/history"
)

// NewHistoryCommand creates the 'haybale history' command and its
// subcommands.
func NewHistoryCommand() *cobra.Command {
	var limit int
	var configPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent search invocations",
		Long: `History lists the most recent searches recorded in haybale's
query-history store, newest first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(cmd, limit, configPath)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of entries to show")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: .haybale/config.yaml)")

	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

func runHistoryShow(cmd *cobra.Command, limit int, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return &ExitError{Code: 2, Err: fmt.Errorf("load config: %w", err)}
	}

	out := cmd.OutOrStdout()
	if !cfg.History.Enabled {
		fmt.Fprintln(out, "history is disabled in configuration")
		return nil
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return &ExitError{Code: 2, Err: fmt.Errorf("open history store: %w", err)}
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		return &ExitError{Code: 2, Err: fmt.Errorf("read history: %w", err)}
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "no search history recorded yet")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%s  root=%s name=%q content=%q results=%d warnings=%d duration=%s\n",
			e.RanAt.Format("2006-01-02 15:04:05"),
			e.Root, e.NamePattern, e.ContentPattern,
			e.ResultCount, e.WarningCount,
			e.Duration.Round(time.Millisecond))
	}

	return nil
}

// newHistoryClearCommand creates the 'haybale history clear' command.
func newHistoryClearCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded search history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return &ExitError{Code: 2, Err: fmt.Errorf("load config: %w", err)}
			}

			store, err := history.NewStore(cfg.History.DBPath)
			if err != nil {
				return &ExitError{Code: 2, Err: fmt.Errorf("open history store: %w", err)}
			}
			defer store.Close()

			if err := store.Clear(); err != nil {
				return &ExitError{Code: 2, Err: fmt.Errorf("clear history: %w", err)}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: .haybale/config.yaml)")

	return cmd
}
