package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for haybale.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "haybale",
		Short: "Recursive file-search engine",
		Long: `Haybale walks a directory tree matching file names and file contents
against wildcard or regular-expression patterns, filtered by size, date
and hidden-file rules, and streams matches and diagnostics as it goes.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text.
		SilenceUsage: true,
	}

	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewConfigCommand())

	return cmd
}
