// Package main provides the command-line interface for the git-todos application.
package main

import (
	"fmt"
	"os"

	"github.com/lerenn/git-todos/cmd/git-todos/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-todos",
		Short: "git-todos - issues from TODO markers",
		Long: `Create or comment issues for the TODO markers added by your commits.

git-todos runs as a git pre-push hook: every added line holding a marker such as
TODO or FIXME is matched against the issue tracker, then a new issue is created or
the existing one is commented.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return cli.ErrNoCommand
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&cli.DryRun, "dry-run", false, "Do not contact the issue service")

	// Add subcommands
	rootCmd.AddCommand(
		createInitCmd(),
		createHookCmd(),
		createConfigCmd(),
		createAuthCmd(),
		createListServicesCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[git-todos] %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
