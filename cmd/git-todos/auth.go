package main

import (
	"fmt"
	"os"

	"github.com/lerenn/git-todos/cmd/git-todos/internal/cli"
	"github.com/spf13/cobra"
)

func createAuthCmd() *cobra.Command {
	var force bool

	authCmd := &cobra.Command{
		Use:   "auth [--force]",
		Short: "Authenticate against the configured issue service",
		Long: `Check the connection to the configured issue service.

When no access token is found, or with --force, git-todos asks for one and stores
it in the local git config once the connection works.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := cli.NewGitTodos(cli.Opts{})
			if err != nil {
				return err
			}

			name, err := g.Auth(cmd.Context(), force)
			if err != nil {
				return fmt.Errorf("connection to %s failed: %w", name, err)
			}

			p := &cli.Progress{Out: os.Stdout, Err: os.Stderr, Quiet: cli.Quiet}
			p.Infof("Connection to %s succeeded", name)
			return nil
		},
	}

	authCmd.Flags().BoolVarP(&force, "force", "f", false, "Force re-authentication")

	return authCmd
}
