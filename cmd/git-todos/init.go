package main

import (
	"os"

	"github.com/lerenn/git-todos/cmd/git-todos/internal/cli"
	"github.com/lerenn/git-todos/pkg/prehook"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var uninstall, force bool

	initCmd := &cobra.Command{
		Use:   "init [--uninstall] [--force]",
		Short: "Install the git-todos pre-push hook",
		Long: `Install the git-todos pre-push hook in the current repository.

Flags:
  --uninstall   Remove the hook, or only the git-todos command from a modified hook
  --force       Remove the hook even if modified on uninstall, or add the command
                to a hook that already holds it on install`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := cli.NewGitTodos(cli.Opts{})
			if err != nil {
				return err
			}

			var result prehook.Result
			if uninstall {
				result, err = g.UninstallHook(force)
			} else {
				result, err = g.InstallHook(force)
			}
			if err != nil {
				return err
			}

			p := &cli.Progress{Out: os.Stdout, Err: os.Stderr, Quiet: cli.Quiet}
			if result.Warning != "" {
				p.Warnf("%s", result.Warning)
			}
			p.Infof("Hook %s: %s", result.Action, result.File)
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&uninstall, "uninstall", "u", false, "Uninstall the git-todos hook")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Force the hook installation or removal")

	return initCmd
}
