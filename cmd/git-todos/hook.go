package main

import (
	"os"

	"github.com/lerenn/git-todos/cmd/git-todos/internal/cli"
	"github.com/lerenn/git-todos/pkg/gittodos"
	"github.com/spf13/cobra"
)

func createHookCmd() *cobra.Command {
	var remote, revRange string

	hookCmd := &cobra.Command{
		Use:    "_hook [--remote <remote>] [--range <range>]",
		Short:  "Analyze pushed commits (called by the pre-push hook)",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := &cli.Progress{Out: os.Stdout, Err: os.Stderr, Quiet: cli.Quiet}

			g, err := cli.NewGitTodos(cli.Opts{TTYPrompt: revRange == "", OnProgress: p.OnProgress})
			if err != nil {
				return err
			}

			report, err := g.PrePush(cmd.Context(), gittodos.PrePushOpts{
				Remote: remote,
				Range:  revRange,
				Stdin:  os.Stdin,
				DryRun: cli.DryRun,
			})
			printPrePushReport(p, report)
			return err
		},
	}

	hookCmd.Flags().StringVarP(&remote, "remote", "r", "", "Remote to which the push is being done")
	hookCmd.Flags().StringVarP(&revRange, "range", "R", "",
		"Commits range to analyze, git hook data is read from standard input otherwise")

	return hookCmd
}

func printPrePushReport(p *cli.Progress, report gittodos.PrePushReport) {
	if report.Ignored != "" {
		p.Infof("Skipped: %s", report.Ignored)
	}

	for _, r := range report.Ranges {
		if r.Injection == nil {
			continue
		}
		for _, w := range r.Injection.Warnings {
			p.Warnf("%s", w)
		}
		if r.Injection.Committed {
			p.Infof("Issue numbers injected in %d file(s) and committed, push again to include them", len(r.Injection.Files))
		}
	}
}
