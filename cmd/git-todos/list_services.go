package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lerenn/git-todos/cmd/git-todos/internal/cli"
	"github.com/lerenn/git-todos/pkg/service"
	"github.com/spf13/cobra"
)

func createListServicesCmd() *cobra.Command {
	var asJSON bool

	listCmd := &cobra.Command{
		Use:   "list-services [--json]",
		Short: "List the available issue services",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := cli.NewGitTodos(cli.Opts{})
			if err != nil {
				return err
			}

			return printServices(os.Stdout, g.ListServices(), asJSON)
		},
	}

	listCmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return listCmd
}

// printServices prints each service with its repository format.
func printServices(w io.Writer, metas []service.Meta, asJSON bool) error {
	if asJSON {
		byName := make(map[string]service.Meta, len(metas))
		for _, m := range metas {
			byName[m.Name] = m
		}
		return printJSON(w, byName)
	}

	for _, m := range metas {
		if m.Description != "" {
			fmt.Fprintf(w, "%s - %s\n", m.Name, m.Description)
		} else {
			fmt.Fprintln(w, m.Name)
		}
		repo := m.RepoFormat
		if repo == "" {
			repo = "Undocumented"
		}
		fmt.Fprintf(w, "    Repo format: %s\n", repo)
	}
	return nil
}
