package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/lerenn/git-todos/cmd/git-todos/internal/cli"
	"github.com/lerenn/git-todos/pkg/gittodos"
	"github.com/spf13/cobra"
)

func createConfigCmd() *cobra.Command {
	var unset, asJSON bool
	var opts gittodos.ConfigOpts

	configCmd := &cobra.Command{
		Use:   "config [option] [value]",
		Short: "Get, set or list git-todos options",
		Long: `Get, set or list the git-todos options stored in the local git config.

Examples:
  git-todos config                       # List options
  git-todos config --defaults --json     # List options with default values, as JSON
  git-todos config repo octo/project     # Set an option
  git-todos config context               # Get an option
  git-todos config context --unset       # Remove an option`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := cli.NewGitTodos(cli.Opts{})
			if err != nil {
				return err
			}

			switch {
			case len(args) == 0:
				options, err := g.ConfigList(opts)
				if err != nil {
					return err
				}
				return printOptions(os.Stdout, options, asJSON)
			case unset:
				return g.ConfigUnset(args[0], opts)
			case len(args) == 1:
				value, err := g.ConfigGet(args[0], opts)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(os.Stdout, map[string]string{args[0]: value})
				}
				fmt.Println(value)
				return nil
			default:
				return g.ConfigSet(args[0], args[1], opts)
			}
		},
	}

	configCmd.Flags().BoolVar(&unset, "unset", false, "Remove option")
	configCmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	configCmd.Flags().BoolVar(&opts.Extra, "extra", false, "Include extra options (not used by git-todos)")
	configCmd.Flags().BoolVar(&opts.Defaults, "defaults", false, "Use default values instead of hiding unset options")

	return configCmd
}

// printOptions prints options sorted by key, one "key value" per line.
func printOptions(w io.Writer, options map[string]string, asJSON bool) error {
	if asJSON {
		return printJSON(w, options)
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s %s\n", k, options[k])
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
