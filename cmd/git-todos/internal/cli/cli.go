// Package cli provides common configuration and utility functions for the git-todos CLI.
package cli

import (
	"fmt"

	"github.com/lerenn/git-todos/pkg/dependencies"
	"github.com/lerenn/git-todos/pkg/gittodos"
	"github.com/lerenn/git-todos/pkg/logger"
	"github.com/lerenn/git-todos/pkg/prompt"
	"github.com/lerenn/git-todos/pkg/synchronizer"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// DryRun replaces every issue tracker call with placeholders.
	DryRun bool
)

// Opts contains the options of a GitTodos instance built for a command.
type Opts struct {
	// TTYPrompt reads answers from the terminal, for commands whose stdin is taken.
	TTYPrompt  bool
	OnProgress synchronizer.ProgressFunc
}

// NewGitTodos creates a GitTodos instance for the current directory and checks the environment.
func NewGitTodos(opts Opts) (gittodos.GitTodos, error) {
	l := logger.NewNoopLogger()
	if Verbose {
		l = logger.NewVerboseLogger()
	}

	p := prompt.NewPrompt()
	if opts.TTYPrompt {
		p = prompt.NewTTYPrompt()
	}

	g, err := gittodos.NewGitTodos(gittodos.NewGitTodosParams{
		Dependencies: dependencies.New().WithLogger(l).WithPrompt(p),
		OnProgress:   opts.OnProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	if err := g.CheckEnv(); err != nil {
		return nil, err
	}

	return g, nil
}
