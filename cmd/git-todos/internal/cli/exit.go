package cli

import (
	"errors"
	"strings"

	"github.com/lerenn/git-todos/pkg/gittodos"
	"github.com/lerenn/git-todos/pkg/prehook"
	"github.com/lerenn/git-todos/pkg/synchronizer"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitEnvironment  = 2
	ExitHookConflict = 5
	ExitInterrupted  = 127
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, synchronizer.ErrInterrupted), errors.Is(err, ErrNoCommand):
		return ExitInterrupted
	case errors.Is(err, gittodos.ErrGitNotFound):
		return ExitEnvironment
	case errors.Is(err, prehook.ErrAlreadyInstalled),
		errors.Is(err, prehook.ErrNotInstalled),
		errors.Is(err, prehook.ErrNoHook):
		return ExitHookConflict
	case strings.HasPrefix(err.Error(), "unknown command"):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}
