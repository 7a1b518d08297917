package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lerenn/git-todos/pkg/issue"
	"github.com/lerenn/git-todos/pkg/todo"
)

var (
	okColor   = color.New(color.FgGreen)
	skipColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

// Progress prints one line per processed marker.
type Progress struct {
	Out   io.Writer
	Err   io.Writer
	Quiet bool
}

// OnProgress is the synchronizer progress callback.
func (p *Progress) OnProgress(err error, result issue.Result, t *todo.Todo) {
	if err != nil {
		errColor.Fprintf(p.Err, "✘ %s: %v\n", t.Location(), err)
		return
	}
	if p.Quiet {
		return
	}

	switch {
	case result == nil:
		skipColor.Fprintf(p.Out, "- Skipped %q (%s)\n", t.Title, t.Location())
	case result.Kind() == issue.KindIssue:
		okColor.Fprintf(p.Out, "✔ Created issue #%d %q (%s)\n", result.IssueNumber(), t.Title, result.Link())
	default:
		okColor.Fprintf(p.Out, "✔ Commented issue #%d (%s)\n", result.IssueNumber(), result.Link())
	}
}

// Infof prints an informational line unless quiet.
func (p *Progress) Infof(format string, args ...interface{}) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.Out, "[git-todos] "+format+"\n", args...)
}

// Warnf prints a warning line.
func (p *Progress) Warnf(format string, args ...interface{}) {
	skipColor.Fprintf(p.Err, "[git-todos] WARNING: "+format+"\n", args...)
}
