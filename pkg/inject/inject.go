// Package inject writes the issue numbers resolved during a run back into the sources.
package inject

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/git-todos/pkg/fs"
	"github.com/lerenn/git-todos/pkg/git"
	"github.com/lerenn/git-todos/pkg/issue"
	"github.com/lerenn/git-todos/pkg/logger"
	"github.com/lerenn/git-todos/pkg/todo"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=inject.go -destination=mocks/inject.gen.go -package=mocks

// CommitMessage is the message of the commit holding the injected numbers.
const CommitMessage = "[git-todos] Inject issue numbers"

// StashMessage labels the stash entry created around the injection.
const StashMessage = "git-todos: local changes saved before issue injection"

// Injector splices "#<issue> " markers in front of synchronized titles.
type Injector interface {
	// Run injects the issue number of results[i] into todos[i]. It never fails:
	// every problem is reported as a Warning.
	Run(todos []*todo.Todo, results []issue.Result) Report
}

// Report is the outcome of an injection pass.
type Report struct {
	// Files are the absolute paths of the rewritten files.
	Files     []string
	Committed bool
	Warnings  []Warning
}

// Warning describes an injection failure and how to fix it by hand.
type Warning struct {
	File  string
	Line  int
	Issue int
	Err   error
}

// String returns the warning with a manual fix-up instruction.
func (w Warning) String() string {
	switch {
	case w.File == "" && w.Issue == 0:
		return fmt.Sprintf("%v (check 'git stash list' and the last commit)", w.Err)
	case w.Issue == 0:
		return fmt.Sprintf("%s: %v", w.File, w.Err)
	default:
		return fmt.Sprintf("%s:%d: %v (add \"#%d \" before the marker title manually)", w.File, w.Line, w.Err, w.Issue)
	}
}

type realInjector struct {
	git      git.Git
	fs       fs.FS
	logger   logger.Logger
	repoPath string
}

// New creates an Injector working on the repository at repoPath.
func New(g git.Git, f fs.FS, repoPath string, l logger.Logger) Injector {
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realInjector{git: g, fs: f, logger: l, repoPath: repoPath}
}

// Run stashes local changes, injects every pair, commits and restores the stash.
func (i *realInjector) Run(todos []*todo.Todo, results []issue.Result) (report Report) {
	dirty, err := i.git.IsDirty(i.repoPath)
	if err != nil {
		report.warn(Warning{Err: fmt.Errorf("%w: %w", ErrStash, err)})
		return report
	}

	if dirty {
		i.logger.Logf("Stashing local changes before injection")
		if err := i.git.StashSave(i.repoPath, StashMessage); err != nil {
			report.warn(Warning{Err: fmt.Errorf("%w: %w", ErrStash, err)})
			return report
		}
		defer func() {
			if err := i.git.StashPop(i.repoPath); err != nil {
				report.warn(Warning{Err: fmt.Errorf("%w: %w", ErrUnstash, err)})
			}
		}()
	}

	injected := i.injectAll(pairs(todos, results), &report)
	i.commit(injected, &report)

	return report
}

func (r *Report) warn(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// commit stages and commits the rewritten files.
func (i *realInjector) commit(injected []pair, report *Report) {
	if len(report.Files) == 0 {
		return
	}

	err := i.git.Add(i.repoPath, report.Files...)
	if err == nil {
		err = i.git.Commit(i.repoPath, CommitMessage)
	}
	if err != nil {
		// The numbers are on disk but not committed.
		for _, p := range injected {
			report.warn(Warning{File: p.todo.File, Line: p.todo.Line, Issue: p.issue, Err: fmt.Errorf("%w: %w", ErrCommit, err)})
		}
		return
	}

	report.Committed = true
	i.logger.Logf("Committed injected issue numbers in %d file(s)", len(report.Files))
}

type pair struct {
	todo  *todo.Todo
	issue int
}

// pairs returns the aligned entries that carry a real issue number.
func pairs(todos []*todo.Todo, results []issue.Result) []pair {
	var out []pair
	for idx, r := range results {
		if idx >= len(todos) || r == nil {
			continue
		}
		if n := r.IssueNumber(); n > 0 {
			out = append(out, pair{todo: todos[idx], issue: n})
		}
	}
	return out
}

func (i *realInjector) root() (string, error) {
	return i.git.Dir(i.repoPath, "..")
}

func (i *realInjector) absPath(root, file string) string {
	return filepath.Join(root, filepath.FromSlash(file))
}
