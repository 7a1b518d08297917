// Package synchronizer routes extracted markers to the issue tracker, one at a time.
package synchronizer

import (
	"context"
	"fmt"

	"github.com/lerenn/git-todos/pkg/assignee"
	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/fs"
	"github.com/lerenn/git-todos/pkg/git"
	"github.com/lerenn/git-todos/pkg/issue"
	"github.com/lerenn/git-todos/pkg/logger"
	"github.com/lerenn/git-todos/pkg/prompt"
	"github.com/lerenn/git-todos/pkg/service"
	"github.com/lerenn/git-todos/pkg/skiplist"
	"github.com/lerenn/git-todos/pkg/todo"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=synchronizer.go -destination=mocks/synchronizer.gen.go -package=mocks

// ProgressFunc is called exactly once per processed Todo.
// result is nil when the Todo was skipped or failed.
type ProgressFunc func(err error, result issue.Result, t *todo.Todo)

// Synchronizer creates or comments issues for a list of Todos.
type Synchronizer interface {
	// Synchronize processes todos in order. results[i] belongs to todos[i]; a nil
	// result is a skip. On error the results stop at the failing Todo.
	Synchronize(ctx context.Context, repo string, todos []*todo.Todo) ([]issue.Result, []*todo.Todo, error)
}

// Params contains the collaborators of a Synchronizer.
type Params struct {
	Service    service.Service
	Git        git.Git
	FS         fs.FS
	SkipList   skiplist.SkipList
	Assignees  assignee.Resolver
	Prompt     prompt.Prompter
	Config     config.Config
	Logger     logger.Logger
	RepoPath   string
	OnProgress ProgressFunc
}

type realSynchronizer struct {
	service    service.Service
	git        git.Git
	fs         fs.FS
	skipList   skiplist.SkipList
	assignees  assignee.Resolver
	prompt     prompt.Prompter
	logger     logger.Logger
	repoPath   string
	onProgress ProgressFunc

	context       int
	signature     string
	confirmCreate bool
}

// New creates a Synchronizer.
func New(params Params) Synchronizer {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	onProgress := params.OnProgress
	if onProgress == nil {
		onProgress = func(error, issue.Result, *todo.Todo) {}
	}

	return &realSynchronizer{
		service:       params.Service,
		git:           params.Git,
		fs:            params.FS,
		skipList:      params.SkipList,
		assignees:     params.Assignees,
		prompt:        params.Prompt,
		logger:        l,
		repoPath:      params.RepoPath,
		onProgress:    onProgress,
		context:       params.Config.Int(config.KeyContext, 0),
		signature:     params.Config.String(config.KeySignature),
		confirmCreate: params.Config.Bool(config.KeyConfirmCreate),
	}
}

// Synchronize processes todos in order.
func (s *realSynchronizer) Synchronize(
	ctx context.Context, repo string, todos []*todo.Todo,
) ([]issue.Result, []*todo.Todo, error) {
	results := make([]issue.Result, 0, len(todos))

	for _, t := range todos {
		if err := ctx.Err(); err != nil {
			return results, todos, err
		}

		if s.assignees != nil {
			t.Assignee = s.assignees.Resolve(t.File, t.Line)
		}

		result, err := s.process(ctx, repo, t)
		if err != nil {
			s.onProgress(err, nil, t)
			return results, todos, fmt.Errorf("%s: %w", t.Location(), err)
		}

		s.onProgress(nil, result, t)
		results = append(results, result)
	}

	return results, todos, nil
}
