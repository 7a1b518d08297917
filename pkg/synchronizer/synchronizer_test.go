//go:build unit

package synchronizer

import (
	"context"
	"errors"
	"testing"

	assigneemocks "github.com/lerenn/git-todos/pkg/assignee/mocks"
	"github.com/lerenn/git-todos/pkg/config"
	fsmocks "github.com/lerenn/git-todos/pkg/fs/mocks"
	gitmocks "github.com/lerenn/git-todos/pkg/git/mocks"
	"github.com/lerenn/git-todos/pkg/issue"
	"github.com/lerenn/git-todos/pkg/prompt"
	promptmocks "github.com/lerenn/git-todos/pkg/prompt/mocks"
	"github.com/lerenn/git-todos/pkg/service"
	servicemocks "github.com/lerenn/git-todos/pkg/service/mocks"
	skiplistmocks "github.com/lerenn/git-todos/pkg/skiplist/mocks"
	"github.com/lerenn/git-todos/pkg/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const fileURL = "https://github.com/octo/repo/blob/abc123/main.go#L3"

type progressCall struct {
	err    error
	result issue.Result
	todo   *todo.Todo
}

type fixture struct {
	service   *servicemocks.MockService
	git       *gitmocks.MockGit
	fs        *fsmocks.MockFS
	skipList  *skiplistmocks.MockSkipList
	assignees *assigneemocks.MockResolver
	prompt    *promptmocks.MockPrompter
	progress  []progressCall
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &fixture{
		service:   servicemocks.NewMockService(ctrl),
		git:       gitmocks.NewMockGit(ctrl),
		fs:        fsmocks.NewMockFS(ctrl),
		skipList:  skiplistmocks.NewMockSkipList(ctrl),
		assignees: assigneemocks.NewMockResolver(ctrl),
		prompt:    promptmocks.NewMockPrompter(ctrl),
	}
}

func (f *fixture) synchronizer(values map[string]string) Synchronizer {
	return New(Params{
		Service:   f.service,
		Git:       f.git,
		FS:        f.fs,
		SkipList:  f.skipList,
		Assignees: f.assignees,
		Prompt:    f.prompt,
		Config:    config.New(values),
		RepoPath:  "/repo",
		OnProgress: func(err error, result issue.Result, t *todo.Todo) {
			f.progress = append(f.progress, progressCall{err: err, result: result, todo: t})
		},
	})
}

func newTodo(title string) *todo.Todo {
	return &todo.Todo{File: "main.go", SHA: "abc123", Line: 3, Title: title, Label: "TODO"}
}

func TestSynchronize_InlineIssueIsCommented(t *testing.T) {
	f := newFixture(t)
	s := f.synchronizer(map[string]string{"context": "0"})

	td := newTodo("Fix parser")
	td.Issue = 12
	comment := issue.NewComment(12, "https://github.com/octo/repo/issues/12#issuecomment-1")

	f.assignees.EXPECT().Resolve("main.go", 3).Return("")
	f.service.EXPECT().GetFileURL("octo/repo", "main.go", "abc123", 3).Return(fileURL)
	f.service.EXPECT().CommentIssue(gomock.Any(), "octo/repo", 12, "Ref. [main.go:3]("+fileURL+")").Return(comment, nil)

	results, todos, err := s.Synchronize(context.Background(), "octo/repo", []*todo.Todo{td})
	require.NoError(t, err)
	assert.Equal(t, []issue.Result{comment}, results)
	assert.Equal(t, []*todo.Todo{td}, todos)
	require.Len(t, f.progress, 1)
	assert.NoError(t, f.progress[0].err)
	assert.Equal(t, comment, f.progress[0].result)
}

func TestSynchronize_SkipListHit(t *testing.T) {
	f := newFixture(t)
	s := f.synchronizer(nil)

	td := newTodo("Fix parser")
	f.assignees.EXPECT().Resolve("main.go", 3).Return("")
	f.skipList.EXPECT().ShouldSkip("Fix parser").Return(true, nil)

	results, _, err := s.Synchronize(context.Background(), "octo/repo", []*todo.Todo{td})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0])
	require.Len(t, f.progress, 1)
	assert.Nil(t, f.progress[0].result)
}

func TestSynchronize_FoundIssue(t *testing.T) {
	tests := []struct {
		name      string
		labels    []string
		expectTag bool
	}{
		{name: "missing label is added", labels: []string{"bug"}, expectTag: true},
		{name: "existing label is kept", labels: []string{"todo"}, expectTag: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			s := f.synchronizer(map[string]string{"signature": "-- bot"})

			td := newTodo("Fix parser")
			found := issue.NewIssue(7, "https://github.com/octo/repo/issues/7", "Fix parser", tt.labels)
			comment := issue.NewComment(7, "https://github.com/octo/repo/issues/7#issuecomment-2")

			f.assignees.EXPECT().Resolve("main.go", 3).Return("")
			f.skipList.EXPECT().ShouldSkip("Fix parser").Return(false, nil)
			f.service.EXPECT().FindIssueByTitle(gomock.Any(), "octo/repo", "Fix parser").Return(found, nil)
			f.service.EXPECT().GetFileURL("octo/repo", "main.go", "abc123", 3).Return(fileURL)
			f.service.EXPECT().CommentIssue(gomock.Any(), "octo/repo", 7, "Ref. [main.go:3]("+fileURL+")\n-- bot").
				Return(comment, nil)
			if tt.expectTag {
				f.service.EXPECT().TagIssue(gomock.Any(), "octo/repo", 7, "TODO").Return(found, nil)
			}

			results, _, err := s.Synchronize(context.Background(), "octo/repo", []*todo.Todo{td})
			require.NoError(t, err)
			assert.Equal(t, []issue.Result{comment}, results)
			assert.Equal(t, 7, td.Issue)
		})
	}
}

func TestSynchronize_TagFailureFailsTheTodo(t *testing.T) {
	f := newFixture(t)
	s := f.synchronizer(nil)

	td := newTodo("Fix parser")
	found := issue.NewIssue(7, "u", "Fix parser", nil)
	tagErr := errors.New("forbidden")

	f.assignees.EXPECT().Resolve("main.go", 3).Return("")
	f.skipList.EXPECT().ShouldSkip("Fix parser").Return(false, nil)
	f.service.EXPECT().FindIssueByTitle(gomock.Any(), "octo/repo", "Fix parser").Return(found, nil)
	f.service.EXPECT().GetFileURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fileURL)
	f.service.EXPECT().CommentIssue(gomock.Any(), "octo/repo", 7, gomock.Any()).
		Return(issue.NewComment(7, "c"), nil).AnyTimes()
	f.service.EXPECT().TagIssue(gomock.Any(), "octo/repo", 7, "TODO").Return(nil, tagErr)

	results, _, err := s.Synchronize(context.Background(), "octo/repo", []*todo.Todo{td})
	assert.ErrorIs(t, err, tagErr)
	assert.Empty(t, results)
	require.Len(t, f.progress, 1)
	assert.ErrorIs(t, f.progress[0].err, tagErr)
}

func TestSynchronize_CreateWithoutConfirmation(t *testing.T) {
	f := newFixture(t)
	s := f.synchronizer(map[string]string{"confirm-create": "false"})

	td := newTodo("Fix parser")
	created := issue.NewIssue(8, "https://github.com/octo/repo/issues/8", "Fix parser", []string{"TODO"})

	f.assignees.EXPECT().Resolve("main.go", 3).Return("alice")
	f.skipList.EXPECT().ShouldSkip("Fix parser").Return(false, nil)
	f.service.EXPECT().FindIssueByTitle(gomock.Any(), "octo/repo", "Fix parser").Return(nil, nil)
	f.service.EXPECT().GetFileURL("octo/repo", "main.go", "abc123", 3).Return(fileURL)
	f.service.EXPECT().CreateIssue(gomock.Any(), "octo/repo", service.CreateIssueParams{
		Title:    "Fix parser",
		Body:     "Ref. [main.go:3](" + fileURL + ")",
		Labels:   []string{"TODO"},
		Assignee: "alice",
	}).Return(created, nil)

	results, _, err := s.Synchronize(context.Background(), "octo/repo", []*todo.Todo{td})
	require.NoError(t, err)
	assert.Equal(t, []issue.Result{created}, results)
	assert.Equal(t, "alice", td.Assignee)
}

func TestSynchronize_CreateChoices(t *testing.T) {
	tests := []struct {
		name          string
		choice        prompt.CreateChoice
		setup         func(f *fixture)
		expectCreated bool
		expectErr     error
	}{
		{
			name:   "create keeps the title",
			choice: prompt.ChoiceCreate,
			setup: func(f *fixture) {
				f.service.EXPECT().GetFileURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fileURL)
				f.service.EXPECT().CreateIssue(gomock.Any(), "octo/repo", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, p service.CreateIssueParams) (*issue.Issue, error) {
						return issue.NewIssue(9, "u", p.Title, p.Labels), nil
					})
			},
			expectCreated: true,
		},
		{
			name:   "edit changes the title",
			choice: prompt.ChoiceEdit,
			setup: func(f *fixture) {
				f.prompt.EXPECT().PromptForTitle("Fix parser").Return("Rewrite parser", nil)
				f.service.EXPECT().GetFileURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fileURL)
				f.service.EXPECT().CreateIssue(gomock.Any(), "octo/repo", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, p service.CreateIssueParams) (*issue.Issue, error) {
						if p.Title != "Rewrite parser" {
							return nil, errors.New("unexpected title " + p.Title)
						}
						return issue.NewIssue(9, "u", p.Title, p.Labels), nil
					})
			},
			expectCreated: true,
		},
		{
			name:   "skip does nothing",
			choice: prompt.ChoiceSkip,
			setup:  func(_ *fixture) {},
		},
		{
			name:   "skip and remember updates the skip list",
			choice: prompt.ChoiceSkipAndRemember,
			setup: func(f *fixture) {
				f.skipList.EXPECT().Remember("Fix parser").Return(nil)
			},
		},
		{
			name:      "abort interrupts",
			choice:    prompt.ChoiceAbort,
			setup:     func(_ *fixture) {},
			expectErr: ErrInterrupted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			s := f.synchronizer(map[string]string{"confirm-create": "true"})

			td := newTodo("Fix parser")
			f.assignees.EXPECT().Resolve("main.go", 3).Return("")
			f.skipList.EXPECT().ShouldSkip("Fix parser").Return(false, nil)
			f.service.EXPECT().FindIssueByTitle(gomock.Any(), "octo/repo", "Fix parser").Return(nil, nil)
			f.prompt.EXPECT().PromptCreateChoice("Fix parser (main.go:3)").Return(tt.choice, nil)
			tt.setup(f)

			results, _, err := s.Synchronize(context.Background(), "octo/repo", []*todo.Todo{td})
			require.Len(t, f.progress, 1)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Empty(t, results)
				assert.ErrorIs(t, f.progress[0].err, tt.expectErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, results, 1)
			if tt.expectCreated {
				assert.Equal(t, issue.KindIssue, results[0].Kind())
				assert.Equal(t, 9, results[0].IssueNumber())
			} else {
				assert.Nil(t, results[0])
			}
		})
	}
}

func TestSynchronize_PromptQuitInterrupts(t *testing.T) {
	f := newFixture(t)
	s := f.synchronizer(map[string]string{"confirm-create": "true"})

	f.assignees.EXPECT().Resolve("main.go", 3).Return("")
	f.skipList.EXPECT().ShouldSkip("Fix parser").Return(false, nil)
	f.service.EXPECT().FindIssueByTitle(gomock.Any(), "octo/repo", "Fix parser").Return(nil, nil)
	f.prompt.EXPECT().PromptCreateChoice(gomock.Any()).Return(prompt.CreateChoice(""), prompt.ErrNoSelection)

	_, _, err := s.Synchronize(context.Background(), "octo/repo", []*todo.Todo{newTodo("Fix parser")})
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestSynchronize_StopsAtFirstError(t *testing.T) {
	f := newFixture(t)
	s := f.synchronizer(nil)

	first := newTodo("First")
	second := newTodo("Second")
	second.Line = 10
	third := newTodo("Third")
	third.Line = 20
	backendErr := errors.New("boom")

	f.assignees.EXPECT().Resolve("main.go", gomock.Any()).Return("").Times(2)
	f.skipList.EXPECT().ShouldSkip("First").Return(true, nil)
	f.skipList.EXPECT().ShouldSkip("Second").Return(false, nil)
	f.service.EXPECT().FindIssueByTitle(gomock.Any(), "octo/repo", "Second").Return(nil, backendErr)

	results, todos, err := s.Synchronize(context.Background(), "octo/repo", []*todo.Todo{first, second, third})
	assert.ErrorIs(t, err, backendErr)
	assert.Contains(t, err.Error(), "main.go:10")
	assert.Len(t, results, 1)
	assert.Len(t, todos, 3)
	require.Len(t, f.progress, 2)
	assert.NoError(t, f.progress[0].err)
	assert.ErrorIs(t, f.progress[1].err, backendErr)
	assert.Same(t, second, f.progress[1].todo)
}

func TestSynchronize_CommentTextWithContext(t *testing.T) {
	f := newFixture(t)
	s := f.synchronizer(map[string]string{"context": "1", "signature": "sig"})

	td := newTodo("Fix parser")
	td.Issue = 4
	content := "\npackage main\n\n// TODO Fix parser\nfunc main() {}\n}\n\n"

	f.assignees.EXPECT().Resolve("main.go", 3).Return("")
	f.service.EXPECT().GetFileURL("octo/repo", "main.go", "abc123", 3).Return(fileURL)
	f.git.EXPECT().Dir("/repo", "..").Return("/repo", nil)
	f.fs.EXPECT().ReadFile("/repo/main.go").Return([]byte(content), nil)
	f.service.EXPECT().CommentIssue(gomock.Any(), "octo/repo", 4,
		"Ref. [main.go:3]("+fileURL+")\n\n```go\n// TODO Fix parser\nfunc main() {}\n…\n```\n\nsig").
		Return(issue.NewComment(4, "c"), nil)

	_, _, err := s.Synchronize(context.Background(), "octo/repo", []*todo.Todo{td})
	require.NoError(t, err)
}

func TestSynchronize_CommentTextReadFailure(t *testing.T) {
	f := newFixture(t)
	s := f.synchronizer(map[string]string{"context": "3"})

	td := newTodo("Fix parser")
	td.Issue = 4

	f.assignees.EXPECT().Resolve("main.go", 3).Return("")
	f.service.EXPECT().GetFileURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fileURL)
	f.git.EXPECT().Dir("/repo", "..").Return("/repo", nil)
	f.fs.EXPECT().ReadFile("/repo/main.go").Return(nil, errors.New("gone"))

	_, _, err := s.Synchronize(context.Background(), "octo/repo", []*todo.Todo{td})
	assert.ErrorIs(t, err, ErrReadSource)
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		line     int
		context  int
		expected string
	}{
		{name: "more lines follow", content: "a\nb\nc\nd\n", line: 1, context: 1, expected: "a\nb\n…"},
		{name: "reaches the end", content: "a\nb\nc\n", line: 2, context: 1, expected: "b\nc"},
		{name: "past the end", content: "a\nb\n", line: 2, context: 5, expected: "b"},
		{name: "windows line breaks", content: "a\r\nb\r\nc", line: 1, context: 1, expected: "a\nb\n…"},
		{name: "line outside of file", content: "a\n", line: 4, context: 2, expected: ""},
		{name: "leading blank lines", content: "\n\npackage x\n// TODO fix it\nfunc f() {}\n", line: 4, context: 0, expected: "// TODO fix it\n…"},
		{name: "leading blank lines with context", content: "\n\npackage x\n// TODO fix it\nfunc f() {}\n", line: 4, context: 1, expected: "// TODO fix it\nfunc f() {}"},
		{name: "trailing blank lines", content: "a\nb\n\n\n", line: 1, context: 1, expected: "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, excerpt(tt.content, tt.line, tt.context))
		})
	}
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "go", language("pkg/main.go"))
	assert.Equal(t, "js", language("lib/todos.js"))
	assert.Equal(t, "", language("Makefile"))
}
