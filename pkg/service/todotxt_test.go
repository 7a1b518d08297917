//go:build unit

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/fs"
	"github.com/lerenn/git-todos/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTodoTxt(t *testing.T) {
	content := "(A) 2024-01-02 Call mom +family @phone\n" +
		"\n" +
		"x 2024-02-01 2024-01-01 retry logic @TODO\n" +
		"plain task\n"

	tasks := parseTodoTxt(content)
	require.Len(t, tasks, 3)

	assert.Equal(t, &todoTxtTask{
		Priority:     "A",
		CreationDate: "2024-01-02",
		Text:         "Call mom",
		Projects:     []string{"family"},
		Contexts:     []string{"phone"},
	}, tasks[0])

	assert.True(t, tasks[1].Complete)
	assert.Equal(t, "2024-02-01", tasks[1].CompletionDate)
	assert.Equal(t, "2024-01-01", tasks[1].CreationDate)
	assert.Equal(t, "retry logic", tasks[1].Text)

	assert.Equal(t, "(A) 2024-01-02 Call mom +family @phone", tasks[0].String())
	assert.Equal(t, "x 2024-02-01 2024-01-01 retry logic @TODO", tasks[1].String())
	assert.Equal(t, "plain task", tasks[2].String())
}

func newTestTodoTxt(t *testing.T) (*TodoTxt, Client, string) {
	t.Helper()
	todo := &TodoTxt{
		fs:  fs.NewFS(),
		now: func() time.Time { return time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC) },
	}
	conf := config.New(map[string]string{
		"todotxt.context":  "work",
		"todotxt.project":  "git-todos",
		"todotxt.priority": "B",
	})
	require.NoError(t, todo.ValidateConfig(conf))

	client, err := todo.Connect(context.Background(), conf)
	require.NoError(t, err)

	return todo, client, filepath.Join(t.TempDir(), "todo.txt")
}

func TestTodoTxt_Lifecycle(t *testing.T) {
	ctx := context.Background()
	todo, client, path := newTestTodoTxt(t)

	// Missing file has no tasks
	all, err := todo.AllIssues(ctx, client, path)
	require.NoError(t, err)
	assert.Empty(t, all)

	created, err := todo.CreateIssue(ctx, client, path, CreateIssueParams{
		Title:  "fix race condition",
		Body:   "ignored",
		Labels: []string{"TODO"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Number)
	assert.Equal(t, []string{"TODO", "work"}, created.Labels)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(B) 2024-05-06 fix race condition +git-todos @TODO @work\n", string(content))

	found, err := todo.FindIssueByTitle(ctx, client, path, "RACE")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 1, found.Number)

	tagged, err := todo.TagIssue(ctx, client, path, 1, "FIXME")
	require.NoError(t, err)
	assert.True(t, tagged.HasLabel("FIXME"))

	require.NoError(t, os.WriteFile(path, []byte("x 2024-05-07 (B) 2024-05-06 fix race condition @TODO\n"), 0644))
	comment, err := todo.CommentIssue(ctx, client, path, 1, "ignored")
	require.NoError(t, err)
	assert.Equal(t, 1, comment.Issue)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(B) 2024-05-06 fix race condition @TODO\n", string(content))

	_, err = todo.TagIssue(ctx, client, path, 5, "TODO")
	assert.ErrorIs(t, err, issue.ErrIssueNotFound)
}

func TestTodoTxt_ValidateConfig(t *testing.T) {
	todo := NewTodoTxt()
	assert.NoError(t, todo.ValidateConfig(config.Config{}))
	assert.Error(t, todo.ValidateConfig(config.New(map[string]string{"todotxt.priority": "high"})))
}

func TestTodoTxt_Helpers(t *testing.T) {
	todo := NewTodoTxt()

	repo, ok := todo.GuessRepoFromURL("https://github.com/octo/repo.git")
	assert.True(t, ok)
	assert.True(t, filepath.IsAbs(repo))
	assert.Equal(t, "todo.txt", filepath.Base(repo))

	url := todo.GetFileURL("", "main.go", "abc", 3)
	assert.Contains(t, url, "file://")
	assert.Contains(t, url, "main.go#L3")
}
