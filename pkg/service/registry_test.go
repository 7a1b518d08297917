//go:build unit

package service

import (
	"context"
	"testing"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/issue"
	"github.com/lerenn/git-todos/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry(logger.NewNoopLogger())

	assert.NotNil(t, registry)
	assert.Len(t, registry.factories, 3)
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry(nil)

	for _, name := range []string{GitHubName, GitLabName, TodoTxtName} {
		backend, err := registry.Get(name, config.Config{})
		require.NoError(t, err)
		assert.Equal(t, name, backend.Name())
	}

	_, err := registry.Get("bitbucket", config.Config{})
	assert.ErrorIs(t, err, ErrUnsupportedService)
}

func TestRegistry_Get_BuildsFromConfig(t *testing.T) {
	registry := NewRegistry(nil)

	selfHosted, err := registry.Get(GitLabName, config.New(map[string]string{"gitlab.host": "gitlab.example.com"}))
	require.NoError(t, err)
	public, err := registry.Get(GitLabName, config.Config{})
	require.NoError(t, err)

	_, ok := selfHosted.GuessRepoFromURL("git@gitlab.example.com:g/p.git")
	assert.True(t, ok)
	_, ok = public.GuessRepoFromURL("git@gitlab.example.com:g/p.git")
	assert.False(t, ok)
}

func TestRegistry_List(t *testing.T) {
	metas := NewRegistry(nil).List()
	require.Len(t, metas, 3)

	assert.Equal(t, GitHubName, metas[0].Name)
	assert.Equal(t, GitLabName, metas[1].Name)
	assert.Equal(t, TodoTxtName, metas[2].Name)
	assert.Equal(t, "user/repository", metas[0].RepoFormat)
	assert.Equal(t, "github.token", metas[0].TokenKey)
	assert.Empty(t, metas[2].TokenKey)
}

func TestRegistry_New(t *testing.T) {
	registry := NewRegistry(nil)
	conf := config.New(map[string]string{"repo": "octo/repo"})

	svc, err := registry.New(GitHubName, conf, true)
	require.NoError(t, err)
	assert.Equal(t, GitHubName, svc.Name())

	// Dry-run never needs a token
	created, err := svc.CreateIssue(context.Background(), "octo/repo", CreateIssueParams{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, issue.FakeIssue(), created)

	svc, err = registry.New(GitHubName, conf, false)
	require.NoError(t, err)
	_, isConnected := svc.(*connected)
	assert.True(t, isConnected)

	_, err = registry.New("jira", conf, false)
	assert.ErrorIs(t, err, ErrUnsupportedService)
}
