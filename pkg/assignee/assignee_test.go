//go:build unit

package assignee

import (
	"errors"
	"testing"

	"github.com/lerenn/git-todos/pkg/config"
	gitmocks "github.com/lerenn/git-todos/pkg/git/mocks"
	"github.com/lerenn/git-todos/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	conf := config.New(map[string]string{
		"github.assignee.alice": "alice@example.com, a.smith@corp.io",
		"github.assignee.bob":   "bob@example.com",
	})
	resolver := NewResolver(mockGit, "/repo", conf, logger.NewNoopLogger())

	mockGit.EXPECT().Blame("/repo", "main.go", 3).Return("A.Smith@corp.io", nil)
	assert.Equal(t, "alice", resolver.Resolve("main.go", 3))

	mockGit.EXPECT().Blame("/repo", "main.go", 4).Return("bob@example.com", nil)
	assert.Equal(t, "bob", resolver.Resolve("main.go", 4))

	mockGit.EXPECT().Blame("/repo", "main.go", 5).Return("stranger@example.com", nil)
	assert.Empty(t, resolver.Resolve("main.go", 5))

	mockGit.EXPECT().Blame("/repo", "main.go", 6).Return("", errors.New("no such path"))
	assert.Empty(t, resolver.Resolve("main.go", 6))
}

func TestResolver_NoMappingSkipsBlame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Blame call expected
	resolver := NewResolver(gitmocks.NewMockGit(ctrl), "/repo", config.Defaults(), nil)
	assert.Empty(t, resolver.Resolve("main.go", 1))
}
