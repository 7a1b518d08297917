//go:build unit

package skiplist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/git-todos/pkg/fs"
	fsmocks "github.com/lerenn/git-todos/pkg/fs/mocks"
	gitmocks "github.com/lerenn/git-todos/pkg/git/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSkipList_RoundTrip(t *testing.T) {
	for _, caseSensitive := range []bool{false, true} {
		t.Run(map[bool]string{false: "case insensitive", true: "case sensitive"}[caseSensitive], func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			root := t.TempDir()
			mockGit := gitmocks.NewMockGit(ctrl)
			mockGit.EXPECT().Dir(".", "..").Return(root, nil).AnyTimes()

			list := New(mockGit, fs.NewFS(), ".", caseSensitive)

			skip, err := list.ShouldSkip("Fix Race Condition")
			require.NoError(t, err)
			assert.False(t, skip)

			require.NoError(t, list.Remember("Fix Race Condition"))
			require.NoError(t, list.Remember("Fix Race Condition"))

			skip, err = list.ShouldSkip("Fix Race Condition")
			require.NoError(t, err)
			assert.True(t, skip)

			skip, err = list.ShouldSkip("fix race condition")
			require.NoError(t, err)
			assert.Equal(t, !caseSensitive, skip)

			content, err := os.ReadFile(filepath.Join(root, FileName))
			require.NoError(t, err)
			if caseSensitive {
				assert.Equal(t, "Fix Race Condition\n", string(content))
			} else {
				assert.Equal(t, "fix race condition\n", string(content))
			}
		})
	}
}

func TestSkipList_KeepsExistingEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	mockFS := fsmocks.NewMockFS(ctrl)

	mockGit.EXPECT().Dir("/work", "..").Return("/repo", nil)
	mockFS.EXPECT().ReadFileIfExists("/repo/.git-todos-ignore").Return([]byte("first\n\nsecond\n"), nil)
	mockFS.EXPECT().WriteFileAtomic("/repo/.git-todos-ignore", []byte("first\nsecond\nthird\n"), os.FileMode(0644)).Return(nil)

	assert.NoError(t, New(mockGit, mockFS, "/work", false).Remember("Third"))
}

func TestSkipList_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	mockFS := fsmocks.NewMockFS(ctrl)
	list := New(mockGit, mockFS, ".", false)

	mockGit.EXPECT().Dir(".", "..").Return("/repo", nil).Times(2)
	mockFS.EXPECT().ReadFileIfExists("/repo/.git-todos-ignore").Return(nil, errors.New("permission denied"))
	_, err := list.ShouldSkip("title")
	assert.ErrorIs(t, err, ErrRead)

	mockFS.EXPECT().ReadFileIfExists("/repo/.git-todos-ignore").Return(nil, nil)
	mockFS.EXPECT().WriteFileAtomic(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	assert.ErrorIs(t, list.Remember("title"), ErrWrite)
}
