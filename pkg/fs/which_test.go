//go:build integration

package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFS_Which(t *testing.T) {
	fs := NewFS()

	path, err := fs.Which("git")
	assert.NoError(t, err)
	assert.Contains(t, path, "git")

	_, err = fs.Which("non-existing-command-xyz123")
	assert.Error(t, err)
}
