//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	file := filepath.Join(dir, "main.go")

	// New file gets the requested mode
	require.NoError(t, fs.WriteFileAtomic(file, []byte("package main\n"), 0600))
	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "package main\n", string(content))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Existing file keeps its mode
	require.NoError(t, os.Chmod(file, 0755))
	require.NoError(t, fs.WriteFileAtomic(file, []byte("// #42 TODO\n"), 0644))

	info, err = os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	content, err = os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "// #42 TODO\n", string(content))
}
