package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations git-todos needs on the working tree.
type FS interface {
	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadFileIfExists reads the contents of a file, returning nil content when it does not exist.
	ReadFileIfExists(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// Chmod changes the mode of the named file.
	Chmod(path string, perm os.FileMode) error

	// Remove removes a file or empty directory.
	Remove(path string) error

	// Which finds the executable path for a command using the system's PATH.
	Which(command string) (string, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
