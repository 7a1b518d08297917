package fs

import (
	"errors"
	"io/fs"
	"os"
)

// ReadFile reads the contents of a file.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadFileIfExists reads the contents of a file, returning nil content when it does not exist.
func (f *realFS) ReadFileIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}
