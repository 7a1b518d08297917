package fs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
func (f *realFS) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	// Keep the mode of an existing file, atomic.WriteFile only sets it for new files
	if info, err := os.Stat(filename); err == nil {
		perm = info.Mode().Perm()
	}

	if err := atomic.WriteFile(filename, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAtomicWrite, filename, err)
	}

	if err := os.Chmod(filename, perm); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", ErrAtomicWrite, filename, err)
	}

	return nil
}
