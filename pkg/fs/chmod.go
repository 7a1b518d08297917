package fs

import "os"

// Chmod changes the mode of the named file.
func (f *realFS) Chmod(path string, perm os.FileMode) error {
	return os.Chmod(path, perm)
}
