// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	ErrAtomicWrite = errors.New("atomic write failed")
)
