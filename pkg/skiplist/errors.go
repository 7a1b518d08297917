package skiplist

import "errors"

// Error definitions for skiplist package.
var (
	ErrRead  = errors.New("failed to read skip list")
	ErrWrite = errors.New("failed to write skip list")
)
