// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrNotARepository = errors.New("not a git repository")
	ErrBlameNoAuthor  = errors.New("no author found in blame output")
	ErrStashPopFailed = errors.New("failed to restore stashed changes")
)
