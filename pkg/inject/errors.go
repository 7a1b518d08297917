package inject

import "errors"

// Inject-specific errors, reported inside warnings.
var (
	ErrLineNotFound = errors.New("line not found in file")
	ErrStash        = errors.New("failed to stash local changes")
	ErrUnstash      = errors.New("failed to restore stashed changes")
	ErrCommit       = errors.New("failed to commit injected issue numbers")
)
