package synchronizer

import "errors"

// Synchronizer-specific errors
var (
	// ErrInterrupted is returned when the user aborts the run from the creation prompt.
	ErrInterrupted = errors.New("user aborted")
	ErrReadSource  = errors.New("failed to read source file")
	ErrRemember    = errors.New("failed to add title to the skip list")
)
