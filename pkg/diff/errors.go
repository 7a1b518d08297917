package diff

import "errors"

// Error definitions for diff package.
var (
	ErrParse = errors.New("failed to parse diff")
)
