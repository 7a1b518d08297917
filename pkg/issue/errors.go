package issue

import "errors"

// Issue-specific error types.
var (
	ErrIssueNotFound = errors.New("issue not found")
)
