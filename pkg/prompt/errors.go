// Package prompt provides interactive prompt functionality for git-todos.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrNoSelection              = errors.New("no selection made")
	ErrEmptyToken               = errors.New("token cannot be empty")
)
