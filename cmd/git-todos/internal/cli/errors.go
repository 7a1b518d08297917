package cli

import "errors"

// Error definitions for cli package.
var (
	ErrSetup     = errors.New("failed to set up git-todos")
	ErrNoCommand = errors.New("no command specified")
)
