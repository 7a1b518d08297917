package prehook

import "errors"

// Hook installation errors. ErrAlreadyInstalled and ErrNotInstalled are conflicts
// the user has to solve by hand or with --force.
var (
	ErrAlreadyInstalled = errors.New("git-todos command already found in the pre-push hook, use --force to add it anyway")
	ErrNotInstalled     = errors.New("git-todos command not found in the pre-push hook, cannot uninstall")
	ErrNoHook           = errors.New("pre-push hook not found, cannot uninstall")
)
