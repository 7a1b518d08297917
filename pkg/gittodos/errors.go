package gittodos

import "errors"

// Error definitions for the git-todos orchestration.
var (
	ErrGitNotFound        = errors.New("git command not found in PATH")
	ErrRepoUnknown        = errors.New("cannot guess the repository from the remote URL, set it with 'git-todos config repo <repo>'")
	ErrInvalidHookInput   = errors.New("invalid pre-push hook input")
	ErrUnsupportedOption  = errors.New("unsupported option, use --extra to force")
	ErrOptionNotSet       = errors.New("option not set")
	ErrAuthNotApplicable  = errors.New("issue service does not use an access token")
	ErrDependenciesConfig = errors.New("invalid dependencies")
)
