package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// Diff executes `git diff -u <range>` and returns the unified diff text.
	Diff(repoPath, revRange string) (string, error)

	// Blame returns the author email of a single line, as reported by `git blame --porcelain`.
	Blame(repoPath, file string, line int) (string, error)

	// Dir returns the absolute path of sub inside the git directory (e.g. "hooks", "..").
	Dir(repoPath, sub string) (string, error)

	// RevParse resolves a revision to its full SHA.
	RevParse(repoPath, rev string) (string, error)

	// GetCurrentBranch gets the current branch name.
	GetCurrentBranch(repoPath string) (string, error)

	// IsDirty checks if the working tree has uncommitted or untracked changes.
	IsDirty(repoPath string) (bool, error)

	// StashSave stashes local changes, untracked files included.
	StashSave(repoPath, message string) error

	// StashPop restores the latest stash, index included.
	StashPop(repoPath string) error

	// Add adds files to the Git staging area.
	Add(repoPath string, files ...string) error

	// Commit creates a new commit with the specified message.
	Commit(repoPath, message string) error

	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)

	// ConfigGet executes `git config --get <key>` in specified directory.
	ConfigGet(repoPath, key string) (string, error)

	// ConfigList returns every local config entry whose key matches the given prefix.
	ConfigList(repoPath, prefix string) (map[string]string, error)

	// ConfigSet writes a local config entry.
	ConfigSet(repoPath, key, value string) error

	// ConfigUnset removes a local config entry.
	ConfigUnset(repoPath, key string) error
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
