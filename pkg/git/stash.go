package git

import (
	"fmt"
	"os/exec"
)

// StashSave stashes local changes, untracked files included.
func (g *realGit) StashSave(repoPath, message string) error {
	cmd := exec.Command("git", "stash", "push", "--include-untracked", "-m", message)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git stash failed: %w (command: git stash push --include-untracked -m %s, output: %s)",
			err, message, string(output))
	}
	return nil
}

// StashPop restores the latest stash, index included.
func (g *realGit) StashPop(repoPath string) error {
	cmd := exec.Command("git", "stash", "pop", "--index")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %w (command: git stash pop --index, output: %s)",
			ErrStashPopFailed, err, string(output))
	}
	return nil
}
