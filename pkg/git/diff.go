package git

import (
	"fmt"
	"os/exec"
)

// Diff executes `git diff -u <range>` and returns the unified diff text.
func (g *realGit) Diff(repoPath, revRange string) (string, error) {
	cmd := exec.Command("git", "diff", "--no-color", "--no-ext-diff", "-u", revRange)
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git diff failed: %w (command: git diff -u %s, output: %s)",
			err, revRange, stderrOf(err))
	}
	return string(output), nil
}
