package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// IsDirty checks if the working tree has uncommitted or untracked changes.
func (g *realGit) IsDirty(repoPath string) (bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("git command failed: %w (command: git status --porcelain, output: %s)",
			err, stderrOf(err))
	}
	return strings.TrimSpace(string(output)) != "", nil
}
