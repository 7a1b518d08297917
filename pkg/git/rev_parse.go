package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// RevParse resolves a revision to its full SHA.
func (g *realGit) RevParse(repoPath, rev string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--verify", rev)
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w (command: git rev-parse --verify %s, output: %s)",
			err, rev, stderrOf(err))
	}
	return strings.TrimSpace(string(output)), nil
}
