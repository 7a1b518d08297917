package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Dir returns the absolute path of sub inside the git directory (e.g. "hooks", "..").
func (g *realGit) Dir(repoPath, sub string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %w (command: git rev-parse --git-dir, output: %s)",
			ErrNotARepository, err, string(output))
	}

	gitDir := strings.TrimSpace(string(output))
	if !filepath.IsAbs(gitDir) {
		base, err := filepath.Abs(repoPath)
		if err != nil {
			return "", err
		}
		gitDir = filepath.Join(base, gitDir)
	}

	return filepath.Clean(filepath.Join(gitDir, sub)), nil
}
