package git

import (
	"bufio"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// ConfigGet executes `git config --get <key>` in specified directory.
func (g *realGit) ConfigGet(repoPath, key string) (string, error) {
	cmd := exec.Command("git", "config", "--get", key)
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		// Return empty string for missing config keys (exit code 1)
		if exitCode(err) == 1 {
			return "", nil
		}
		return "", fmt.Errorf("git command failed: %w (command: git config --get %s, output: %s)",
			err, key, stderrOf(err))
	}

	return strings.TrimSpace(string(output)), nil
}

// ConfigList returns every local config entry whose key matches the given prefix.
// Keys are returned without the prefix.
func (g *realGit) ConfigList(repoPath, prefix string) (map[string]string, error) {
	pattern := "^" + regexp.QuoteMeta(prefix)
	cmd := exec.Command("git", "config", "--local", "--get-regexp", pattern)
	cmd.Dir = repoPath

	entries := map[string]string{}
	output, err := cmd.Output()
	if err != nil {
		// Nothing matched
		if exitCode(err) == 1 {
			return entries, nil
		}
		return nil, fmt.Errorf("git command failed: %w (command: git config --local --get-regexp %s, output: %s)",
			err, pattern, stderrOf(err))
	}

	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		key, value, _ := strings.Cut(scanner.Text(), " ")
		if key == "" {
			continue
		}
		entries[strings.TrimPrefix(key, prefix)] = value
	}

	return entries, scanner.Err()
}

// ConfigSet writes a local config entry.
func (g *realGit) ConfigSet(repoPath, key, value string) error {
	cmd := exec.Command("git", "config", "--local", key, value)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git config failed: %w (command: git config --local %s, output: %s)",
			err, key, string(output))
	}
	return nil
}

// ConfigUnset removes a local config entry. Unsetting a missing key is not an error.
func (g *realGit) ConfigUnset(repoPath, key string) error {
	cmd := exec.Command("git", "config", "--local", "--unset", key)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		if exitCode(err) == 5 {
			return nil
		}
		return fmt.Errorf("git config --unset failed: %w (command: git config --local --unset %s, output: %s)",
			err, key, string(output))
	}
	return nil
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func stderrOf(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(exitErr.Stderr)
	}
	return ""
}
