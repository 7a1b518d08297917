package git

import (
	"os"
	"os/exec"
	"testing"
)

// SetupTestRepo creates a temporary git repository for testing and moves into it.
func SetupTestRepo(t *testing.T) (string, func()) {
	t.Helper()
	tmpDir, originalDir := setupTempDir(t)
	setupGitRepo(t, tmpDir, originalDir)

	cleanup := func() {
		_ = os.Chdir(originalDir)
		_ = os.RemoveAll(tmpDir)
	}

	return tmpDir, cleanup
}

func setupTempDir(t *testing.T) (string, string) {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "git-todos-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	return tmpDir, originalDir
}

func setupGitRepo(t *testing.T, tmpDir, originalDir string) {
	t.Helper()
	commands := [][]string{
		{"init", "-b", "main"},
		{"config", "user.name", "Test User"},
		{"config", "user.email", "test@example.com"},
		{"config", "commit.gpgsign", "false"},
		{"remote", "add", "origin", "https://github.com/octocat/Hello-World.git"},
	}
	for _, args := range commands {
		if err := exec.Command("git", args...).Run(); err != nil {
			cleanupOnEf(t, originalDir, tmpDir, "Failed to run git %v: %v", args, err)
		}
	}

	CommitFile(t, "README.md", "# Test Repository\n")
}

// CommitFile writes a file in the current directory and commits it.
func CommitFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	if err := exec.Command("git", "add", name).Run(); err != nil {
		t.Fatalf("Failed to add %s: %v", name, err)
	}
	if err := exec.Command("git", "commit", "-m", "update "+name).Run(); err != nil {
		t.Fatalf("Failed to commit %s: %v", name, err)
	}
}

func cleanupOnEf(t *testing.T, originalDir, tmpDir, format string, args ...interface{}) {
	t.Helper()
	_ = os.Chdir(originalDir)
	_ = os.RemoveAll(tmpDir)
	t.Fatalf(format, args...)
}
