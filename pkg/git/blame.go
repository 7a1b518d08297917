package git

import (
	"bufio"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Blame returns the author email of a single line, as reported by `git blame --porcelain`.
func (g *realGit) Blame(repoPath, file string, line int) (string, error) {
	lineRange := strconv.Itoa(line) + "," + strconv.Itoa(line)
	cmd := exec.Command("git", "blame", "--porcelain", "-L", lineRange, "--", file)
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git blame failed: %w (command: git blame --porcelain -L %s -- %s, output: %s)",
			err, lineRange, file, stderrOf(err))
	}

	return parseBlameAuthorMail(string(output))
}

// parseBlameAuthorMail extracts the "author-mail <x>" header of a porcelain blame.
func parseBlameAuthorMail(output string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		text := scanner.Text()
		if !strings.HasPrefix(text, "author-mail ") {
			continue
		}
		mail := strings.TrimSpace(strings.TrimPrefix(text, "author-mail "))
		mail = strings.TrimSuffix(strings.TrimPrefix(mail, "<"), ">")
		if mail == "" {
			break
		}
		return mail, nil
	}
	return "", ErrBlameNoAuthor
}
