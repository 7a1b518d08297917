package synchronizer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lerenn/git-todos/pkg/todo"
)

var lineBreakRegexp = regexp.MustCompile(`\r\n|\r|\n`)

// commentText builds the body used for both new issues and comments:
// a link to the marker, an excerpt of the code around it and the signature.
func (s *realSynchronizer) commentText(repo string, t *todo.Todo) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Ref. [%s](%s)", t.Location(), s.service.GetFileURL(repo, t.File, t.SHA, t.Line))

	if s.context > 0 {
		root, err := s.git.Dir(s.repoPath, "..")
		if err != nil {
			return "", err
		}

		content, err := s.fs.ReadFile(filepath.Join(root, filepath.FromSlash(t.File)))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadSource, err)
		}

		fmt.Fprintf(&b, "\n\n```%s\n%s\n```\n", language(t.File), excerpt(string(content), t.Line, s.context))
	}

	if s.signature != "" {
		b.WriteString("\n" + s.signature)
	}

	return b.String(), nil
}

// excerpt returns the marker line and the context lines after it.
// Trailing blank lines are ignored; leading ones keep their line numbers.
func excerpt(content string, line, context int) string {
	lines := lineBreakRegexp.Split(content, -1)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	start := min(max(line-1, 0), len(lines))
	end := max(min(line+context, len(lines)), start)

	extract := strings.Join(lines[start:end], "\n")
	if line+context < len(lines) {
		extract += "\n…"
	}
	return extract
}

// language is a naive hint taken from the file extension.
func language(file string) string {
	return strings.TrimPrefix(filepath.Ext(file), ".")
}
