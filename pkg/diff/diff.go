// Package diff turns unified diff text into per-file line records.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
)

// Line is a single line of a hunk.
// Ln is the line number in the new file for added and context lines,
// and in the old file for deleted lines.
type Line struct {
	Ln      int
	Content string
	Add     bool
	Del     bool
}

// File is the diff of a single file. To is empty when the file was deleted.
type File struct {
	From  string
	To    string
	Lines []Line
}

// Parse parses a multi-file unified diff.
func Parse(text string) ([]File, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	fileDiffs, err := godiff.ParseMultiFileDiff([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	files := make([]File, 0, len(fileDiffs))
	for _, fd := range fileDiffs {
		file := File{
			From: stripName(fd.OrigName, "a/"),
			To:   stripName(fd.NewName, "b/"),
		}
		for _, hunk := range fd.Hunks {
			file.Lines = append(file.Lines, hunkLines(hunk)...)
		}
		files = append(files, file)
	}

	return files, nil
}

// WithoutDeletions drops files that no longer exist after the change.
func WithoutDeletions(files []File) []File {
	kept := make([]File, 0, len(files))
	for _, f := range files {
		if f.To != "" {
			kept = append(kept, f)
		}
	}
	return kept
}

func hunkLines(hunk *godiff.Hunk) []Line {
	oldLn := int(hunk.OrigStartLine)
	newLn := int(hunk.NewStartLine)

	body := bytes.TrimSuffix(hunk.Body, []byte("\n"))
	if len(body) == 0 {
		return nil
	}

	var lines []Line
	for _, raw := range strings.Split(string(body), "\n") {
		if raw == "" {
			// Some tools drop the leading space of empty context lines
			lines = append(lines, Line{Ln: newLn})
			oldLn++
			newLn++
			continue
		}

		content := raw[1:]
		switch raw[0] {
		case '+':
			lines = append(lines, Line{Ln: newLn, Content: content, Add: true})
			newLn++
		case '-':
			lines = append(lines, Line{Ln: oldLn, Content: content, Del: true})
			oldLn++
		case '\\':
			// "\ No newline at end of file"
		default:
			lines = append(lines, Line{Ln: newLn, Content: content})
			oldLn++
			newLn++
		}
	}

	return lines
}

func stripName(name, prefix string) string {
	if name == "/dev/null" || name == "" {
		return ""
	}
	return strings.TrimPrefix(name, prefix)
}
