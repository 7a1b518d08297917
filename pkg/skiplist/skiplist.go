// Package skiplist remembers the marker titles the user never wants raised.
package skiplist

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/git-todos/pkg/fs"
	"github.com/lerenn/git-todos/pkg/git"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=skiplist.go -destination=mocks/skiplist.gen.go -package=mocks

// FileName is the skip-list file, one title per line, at the repository root.
const FileName = ".git-todos-ignore"

// SkipList is the persisted set of ignored titles.
type SkipList interface {
	// ShouldSkip reports whether title was remembered.
	ShouldSkip(title string) (bool, error)
	// Remember adds title to the list.
	Remember(title string) error
}

type realSkipList struct {
	git           git.Git
	fs            fs.FS
	repoPath      string
	caseSensitive bool
}

// New creates a SkipList for the repository at repoPath.
func New(g git.Git, f fs.FS, repoPath string, caseSensitive bool) SkipList {
	return &realSkipList{git: g, fs: f, repoPath: repoPath, caseSensitive: caseSensitive}
}

// ShouldSkip reports whether title was remembered. A missing file is an empty list.
func (s *realSkipList) ShouldSkip(title string) (bool, error) {
	titles, _, err := s.read()
	if err != nil {
		return false, err
	}

	title = s.normalize(title)
	for _, t := range titles {
		if s.normalize(t) == title {
			return true, nil
		}
	}
	return false, nil
}

// Remember adds title to the list if missing and rewrites the whole file.
func (s *realSkipList) Remember(title string) error {
	titles, path, err := s.read()
	if err != nil {
		return err
	}

	normalized := s.normalize(title)
	for _, t := range titles {
		if s.normalize(t) == normalized {
			return nil
		}
	}
	titles = append(titles, normalized)

	if err := s.fs.WriteFileAtomic(path, []byte(strings.Join(titles, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func (s *realSkipList) read() ([]string, string, error) {
	root, err := s.git.Dir(s.repoPath, "..")
	if err != nil {
		return nil, "", err
	}
	path := filepath.Join(root, FileName)

	data, err := s.fs.ReadFileIfExists(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrRead, err)
	}

	var titles []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			titles = append(titles, line)
		}
	}
	return titles, path, nil
}

func (s *realSkipList) normalize(title string) string {
	title = strings.TrimSpace(title)
	if !s.caseSensitive {
		return strings.ToLower(title)
	}
	return title
}
