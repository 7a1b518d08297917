package service

import (
	"context"

	"github.com/lerenn/git-todos/pkg/issue"
)

// dryRun answers every remote call with placeholders and never reaches the tracker.
type dryRun struct {
	next Service
}

// DryRun wraps a Service so that nothing is read from or written to the tracker.
// GetFileURL and GuessRepoFromURL still delegate.
func DryRun(next Service) Service {
	return &dryRun{next: next}
}

func (s *dryRun) Name() string { return s.next.Name() }

func (s *dryRun) Connect(_ context.Context) error { return nil }

func (s *dryRun) FindIssueByTitle(_ context.Context, _, _ string) (*issue.Issue, error) {
	return nil, nil
}

func (s *dryRun) AllIssues(_ context.Context, _ string) ([]*issue.Issue, error) {
	return []*issue.Issue{}, nil
}

func (s *dryRun) CreateIssue(_ context.Context, _ string, _ CreateIssueParams) (*issue.Issue, error) {
	return issue.FakeIssue(), nil
}

func (s *dryRun) CommentIssue(_ context.Context, _ string, _ int, _ string) (*issue.Comment, error) {
	return issue.FakeComment(), nil
}

func (s *dryRun) TagIssue(_ context.Context, _ string, _ int, _ string) (*issue.Issue, error) {
	return issue.FakeIssue(), nil
}

func (s *dryRun) GetFileURL(repo, path, sha string, line int) string {
	return s.next.GetFileURL(repo, path, sha, line)
}

func (s *dryRun) GuessRepoFromURL(url string) (string, bool) {
	return s.next.GuessRepoFromURL(url)
}
