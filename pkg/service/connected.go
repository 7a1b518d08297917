package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/issue"
)

// connected connects its backend on the first remote call and keeps the client for the next ones.
type connected struct {
	backend Backend
	conf    config.Config

	mu     sync.Mutex
	client Client
}

// Connected wraps a backend into a Service that connects lazily with conf.
// The backend configuration is validated before any connection attempt.
func Connected(backend Backend, conf config.Config) Service {
	return &connected{backend: backend, conf: conf}
}

func (s *connected) Name() string {
	return s.backend.Name()
}

func (s *connected) Connect(ctx context.Context) error {
	_, err := s.requireClient(ctx)
	return err
}

func (s *connected) requireClient(ctx context.Context) (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	if validator, ok := s.backend.(ConfigValidator); ok {
		if err := validator.ValidateConfig(s.conf); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, s.backend.Name(), err)
		}
	}

	client, err := s.backend.Connect(ctx, s.conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConnectFailed, s.backend.Name(), err)
	}

	s.client = client
	return client, nil
}

func (s *connected) FindIssueByTitle(ctx context.Context, repo, title string) (*issue.Issue, error) {
	client, err := s.requireClient(ctx)
	if err != nil {
		return nil, err
	}
	return s.backend.FindIssueByTitle(ctx, client, repo, title)
}

func (s *connected) AllIssues(ctx context.Context, repo string) ([]*issue.Issue, error) {
	client, err := s.requireClient(ctx)
	if err != nil {
		return nil, err
	}
	return s.backend.AllIssues(ctx, client, repo)
}

func (s *connected) CreateIssue(ctx context.Context, repo string, params CreateIssueParams) (*issue.Issue, error) {
	client, err := s.requireClient(ctx)
	if err != nil {
		return nil, err
	}
	return s.backend.CreateIssue(ctx, client, repo, params)
}

func (s *connected) CommentIssue(ctx context.Context, repo string, number int, body string) (*issue.Comment, error) {
	client, err := s.requireClient(ctx)
	if err != nil {
		return nil, err
	}
	return s.backend.CommentIssue(ctx, client, repo, number, body)
}

func (s *connected) TagIssue(ctx context.Context, repo string, number int, label string) (*issue.Issue, error) {
	client, err := s.requireClient(ctx)
	if err != nil {
		return nil, err
	}
	return s.backend.TagIssue(ctx, client, repo, number, label)
}

func (s *connected) GetFileURL(repo, path, sha string, line int) string {
	return s.backend.GetFileURL(repo, path, sha, line)
}

func (s *connected) GuessRepoFromURL(url string) (string, bool) {
	return s.backend.GuessRepoFromURL(url)
}
