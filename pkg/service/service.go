// Package service provides the issue trackers git-todos can synchronize with.
package service

import (
	"context"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/issue"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=service.go -destination=mocks/service.gen.go -package=mocks

// Client is the connected handle a Backend returns from Connect and receives on every remote call.
// Each backend only accepts the handles it created.
type Client interface{}

// Meta describes a backend for listings and authentication.
type Meta struct {
	Name        string   `json:"-"`
	Description string   `json:"desc"`
	RepoFormat  string   `json:"repo"`
	Options     []string `json:"conf,omitempty"`
	// TokenKey is the configuration key holding the access token, empty when none is needed.
	TokenKey string `json:"-"`
}

// CreateIssueParams contains parameters for CreateIssue.
type CreateIssueParams struct {
	Title    string
	Body     string
	Labels   []string
	Assignee string
}

// Backend is the raw capability set of an issue tracker.
// Remote calls receive the Client obtained from Connect explicitly.
type Backend interface {
	// Name returns the registry name of the backend.
	Name() string

	// Meta describes the backend.
	Meta() Meta

	// Connect authenticates against the tracker.
	Connect(ctx context.Context, conf config.Config) (Client, error)

	// FindIssueByTitle returns the first issue with the given title, or nil.
	FindIssueByTitle(ctx context.Context, c Client, repo, title string) (*issue.Issue, error)

	// AllIssues returns the open issues of the repository.
	AllIssues(ctx context.Context, c Client, repo string) ([]*issue.Issue, error)

	// CreateIssue opens a new issue.
	CreateIssue(ctx context.Context, c Client, repo string, params CreateIssueParams) (*issue.Issue, error)

	// CommentIssue posts a comment on an issue.
	CommentIssue(ctx context.Context, c Client, repo string, number int, body string) (*issue.Comment, error)

	// TagIssue adds a label to an issue, keeping the existing ones.
	TagIssue(ctx context.Context, c Client, repo string, number int, label string) (*issue.Issue, error)

	// GetFileURL links to a line of a file at a given commit.
	GetFileURL(repo, path, sha string, line int) string

	// GuessRepoFromURL extracts the repository identifier from a remote URL.
	GuessRepoFromURL(url string) (string, bool)
}

// ConfigValidator is implemented by backends that check their configuration before connecting.
type ConfigValidator interface {
	ValidateConfig(conf config.Config) error
}

// Service is an issue tracker ready to use: connection is handled internally.
type Service interface {
	// Name returns the registry name of the backend.
	Name() string

	// Connect connects now instead of on the first remote call.
	Connect(ctx context.Context) error

	// FindIssueByTitle returns the first issue with the given title, or nil.
	FindIssueByTitle(ctx context.Context, repo, title string) (*issue.Issue, error)

	// AllIssues returns the open issues of the repository.
	AllIssues(ctx context.Context, repo string) ([]*issue.Issue, error)

	// CreateIssue opens a new issue.
	CreateIssue(ctx context.Context, repo string, params CreateIssueParams) (*issue.Issue, error)

	// CommentIssue posts a comment on an issue.
	CommentIssue(ctx context.Context, repo string, number int, body string) (*issue.Comment, error)

	// TagIssue adds a label to an issue, keeping the existing ones.
	TagIssue(ctx context.Context, repo string, number int, label string) (*issue.Issue, error)

	// GetFileURL links to a line of a file at a given commit.
	GetFileURL(repo, path, sha string, line int) string

	// GuessRepoFromURL extracts the repository identifier from a remote URL.
	GuessRepoFromURL(url string) (string, bool)
}
