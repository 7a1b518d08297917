package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/issue"
	"golang.org/x/oauth2"
)

const (
	// GitHubName is the name identifier for the GitHub service.
	GitHubName = "github"
	// GitHubDomain is the public GitHub host.
	GitHubDomain = "github.com"

	gitHubTokenKey = "github.token"
	gitHubHostKey  = "github.host"
	gitHubTokenEnv = "GITHUB_TOKEN"
	gitHubPageSize = 100
)

var ownerRepoRegexp = regexp.MustCompile(`^[^/\s]+/[^/\s]+$`)

// GitHub is the GitHub issue service.
type GitHub struct {
	// baseURL is the web root of github.com or of the Enterprise server.
	baseURL string
	// httpClient replaces the oauth2 transport when set.
	httpClient *http.Client
}

// NewGitHub creates the GitHub backend for the host configured in github.host.
func NewGitHub(conf config.Config) *GitHub {
	return &GitHub{baseURL: webBaseURL(conf.String(gitHubHostKey), GitHubDomain)}
}

// Name returns the name of the service.
func (g *GitHub) Name() string {
	return GitHubName
}

// Meta describes the service.
func (g *GitHub) Meta() Meta {
	return Meta{
		Name:        GitHubName,
		Description: "Github issue service",
		RepoFormat:  "user/repository",
		Options:     []string{gitHubTokenKey, gitHubHostKey, config.PrefixAssignee + "<name>"},
		TokenKey:    gitHubTokenKey,
	}
}

// ValidateConfig checks the repository identifier.
func (g *GitHub) ValidateConfig(conf config.Config) error {
	repo := conf.String(config.KeyRepo)
	if !ownerRepoRegexp.MatchString(repo) {
		return fmt.Errorf("%w: %q, expected user/repository", ErrInvalidRepo, repo)
	}
	return nil
}

// Connect authenticates with the configured token and checks it with a simple API call.
func (g *GitHub) Connect(ctx context.Context, conf config.Config) (Client, error) {
	token := conf.String(gitHubTokenKey)
	if token == "" {
		token = os.Getenv(gitHubTokenEnv)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: set %s or run 'git-todos auth'", ErrMissingToken, gitHubTokenKey)
	}

	httpClient := g.httpClient
	if httpClient == nil {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}
	client := github.NewClient(httpClient)

	if base := webBaseURL(conf.String(gitHubHostKey), GitHubDomain); hostName(base) != GitHubDomain {
		var err error
		client, err = client.WithEnterpriseURLs(base+"/api/v3/", base+"/api/uploads/")
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", gitHubHostKey, err)
		}
	}

	if _, resp, err := client.Users.Get(ctx, ""); err != nil {
		return nil, g.handleGitHubError(err, resp)
	}

	return client, nil
}

// FindIssueByTitle returns the first open issue whose title matches, ignoring case.
func (g *GitHub) FindIssueByTitle(ctx context.Context, c Client, repo, title string) (*issue.Issue, error) {
	issues, err := g.AllIssues(ctx, c, repo)
	if err != nil {
		return nil, err
	}
	return findByTitle(issues, title), nil
}

// AllIssues returns the open issues of the repository, pull requests excluded.
func (g *GitHub) AllIssues(ctx context.Context, c Client, repo string) ([]*issue.Issue, error) {
	client, owner, name, err := g.prepare(c, repo)
	if err != nil {
		return nil, err
	}

	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: gitHubPageSize},
	}

	var issues []*issue.Issue
	for {
		page, resp, err := client.Issues.ListByRepo(ctx, owner, name, opts)
		if err != nil {
			return nil, g.handleGitHubError(err, resp)
		}

		for _, i := range page {
			if i.IsPullRequest() {
				continue
			}
			issues = append(issues, fromGitHubIssue(i))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return issues, nil
}

// CreateIssue opens a new issue.
func (g *GitHub) CreateIssue(ctx context.Context, c Client, repo string, params CreateIssueParams) (*issue.Issue, error) {
	client, owner, name, err := g.prepare(c, repo)
	if err != nil {
		return nil, err
	}

	labels := params.Labels
	if labels == nil {
		labels = []string{}
	}
	req := &github.IssueRequest{
		Title:  github.String(params.Title),
		Body:   github.String(params.Body),
		Labels: &labels,
	}
	if params.Assignee != "" {
		req.Assignees = &[]string{params.Assignee}
	}

	created, resp, err := client.Issues.Create(ctx, owner, name, req)
	if err != nil {
		return nil, g.handleGitHubError(err, resp)
	}

	return fromGitHubIssue(created), nil
}

// CommentIssue posts a comment on an issue.
func (g *GitHub) CommentIssue(ctx context.Context, c Client, repo string, number int, body string) (*issue.Comment, error) {
	client, owner, name, err := g.prepare(c, repo)
	if err != nil {
		return nil, err
	}

	comment, resp, err := client.Issues.CreateComment(ctx, owner, name, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp)
	}

	return issue.NewComment(number, comment.GetHTMLURL()), nil
}

// TagIssue adds a label to an issue if it does not carry it yet.
func (g *GitHub) TagIssue(ctx context.Context, c Client, repo string, number int, label string) (*issue.Issue, error) {
	client, owner, name, err := g.prepare(c, repo)
	if err != nil {
		return nil, err
	}

	current, resp, err := client.Issues.Get(ctx, owner, name, number)
	if err != nil {
		return nil, g.handleGitHubError(err, resp)
	}

	result := fromGitHubIssue(current)
	if result.HasLabel(label) {
		return result, nil
	}

	if _, resp, err := client.Issues.AddLabelsToIssue(ctx, owner, name, number, []string{label}); err != nil {
		return nil, g.handleGitHubError(err, resp)
	}

	result.Labels = append(result.Labels, label)
	return result, nil
}

// GetFileURL links to a line of a file at a given commit.
func (g *GitHub) GetFileURL(repo, path, sha string, line int) string {
	url := g.baseURL + "/" + repo + "/blob/"
	if sha != "" {
		url += sha + "/"
	}
	url += path
	if line > 0 {
		url += fmt.Sprintf("#L%d", line)
	}
	return url
}

// GuessRepoFromURL extracts "user/repository" from a remote URL on the configured host.
func (g *GitHub) GuessRepoFromURL(url string) (string, bool) {
	repo, ok := splitRemoteURL(url, hostName(g.baseURL))
	if !ok || !ownerRepoRegexp.MatchString(repo) {
		return "", false
	}
	return repo, true
}

func (g *GitHub) prepare(c Client, repo string) (*github.Client, string, string, error) {
	client, ok := c.(*github.Client)
	if !ok || client == nil {
		return nil, "", "", fmt.Errorf("%w: %s", ErrInvalidClient, GitHubName)
	}

	owner, name, found := strings.Cut(repo, "/")
	if !found || owner == "" || name == "" {
		return nil, "", "", fmt.Errorf("%w: %q", ErrInvalidRepo, repo)
	}

	return client, owner, name, nil
}

// handleGitHubError maps GitHub API errors to service errors.
func (g *GitHub) handleGitHubError(err error, resp *github.Response) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check %s or run 'git-todos auth --force': %w", ErrUnauthorized, gitHubTokenKey, err)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: %w", ErrRateLimited, err)
			}
			return fmt.Errorf("%w: access forbidden: %w", ErrUnauthorized, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", issue.ErrIssueNotFound, err)
		}
	}

	return fmt.Errorf("github API call failed: %w", err)
}

func fromGitHubIssue(i *github.Issue) *issue.Issue {
	labels := make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		labels = append(labels, l.GetName())
	}
	return issue.NewIssue(i.GetNumber(), i.GetHTMLURL(), i.GetTitle(), labels)
}

func findByTitle(issues []*issue.Issue, title string) *issue.Issue {
	for _, i := range issues {
		if strings.EqualFold(i.Title, title) {
			return i
		}
	}
	return nil
}
