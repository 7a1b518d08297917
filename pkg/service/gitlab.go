package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/issue"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const (
	// GitLabName is the name identifier for the GitLab service.
	GitLabName = "gitlab"
	// GitLabDomain is the public GitLab host.
	GitLabDomain = "gitlab.com"

	gitLabTokenKey = "gitlab.token"
	gitLabHostKey  = "gitlab.host"
	gitLabTokenEnv = "GITLAB_TOKEN"
	gitLabPageSize = 100
)

// GitLab is the GitLab issue service. Comments are issue notes.
type GitLab struct {
	// baseURL is the web root of gitlab.com or of the self-hosted instance.
	baseURL string
	// httpClient replaces the default transport when set.
	httpClient *http.Client
}

// NewGitLab creates the GitLab backend for the host configured in gitlab.host.
func NewGitLab(conf config.Config) *GitLab {
	return &GitLab{baseURL: webBaseURL(conf.String(gitLabHostKey), GitLabDomain)}
}

// Name returns the name of the service.
func (g *GitLab) Name() string {
	return GitLabName
}

// Meta describes the service.
func (g *GitLab) Meta() Meta {
	return Meta{
		Name:        GitLabName,
		Description: "GitLab issue service",
		RepoFormat:  "group/project (nested groups allowed)",
		Options:     []string{gitLabTokenKey, gitLabHostKey},
		TokenKey:    gitLabTokenKey,
	}
}

// ValidateConfig checks the project path.
func (g *GitLab) ValidateConfig(conf config.Config) error {
	repo := conf.String(config.KeyRepo)
	if !strings.Contains(repo, "/") || strings.ContainsAny(repo, " \t") {
		return fmt.Errorf("%w: %q, expected group/project", ErrInvalidRepo, repo)
	}
	return nil
}

// Connect authenticates with the configured token and checks it with the current user.
func (g *GitLab) Connect(ctx context.Context, conf config.Config) (Client, error) {
	token := conf.String(gitLabTokenKey)
	if token == "" {
		token = os.Getenv(gitLabTokenEnv)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: set %s or run 'git-todos auth'", ErrMissingToken, gitLabTokenKey)
	}

	var opts []gitlab.ClientOptionFunc
	if base := webBaseURL(conf.String(gitLabHostKey), GitLabDomain); hostName(base) != GitLabDomain {
		opts = append(opts, gitlab.WithBaseURL(base+"/api/v4"))
	}
	if g.httpClient != nil {
		opts = append(opts, gitlab.WithHTTPClient(g.httpClient))
	}

	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating gitlab client: %w", err)
	}

	if _, resp, err := client.Users.CurrentUser(gitlab.WithContext(ctx)); err != nil {
		return nil, g.handleGitLabError(err, resp)
	}

	return client, nil
}

// FindIssueByTitle returns the first open issue whose title matches, ignoring case.
func (g *GitLab) FindIssueByTitle(ctx context.Context, c Client, repo, title string) (*issue.Issue, error) {
	client, err := g.prepare(c)
	if err != nil {
		return nil, err
	}

	issues, err := g.listIssues(ctx, client, repo, &gitlab.ListProjectIssuesOptions{
		State:  gitlab.Ptr("opened"),
		Search: gitlab.Ptr(title),
	})
	if err != nil {
		return nil, err
	}

	return findByTitle(issues, title), nil
}

// AllIssues returns the open issues of the project.
func (g *GitLab) AllIssues(ctx context.Context, c Client, repo string) ([]*issue.Issue, error) {
	client, err := g.prepare(c)
	if err != nil {
		return nil, err
	}

	return g.listIssues(ctx, client, repo, &gitlab.ListProjectIssuesOptions{
		State: gitlab.Ptr("opened"),
	})
}

func (g *GitLab) listIssues(
	ctx context.Context, client *gitlab.Client, repo string, opts *gitlab.ListProjectIssuesOptions,
) ([]*issue.Issue, error) {
	opts.ListOptions = gitlab.ListOptions{
		Page:    1,
		PerPage: gitLabPageSize,
	}

	var issues []*issue.Issue
	for {
		page, resp, err := client.Issues.ListProjectIssues(repo, opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, g.handleGitLabError(err, resp)
		}

		for _, i := range page {
			issues = append(issues, fromGitLabIssue(i))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return issues, nil
}

// CreateIssue opens a new issue. The assignee is not forwarded: GitLab assigns by user ID.
func (g *GitLab) CreateIssue(ctx context.Context, c Client, repo string, params CreateIssueParams) (*issue.Issue, error) {
	client, err := g.prepare(c)
	if err != nil {
		return nil, err
	}

	labels := gitlab.LabelOptions(params.Labels)
	created, resp, err := client.Issues.CreateIssue(repo, &gitlab.CreateIssueOptions{
		Title:       gitlab.Ptr(params.Title),
		Description: gitlab.Ptr(params.Body),
		Labels:      &labels,
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, g.handleGitLabError(err, resp)
	}

	return fromGitLabIssue(created), nil
}

// CommentIssue posts a note on an issue.
func (g *GitLab) CommentIssue(ctx context.Context, c Client, repo string, number int, body string) (*issue.Comment, error) {
	client, err := g.prepare(c)
	if err != nil {
		return nil, err
	}

	note, resp, err := client.Notes.CreateIssueNote(repo, int64(number), &gitlab.CreateIssueNoteOptions{
		Body: gitlab.Ptr(body),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, g.handleGitLabError(err, resp)
	}

	url := fmt.Sprintf("%s/%s/-/issues/%d#note_%d", g.baseURL, repo, number, note.ID)
	return issue.NewComment(number, url), nil
}

// TagIssue adds a label to an issue, keeping the existing ones.
func (g *GitLab) TagIssue(ctx context.Context, c Client, repo string, number int, label string) (*issue.Issue, error) {
	client, err := g.prepare(c)
	if err != nil {
		return nil, err
	}

	labels := gitlab.LabelOptions{label}
	updated, resp, err := client.Issues.UpdateIssue(repo, int64(number), &gitlab.UpdateIssueOptions{
		AddLabels: &labels,
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, g.handleGitLabError(err, resp)
	}

	return fromGitLabIssue(updated), nil
}

// GetFileURL links to a line of a file at a given commit.
func (g *GitLab) GetFileURL(repo, path, sha string, line int) string {
	ref := sha
	if ref == "" {
		ref = "HEAD"
	}
	url := fmt.Sprintf("%s/%s/-/blob/%s/%s", g.baseURL, repo, ref, path)
	if line > 0 {
		url += fmt.Sprintf("#L%d", line)
	}
	return url
}

// GuessRepoFromURL extracts "group/project" from a remote URL on the configured host.
func (g *GitLab) GuessRepoFromURL(url string) (string, bool) {
	return splitRemoteURL(url, hostName(g.baseURL))
}

func (g *GitLab) prepare(c Client) (*gitlab.Client, error) {
	client, ok := c.(*gitlab.Client)
	if !ok || client == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidClient, GitLabName)
	}
	return client, nil
}

// handleGitLabError maps GitLab API errors to service errors.
func (g *GitLab) handleGitLabError(err error, resp *gitlab.Response) error {
	if resp != nil && resp.Response != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: check %s or run 'git-todos auth --force': %w", ErrUnauthorized, gitLabTokenKey, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", ErrRateLimited, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", issue.ErrIssueNotFound, err)
		}
	}
	return fmt.Errorf("gitlab API call failed: %w", err)
}

func fromGitLabIssue(i *gitlab.Issue) *issue.Issue {
	labels := make([]string, 0, len(i.Labels))
	labels = append(labels, i.Labels...)
	return issue.NewIssue(int(i.IID), i.WebURL, i.Title, labels)
}
