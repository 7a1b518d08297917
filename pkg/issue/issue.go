// Package issue provides the tracker records shared by every issue service.
package issue

import "strings"

// Result kinds.
const (
	KindIssue   = "issue"
	KindComment = "comment"
)

// Issue represents an issue of a tracker.
type Issue struct {
	Type   string   `json:"type"`
	Number int      `json:"number"`
	URL    string   `json:"url"`
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
}

// Comment represents a comment posted on an issue.
type Comment struct {
	Type  string `json:"type"`
	Issue int    `json:"issue"`
	URL   string `json:"url"`
}

// Result is the outcome of synchronizing one marker: a created *Issue or a posted *Comment.
// A nil Result means the marker was skipped.
type Result interface {
	Kind() string
	// IssueNumber is the number of the issue the marker is now linked to.
	IssueNumber() int
	Link() string
}

// NewIssue creates an Issue record.
func NewIssue(number int, url, title string, labels []string) *Issue {
	if labels == nil {
		labels = []string{}
	}
	return &Issue{Type: KindIssue, Number: number, URL: url, Title: title, Labels: labels}
}

// NewComment creates a Comment record.
func NewComment(issueNumber int, url string) *Comment {
	return &Comment{Type: KindComment, Issue: issueNumber, URL: url}
}

// Kind returns KindIssue.
func (i *Issue) Kind() string { return KindIssue }

// IssueNumber returns the issue number.
func (i *Issue) IssueNumber() int { return i.Number }

// Link returns the issue URL.
func (i *Issue) Link() string { return i.URL }

// HasLabel reports whether the issue carries label, ignoring case.
func (i *Issue) HasLabel(label string) bool {
	for _, l := range i.Labels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

// Kind returns KindComment.
func (c *Comment) Kind() string { return KindComment }

// IssueNumber returns the number of the commented issue.
func (c *Comment) IssueNumber() int { return c.Issue }

// Link returns the comment URL.
func (c *Comment) Link() string { return c.URL }

// Placeholders returned instead of contacting a tracker in dry-run mode.
const (
	fakeNumber = -1
	fakeURL    = "http://nope"
)

// FakeIssue returns the dry-run issue placeholder.
func FakeIssue() *Issue {
	return NewIssue(fakeNumber, fakeURL, "FAKE", nil)
}

// FakeComment returns the dry-run comment placeholder.
func FakeComment() *Comment {
	return NewComment(fakeNumber, fakeURL)
}
