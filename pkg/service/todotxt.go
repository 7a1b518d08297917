package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/fs"
	"github.com/lerenn/git-todos/pkg/issue"
)

const (
	// TodoTxtName is the name identifier for the todo.txt service.
	TodoTxtName = "todotxt"
	// TodoTxtDefaultFile is the task file used when no repo is configured.
	TodoTxtDefaultFile = "todo.txt"

	todoTxtContextKey  = "todotxt.context"
	todoTxtProjectKey  = "todotxt.project"
	todoTxtPriorityKey = "todotxt.priority"
)

// TodoTxt keeps issues as tasks of a local todo.txt file.
// The issue number of a task is its 1-based position in the file.
type TodoTxt struct {
	fs  fs.FS
	now func() time.Time
}

// todoTxtClient carries the creation options of a connected todo.txt service.
type todoTxtClient struct {
	mu       sync.Mutex
	context  string
	project  string
	priority string
}

// NewTodoTxt creates the todo.txt backend.
func NewTodoTxt() *TodoTxt {
	return &TodoTxt{fs: fs.NewFS(), now: time.Now}
}

// Name returns the name of the service.
func (t *TodoTxt) Name() string {
	return TodoTxtName
}

// Meta describes the service.
func (t *TodoTxt) Meta() Meta {
	return Meta{
		Name:        TodoTxtName,
		Description: "TODO.txt issue service",
		RepoFormat:  "/path/to/todo.txt (default = ./todo.txt)",
		Options:     []string{todoTxtContextKey, todoTxtProjectKey, todoTxtPriorityKey},
	}
}

// ValidateConfig checks the priority option.
func (t *TodoTxt) ValidateConfig(conf config.Config) error {
	priority := conf.String(todoTxtPriorityKey)
	if priority != "" && (len(priority) != 1 || priority[0] < 'A' || priority[0] > 'Z') {
		return fmt.Errorf("%s must be a single upper-case letter, got %q", todoTxtPriorityKey, priority)
	}
	return nil
}

// Connect keeps the creation options, nothing is opened.
func (t *TodoTxt) Connect(_ context.Context, conf config.Config) (Client, error) {
	return &todoTxtClient{
		context:  conf.String(todoTxtContextKey),
		project:  conf.String(todoTxtProjectKey),
		priority: conf.String(todoTxtPriorityKey),
	}, nil
}

// FindIssueByTitle returns the first task whose text contains title, ignoring case.
func (t *TodoTxt) FindIssueByTitle(ctx context.Context, c Client, repo, title string) (*issue.Issue, error) {
	issues, err := t.AllIssues(ctx, c, repo)
	if err != nil {
		return nil, err
	}

	title = strings.ToLower(title)
	for _, i := range issues {
		if strings.Contains(strings.ToLower(i.Title), title) {
			return i, nil
		}
	}
	return nil, nil
}

// AllIssues returns every task of the file. A missing file has no tasks.
func (t *TodoTxt) AllIssues(_ context.Context, c Client, repo string) ([]*issue.Issue, error) {
	client, err := t.prepare(c)
	if err != nil {
		return nil, err
	}
	client.mu.Lock()
	defer client.mu.Unlock()

	path := todoTxtPath(repo)
	tasks, err := t.read(path)
	if err != nil {
		return nil, err
	}

	issues := make([]*issue.Issue, 0, len(tasks))
	for idx, task := range tasks {
		issues = append(issues, todoTxtIssue(path, idx+1, task))
	}
	return issues, nil
}

// CreateIssue appends a task. The body is not kept.
func (t *TodoTxt) CreateIssue(_ context.Context, c Client, repo string, params CreateIssueParams) (*issue.Issue, error) {
	client, err := t.prepare(c)
	if err != nil {
		return nil, err
	}
	client.mu.Lock()
	defer client.mu.Unlock()

	path := todoTxtPath(repo)
	tasks, err := t.read(path)
	if err != nil {
		return nil, err
	}

	task := &todoTxtTask{
		Text:         strings.TrimSpace(params.Title),
		CreationDate: t.now().Format(time.DateOnly),
		Priority:     client.priority,
	}
	for _, label := range params.Labels {
		task.addContext(label)
	}
	task.addContext(client.context)
	task.addProject(client.project)

	tasks = append(tasks, task)
	if err := t.write(path, tasks); err != nil {
		return nil, err
	}

	return todoTxtIssue(path, len(tasks), task), nil
}

// CommentIssue cannot comment: the task is reopened instead.
func (t *TodoTxt) CommentIssue(_ context.Context, c Client, repo string, number int, _ string) (*issue.Comment, error) {
	path := todoTxtPath(repo)
	_, err := t.update(c, path, number, func(task *todoTxtTask) {
		task.Complete = false
		task.CompletionDate = ""
	})
	if err != nil {
		return nil, err
	}
	return issue.NewComment(number, todoTxtURL(path, number)), nil
}

// TagIssue adds the label as a context of the task.
func (t *TodoTxt) TagIssue(_ context.Context, c Client, repo string, number int, label string) (*issue.Issue, error) {
	return t.update(c, todoTxtPath(repo), number, func(task *todoTxtTask) {
		task.addContext(label)
	})
}

// GetFileURL links to the source file on disk.
func (t *TodoTxt) GetFileURL(_, path, _ string, line int) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	url := "file://" + abs
	if line > 0 {
		url += fmt.Sprintf("#L%d", line)
	}
	return url
}

// GuessRepoFromURL always proposes ./todo.txt.
func (t *TodoTxt) GuessRepoFromURL(_ string) (string, bool) {
	abs, err := filepath.Abs(TodoTxtDefaultFile)
	if err != nil {
		return TodoTxtDefaultFile, true
	}
	return abs, true
}

func (t *TodoTxt) update(c Client, path string, number int, change func(*todoTxtTask)) (*issue.Issue, error) {
	client, err := t.prepare(c)
	if err != nil {
		return nil, err
	}
	client.mu.Lock()
	defer client.mu.Unlock()

	tasks, err := t.read(path)
	if err != nil {
		return nil, err
	}
	if number < 1 || number > len(tasks) {
		return nil, fmt.Errorf("%w: task #%d in %s", issue.ErrIssueNotFound, number, path)
	}

	task := tasks[number-1]
	change(task)
	if err := t.write(path, tasks); err != nil {
		return nil, err
	}

	return todoTxtIssue(path, number, task), nil
}

func (t *TodoTxt) read(path string) ([]*todoTxtTask, error) {
	data, err := t.fs.ReadFileIfExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseTodoTxt(string(data)), nil
}

func (t *TodoTxt) write(path string, tasks []*todoTxtTask) error {
	if err := t.fs.WriteFileAtomic(path, []byte(formatTodoTxt(tasks)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (t *TodoTxt) prepare(c Client) (*todoTxtClient, error) {
	client, ok := c.(*todoTxtClient)
	if !ok || client == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidClient, TodoTxtName)
	}
	return client, nil
}

func todoTxtPath(repo string) string {
	if repo == "" {
		return TodoTxtDefaultFile
	}
	return repo
}

func todoTxtURL(path string, number int) string {
	return fmt.Sprintf("file://%s#%d", path, number)
}

func todoTxtIssue(path string, number int, task *todoTxtTask) *issue.Issue {
	labels := append([]string{}, task.Contexts...)
	return issue.NewIssue(number, todoTxtURL(path, number), task.Text, labels)
}
