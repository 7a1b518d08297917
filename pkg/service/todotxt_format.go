package service

import (
	"regexp"
	"strings"
)

var (
	todoTxtPriorityRegexp = regexp.MustCompile(`^\(([A-Z])\) `)
	todoTxtDateRegexp     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} `)
)

// todoTxtTask is one line of a todo.txt file.
type todoTxtTask struct {
	Complete       bool
	CompletionDate string
	Priority       string
	CreationDate   string
	Text           string
	Projects       []string
	Contexts       []string
}

// parseTodoTxt parses todo.txt content, one task per non-blank line.
func parseTodoTxt(content string) []*todoTxtTask {
	var tasks []*todoTxtTask
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		tasks = append(tasks, parseTodoTxtLine(line))
	}
	return tasks
}

func parseTodoTxtLine(line string) *todoTxtTask {
	task := &todoTxtTask{}
	rest := line

	if strings.HasPrefix(rest, "x ") {
		task.Complete = true
		rest = rest[2:]
		if date := todoTxtDateRegexp.FindString(rest); date != "" {
			task.CompletionDate = strings.TrimSpace(date)
			rest = rest[len(date):]
		}
	}

	if m := todoTxtPriorityRegexp.FindStringSubmatch(rest); m != nil {
		task.Priority = m[1]
		rest = rest[len(m[0]):]
	}

	if date := todoTxtDateRegexp.FindString(rest); date != "" {
		task.CreationDate = strings.TrimSpace(date)
		rest = rest[len(date):]
	}

	var words []string
	for _, word := range strings.Fields(rest) {
		switch {
		case len(word) > 1 && word[0] == '+':
			task.Projects = append(task.Projects, word[1:])
		case len(word) > 1 && word[0] == '@':
			task.Contexts = append(task.Contexts, word[1:])
		default:
			words = append(words, word)
		}
	}
	task.Text = strings.Join(words, " ")

	return task
}

// String formats the task back to a todo.txt line.
func (t *todoTxtTask) String() string {
	var parts []string
	if t.Complete {
		parts = append(parts, "x")
		if t.CompletionDate != "" {
			parts = append(parts, t.CompletionDate)
		}
	}
	if t.Priority != "" {
		parts = append(parts, "("+t.Priority+")")
	}
	if t.CreationDate != "" {
		parts = append(parts, t.CreationDate)
	}
	if t.Text != "" {
		parts = append(parts, t.Text)
	}
	for _, p := range t.Projects {
		parts = append(parts, "+"+p)
	}
	for _, c := range t.Contexts {
		parts = append(parts, "@"+c)
	}
	return strings.Join(parts, " ")
}

func (t *todoTxtTask) addContext(context string) {
	context = strings.Join(strings.Fields(context), "_")
	if context == "" {
		return
	}
	for _, c := range t.Contexts {
		if c == context {
			return
		}
	}
	t.Contexts = append(t.Contexts, context)
}

func (t *todoTxtTask) addProject(project string) {
	project = strings.Join(strings.Fields(project), "_")
	if project == "" {
		return
	}
	for _, p := range t.Projects {
		if p == project {
			return
		}
	}
	t.Projects = append(t.Projects, project)
}

// formatTodoTxt formats tasks as todo.txt content.
func formatTodoTxt(tasks []*todoTxtTask) string {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	return b.String()
}
