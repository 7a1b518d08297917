//go:build unit

package todo

import (
	"testing"

	"github.com/lerenn/git-todos/pkg/diff"
	"github.com/stretchr/testify/assert"
)

func TestMapDiff(t *testing.T) {
	table := NewLabelTableFrom(map[string]string{"TODO ": "todo", "FIXME ": "bug"})
	files := []diff.File{
		{
			To: "b.go",
			Lines: []diff.Line{
				{Ln: 1, Content: "// TODO first in b", Add: true},
				{Ln: 2, Content: "// TODO context line", Add: false},
				{Ln: 2, Content: "// TODO deleted", Del: true},
				{Ln: 3, Content: "// FIXME #12 second in b", Add: true},
			},
		},
		{
			To: "a.go",
			Lines: []diff.Line{
				{Ln: 10, Content: "// nothing here", Add: true},
				{Ln: 11, Content: "// TODO $$$ %%% ^^^", Add: true},
				{Ln: 12, Content: "// TODO third in a", Add: true},
			},
		},
	}

	todos := MapDiff(files, "abc123", table, false)
	assert.Equal(t, []*Todo{
		{File: "b.go", SHA: "abc123", Line: 1, Title: "first in b", Label: "todo"},
		{File: "b.go", SHA: "abc123", Line: 3, Title: "second in b", Label: "bug", Issue: 12},
		{File: "a.go", SHA: "abc123", Line: 12, Title: "third in a", Label: "todo"},
	}, todos)
}

func TestMapDiff_Empty(t *testing.T) {
	assert.Empty(t, MapDiff(nil, "abc123", nil, false))
}

func TestTodo_Location(t *testing.T) {
	todo := &Todo{File: "pkg/main.go", Line: 42}
	assert.Equal(t, "pkg/main.go:42", todo.Location())
}
