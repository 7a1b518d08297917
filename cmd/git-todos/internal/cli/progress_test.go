//go:build unit

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/lerenn/git-todos/pkg/issue"
	"github.com/lerenn/git-todos/pkg/todo"
	"github.com/stretchr/testify/assert"
)

func TestProgress_OnProgress(t *testing.T) {
	color.NoColor = true

	td := &todo.Todo{File: "main.go", Line: 3, Title: "Fix parser"}

	tests := []struct {
		name        string
		quiet       bool
		err         error
		result      issue.Result
		expectedOut string
		expectedErr string
	}{
		{
			name:        "created",
			result:      issue.NewIssue(5, "https://x/5", "Fix parser", nil),
			expectedOut: "✔ Created issue #5 \"Fix parser\" (https://x/5)\n",
		},
		{
			name:        "commented",
			result:      issue.NewComment(5, "https://x/5#c1"),
			expectedOut: "✔ Commented issue #5 (https://x/5#c1)\n",
		},
		{
			name:        "skipped",
			expectedOut: "- Skipped \"Fix parser\" (main.go:3)\n",
		},
		{
			name:        "quiet hides success",
			quiet:       true,
			result:      issue.NewComment(5, "u"),
			expectedOut: "",
		},
		{
			name:        "errors are always shown",
			quiet:       true,
			err:         errors.New("boom"),
			expectedErr: "✘ main.go:3: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
			p := &Progress{Out: out, Err: errOut, Quiet: tt.quiet}

			p.OnProgress(tt.err, tt.result, td)
			assert.Equal(t, tt.expectedOut, out.String())
			assert.Equal(t, tt.expectedErr, errOut.String())
		})
	}
}

func TestProgress_Infof(t *testing.T) {
	out := &bytes.Buffer{}
	(&Progress{Out: out}).Infof("Hook %s", "created")
	assert.Equal(t, "[git-todos] Hook created\n", out.String())

	out.Reset()
	(&Progress{Out: out, Quiet: true}).Infof("Hook %s", "created")
	assert.Empty(t, out.String())
}
