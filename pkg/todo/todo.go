// Package todo extracts TODO-like markers from added diff lines.
package todo

import "fmt"

// Todo is a marker found on an added line of a diff.
type Todo struct {
	File  string
	SHA   string
	Line  int
	Title string
	Label string
	// Issue is the linked issue number, 0 when the marker is not linked yet.
	Issue int
	// Assignee is resolved from blame and only annotates the record.
	Assignee string
}

// Location returns the "file:line" reference of the marker.
func (t *Todo) Location() string {
	return fmt.Sprintf("%s:%d", t.File, t.Line)
}

// Match is the result of extracting a marker from one line.
type Match struct {
	Title string
	Label string
	Issue int
}
