package todo

import "github.com/lerenn/git-todos/pkg/diff"

// MapDiff extracts a Todo from every added line, in file order then line order.
// Deleted files must be filtered out beforehand.
func MapDiff(files []diff.File, sha string, table LabelTable, caseSensitive bool) []*Todo {
	var todos []*Todo
	for _, file := range files {
		for _, line := range file.Lines {
			if !line.Add {
				continue
			}

			match := Extract(line.Content, table, caseSensitive)
			if match == nil || match.Title == "" {
				continue
			}

			todos = append(todos, &Todo{
				File:  file.To,
				SHA:   sha,
				Line:  line.Ln,
				Title: match.Title,
				Label: match.Label,
				Issue: match.Issue,
			})
		}
	}
	return todos
}
