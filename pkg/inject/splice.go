package inject

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var issueRefRegexp = regexp.MustCompile(`#(\d+)\s*$`)

// sourceFile is a file being rewritten, split with its line endings kept.
type sourceFile struct {
	path    string
	lines   []string
	changed bool
	pairs   []pair
}

// injectAll applies every pair, then writes each modified file once.
// It returns the pairs whose file was rewritten.
func (i *realInjector) injectAll(ps []pair, report *Report) []pair {
	if len(ps) == 0 {
		return nil
	}

	root, err := i.root()
	if err != nil {
		for _, p := range ps {
			report.warn(Warning{File: p.todo.File, Line: p.todo.Line, Issue: p.issue, Err: err})
		}
		return nil
	}

	files := map[string]*sourceFile{}
	var order []string

	for _, p := range ps {
		path := i.absPath(root, p.todo.File)

		f, ok := files[path]
		if !ok {
			content, err := i.fs.ReadFile(path)
			if err != nil {
				report.warn(Warning{File: p.todo.File, Line: p.todo.Line, Issue: p.issue, Err: err})
				continue
			}
			f = &sourceFile{path: path, lines: strings.SplitAfter(string(content), "\n")}
			files[path] = f
			order = append(order, path)
		}

		changed, err := f.inject(p)
		if err != nil {
			report.warn(Warning{File: p.todo.File, Line: p.todo.Line, Issue: p.issue, Err: err})
			continue
		}
		if changed {
			f.changed = true
			f.pairs = append(f.pairs, p)
			i.logger.Logf("Injected #%d in %s", p.issue, p.todo.Location())
		}
	}

	var injected []pair
	for _, path := range order {
		f := files[path]
		if !f.changed {
			continue
		}
		if err := i.fs.WriteFileAtomic(path, []byte(strings.Join(f.lines, "")), 0644); err != nil {
			for _, p := range f.pairs {
				report.warn(Warning{File: p.todo.File, Line: p.todo.Line, Issue: p.issue, Err: err})
			}
			continue
		}
		report.Files = append(report.Files, path)
		injected = append(injected, f.pairs...)
	}
	return injected
}

// inject splices "#<issue> " before the title on the marker line.
// It reports false when the title is gone or the number is already there.
func (f *sourceFile) inject(p pair) (bool, error) {
	idx := p.todo.Line - 1
	if idx < 0 || idx >= len(f.lines) {
		return false, fmt.Errorf("%w: line %d", ErrLineNotFound, p.todo.Line)
	}

	line := f.lines[idx]
	pos := strings.Index(line, p.todo.Title)
	if pos < 0 {
		return false, nil
	}

	before := line[:pos]
	if m := issueRefRegexp.FindStringSubmatch(before); m != nil && m[1] == strconv.Itoa(p.issue) {
		return false, nil
	}

	f.lines[idx] = before + "#" + strconv.Itoa(p.issue) + " " + line[pos:]
	return true, nil
}
