package todo

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var issueRefRegexp = regexp.MustCompile(`^#(\d+)\s+`)

// codeThreshold is the share of symbol characters above which a title is considered code.
const codeThreshold = 0.2

// Extract looks for the first trigger of the table in content and returns the marker, or nil.
// The first trigger found ends the scan, even when its title is then rejected.
func Extract(content string, table LabelTable, caseSensitive bool) *Match {
	for _, entry := range table {
		idx := index(content, entry.Trigger, caseSensitive)
		if idx < 0 {
			continue
		}

		title := strings.TrimSpace(content[idx+len(entry.Trigger):])
		if title == "" || IsCode(title) {
			return nil
		}

		match := &Match{Title: title, Label: entry.Label}
		if loc := issueRefRegexp.FindStringSubmatchIndex(title); loc != nil {
			n, err := strconv.Atoi(title[loc[2]:loc[3]])
			if err == nil && n > 0 {
				match.Issue = n
				match.Title = title[loc[1]:]
			}
		}

		return match
	}

	return nil
}

// IsCode reports whether more than 20% of the characters of s are symbols,
// i.e. neither letters (including Latin-1 accented ones), digits nor whitespace.
func IsCode(s string) bool {
	total, symbols := 0, 0
	for _, r := range s {
		total++
		if isSymbol(r) {
			symbols++
		}
	}
	if total == 0 {
		return false
	}
	return float64(symbols)/float64(total) > codeThreshold
}

func isSymbol(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case r >= 'À' && r <= 'ü':
		return false
	case unicode.IsSpace(r):
		return false
	}
	return true
}

func index(s, substr string, caseSensitive bool) int {
	if caseSensitive {
		return strings.Index(s, substr)
	}
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}
