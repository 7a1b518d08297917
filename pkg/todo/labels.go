package todo

import (
	"sort"
	"strings"

	"github.com/lerenn/git-todos/pkg/config"
)

// Label maps a trigger to the tracker label it raises.
type Label struct {
	Trigger string
	Label   string
}

// LabelTable is the ordered list of triggers tried on each line.
// Longer triggers come first, then lexical order, so "TODO:" wins over "TODO" on the same line.
type LabelTable []Label

// NewLabelTable builds the table from the label.<trigger> configuration entries.
// Entries whose value is empty or a falsy word are disabled.
func NewLabelTable(conf config.Config) LabelTable {
	whitespace := conf.Bool(config.KeyLabelWhitespace)

	var table LabelTable
	for trigger, label := range conf.WithPrefix(config.PrefixLabel) {
		if isDisabled(label) {
			continue
		}
		if whitespace {
			trigger += " "
		}
		table = append(table, Label{Trigger: trigger, Label: label})
	}

	table.sort()
	return table
}

// NewLabelTableFrom builds a table from trigger -> label pairs, used as is.
func NewLabelTableFrom(labels map[string]string) LabelTable {
	table := make(LabelTable, 0, len(labels))
	for trigger, label := range labels {
		table = append(table, Label{Trigger: trigger, Label: label})
	}
	table.sort()
	return table
}

func (t LabelTable) sort() {
	sort.Slice(t, func(i, j int) bool {
		if len(t[i].Trigger) != len(t[j].Trigger) {
			return len(t[i].Trigger) > len(t[j].Trigger)
		}
		return t[i].Trigger < t[j].Trigger
	})
}

func isDisabled(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "false", "no", "off", "0":
		return true
	}
	return false
}
