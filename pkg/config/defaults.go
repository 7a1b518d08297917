package config

// Well-known configuration keys.
const (
	KeyService         = "service"
	KeyRepo            = "repo"
	KeyRemotes         = "remotes"
	KeyBranches        = "branches"
	KeyCaseSensitive   = "case-sensitive"
	KeyLabelWhitespace = "label-whitespace"
	KeyContext         = "context"
	KeySignature       = "signature"
	KeyConfirmCreate   = "confirm-create"
	KeyInjectIssue     = "inject-issue"

	PrefixLabel    = "label."
	PrefixAssignee = "github.assignee."

	// AllRemotes disables the remote filter when used as the remotes value.
	AllRemotes = "ALL"
)

var defaults = map[string]string{
	KeyService:         "github",
	KeyRemotes:         "origin",
	KeyBranches:        "master,main,develop",
	KeyCaseSensitive:   "false",
	KeyLabelWhitespace: "true",
	KeyContext:         "3",
	KeySignature:       ":octocat: Automatically created by git-todos",
	KeyConfirmCreate:   "true",
	KeyInjectIssue:     "false",

	PrefixLabel + "TODO":  "TODO",
	PrefixLabel + "FIXME": "FIXME",
}

// knownPrefixes are families of keys documented beside the defaults.
var knownPrefixes = []string{
	PrefixLabel,
	PrefixAssignee,
	"github.",
	"gitlab.",
	"todotxt.",
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return New(defaults)
}

// IsKnownKey reports whether key is a default key or belongs to a documented family.
func IsKnownKey(key string) bool {
	if _, ok := defaults[key]; ok {
		return true
	}
	if key == KeyRepo {
		return true
	}
	for _, prefix := range knownPrefixes {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
