// Package configs provides embedded files for the git-todos application.
package configs

import (
	_ "embed"
	"regexp"
	"strings"
)

// PrePushCommand is the line git-todos owns inside a pre-push hook.
const PrePushCommand = `git-todos _hook --remote "$1" || exit $?`

// prePushTemplate contains the pre-push hook installed by "git-todos init".
//
//go:embed pre-push.sh
var prePushTemplate string

var commandPlaceholder = regexp.MustCompile(`\{\s*command\s*\}`)

// PrePushScript returns the full pre-push hook script.
func PrePushScript() string {
	return commandPlaceholder.ReplaceAllLiteralString(prePushTemplate, PrePushCommand)
}

// IsPrePushScript reports whether content is the unmodified hook script.
func IsPrePushScript(content string) bool {
	return strings.TrimSpace(content) == strings.TrimSpace(PrePushScript())
}
