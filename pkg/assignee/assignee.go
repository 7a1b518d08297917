// Package assignee maps the author of a line to a tracker user name.
package assignee

import (
	"strings"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/git"
	"github.com/lerenn/git-todos/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=assignee.go -destination=mocks/assignee.gen.go -package=mocks

// Resolver finds who should be assigned a marker.
type Resolver interface {
	// Resolve returns the user name mapped to the author of file:line, empty when unknown.
	Resolve(file string, line int) string
}

type realResolver struct {
	git      git.Git
	repoPath string
	emails   map[string]string
	logger   logger.Logger
}

// NewResolver creates a Resolver from the github.assignee.<name> entries,
// each holding a comma-separated list of emails.
func NewResolver(g git.Git, repoPath string, conf config.Config, l logger.Logger) Resolver {
	if l == nil {
		l = logger.NewNoopLogger()
	}

	emails := map[string]string{}
	for name, list := range conf.WithPrefix(config.PrefixAssignee) {
		for _, email := range config.SplitList(list) {
			emails[strings.ToLower(email)] = name
		}
	}

	return &realResolver{git: g, repoPath: repoPath, emails: emails, logger: l}
}

// Resolve returns the user name mapped to the author of file:line, empty when unknown.
// Blame failures are logged and never block the synchronization.
func (r *realResolver) Resolve(file string, line int) string {
	if len(r.emails) == 0 {
		return ""
	}

	email, err := r.git.Blame(r.repoPath, file, line)
	if err != nil {
		r.logger.Logf("blame %s:%d failed, no assignee: %v", file, line, err)
		return ""
	}

	name := r.emails[strings.ToLower(email)]
	if name != "" {
		r.logger.Logf("%s:%d authored by %s, assigned to %s", file, line, email, name)
	}
	return name
}
