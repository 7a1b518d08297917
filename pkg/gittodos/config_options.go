package gittodos

import (
	"fmt"
	"strings"

	"github.com/lerenn/git-todos/pkg/config"
)

// ConfigOpts contains the flags of the config operations.
type ConfigOpts struct {
	// Extra allows options git-todos does not use.
	Extra bool
	// Defaults falls back to the default values for unset options.
	Defaults bool
}

// ConfigList returns the options stored in the local git config.
func (g *realGitTodos) ConfigList(opts ConfigOpts) (map[string]string, error) {
	local, err := g.deps.Config.Local(g.repoPath)
	if err != nil {
		return nil, err
	}

	out := map[string]string{}
	if opts.Defaults {
		for k, v := range config.Defaults().All() {
			out[k] = v
		}
	}
	for k, v := range local {
		if !opts.Extra && !config.IsKnownKey(k) {
			continue
		}
		// git lower-cases the last key segment
		for existing := range out {
			if existing != k && strings.EqualFold(existing, k) {
				delete(out, existing)
			}
		}
		out[k] = v
	}

	return out, nil
}

// ConfigGet returns a stored option, or its default when opts.Defaults is set.
func (g *realGitTodos) ConfigGet(key string, opts ConfigOpts) (string, error) {
	if err := checkOption(key, opts); err != nil {
		return "", err
	}

	local, err := g.deps.Config.Local(g.repoPath)
	if err != nil {
		return "", err
	}
	for k, v := range local {
		if strings.EqualFold(k, key) {
			return v, nil
		}
	}

	if opts.Defaults {
		if v, ok := config.Defaults().Get(key); ok {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrOptionNotSet, key)
}

// ConfigSet stores an option in the local git config.
func (g *realGitTodos) ConfigSet(key, value string, opts ConfigOpts) error {
	if err := checkOption(key, opts); err != nil {
		return err
	}
	return g.deps.Config.Set(g.repoPath, key, value)
}

// ConfigUnset removes an option from the local git config.
func (g *realGitTodos) ConfigUnset(key string, opts ConfigOpts) error {
	if err := checkOption(key, opts); err != nil {
		return err
	}
	return g.deps.Config.Unset(g.repoPath, key)
}

func checkOption(key string, opts ConfigOpts) error {
	if !opts.Extra && !config.IsKnownKey(key) {
		return fmt.Errorf("%w: %s", ErrUnsupportedOption, key)
	}
	return nil
}
