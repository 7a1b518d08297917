// Package dependencies provides a centralized dependency container for the git-todos application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/fs"
	"github.com/lerenn/git-todos/pkg/git"
	"github.com/lerenn/git-todos/pkg/logger"
	"github.com/lerenn/git-todos/pkg/prompt"
	"github.com/lerenn/git-todos/pkg/service"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing       = errors.New("fs dependency is required but not set")
	ErrGitMissing      = errors.New("git dependency is required but not set")
	ErrConfigMissing   = errors.New("config dependency is required but not set")
	ErrLoggerMissing   = errors.New("logger dependency is required but not set")
	ErrPromptMissing   = errors.New("prompt dependency is required but not set")
	ErrServicesMissing = errors.New("service registry dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
// This follows the Go idiom of grouping related data together.
type Dependencies struct {
	FS       fs.FS
	Git      git.Git
	Config   config.Store
	Logger   logger.Logger
	Prompt   prompt.Prompter
	Services service.RegistryInterface
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	f := fs.NewFS()
	g := git.NewGit()
	l := logger.NewNoopLogger()

	return &Dependencies{
		FS:       f,
		Git:      g,
		Config:   config.NewStore(g, f),
		Logger:   l,
		Prompt:   prompt.NewPrompt(),
		Services: service.NewRegistry(l),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config store and returns the instance for chaining.
func (d *Dependencies) WithConfig(store config.Store) *Dependencies {
	d.Config = store
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithServices sets the service registry and returns the instance for chaining.
func (d *Dependencies) WithServices(registry service.RegistryInterface) *Dependencies {
	d.Services = registry
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Services, ErrServicesMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
