// Package gittodos wires the git-todos components into the user-facing operations.
package gittodos

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/dependencies"
	"github.com/lerenn/git-todos/pkg/inject"
	"github.com/lerenn/git-todos/pkg/issue"
	"github.com/lerenn/git-todos/pkg/logger"
	"github.com/lerenn/git-todos/pkg/prehook"
	"github.com/lerenn/git-todos/pkg/service"
	"github.com/lerenn/git-todos/pkg/synchronizer"
	"github.com/lerenn/git-todos/pkg/todo"
)

// Environment variables read by git-todos.
const (
	EnvDisable = "NO_GIT_TODOS"
	EnvDryRun  = "DRY_RUN"
)

// GitTodos interface provides the git-todos operations.
type GitTodos interface {
	// CheckEnv verifies that git is available.
	CheckEnv() error
	// PrePush analyzes the pushed commits and synchronizes their markers.
	PrePush(ctx context.Context, opts PrePushOpts) (PrePushReport, error)
	// ListServices returns the available issue services.
	ListServices() []service.Meta
	// Auth connects to the configured issue service, asking for a token when needed.
	Auth(ctx context.Context, force bool) (string, error)
	// ConfigList returns the stored options.
	ConfigList(opts ConfigOpts) (map[string]string, error)
	// ConfigGet returns a stored option.
	ConfigGet(key string, opts ConfigOpts) (string, error)
	// ConfigSet stores an option.
	ConfigSet(key, value string, opts ConfigOpts) error
	// ConfigUnset removes an option.
	ConfigUnset(key string, opts ConfigOpts) error
	// InstallHook installs the pre-push hook.
	InstallHook(force bool) (prehook.Result, error)
	// UninstallHook removes the pre-push hook.
	UninstallHook(force bool) (prehook.Result, error)
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// PrePushOpts contains the inputs of a pre-push run.
type PrePushOpts struct {
	// Remote is the name of the remote being pushed to.
	Remote string
	// Range is an explicit commit range; git hook lines are read from Stdin otherwise.
	Range string
	Stdin io.Reader
	// DryRun replaces every tracker call with placeholders.
	DryRun bool
}

// PrePushReport is the outcome of a pre-push run.
type PrePushReport struct {
	// Disabled is set when the run was turned off by the environment.
	Disabled bool
	// Ignored explains why the push was not analyzed, empty otherwise.
	Ignored string
	Ranges  []RangeReport
}

// RangeReport is the outcome of one analyzed commit range.
type RangeReport struct {
	Range     string
	SHA       string
	Todos     []*todo.Todo
	Results   []issue.Result
	Injection *inject.Report
}

// NewGitTodosParams contains parameters for creating a new GitTodos instance.
type NewGitTodosParams struct {
	Dependencies *dependencies.Dependencies
	// RepoPath is the working directory inside the repository.
	RepoPath string
	// OnProgress receives one call per processed marker.
	OnProgress synchronizer.ProgressFunc
	// Getenv defaults to os.Getenv.
	Getenv func(string) string

	// Component constructors, replaced in tests.
	NewSynchronizer func(params synchronizer.Params) synchronizer.Synchronizer
	NewInjector     func(params InjectorParams) inject.Injector
	NewInstaller    func(params InstallerParams) prehook.Installer
}

// InjectorParams contains the collaborators of an injector.
type InjectorParams struct {
	Dependencies *dependencies.Dependencies
	RepoPath     string
}

// InstallerParams contains the collaborators of a hook installer.
type InstallerParams struct {
	Dependencies *dependencies.Dependencies
	RepoPath     string
}

type realGitTodos struct {
	deps            *dependencies.Dependencies
	repoPath        string
	onProgress      synchronizer.ProgressFunc
	getenv          func(string) string
	newSynchronizer func(params synchronizer.Params) synchronizer.Synchronizer
	newInjector     func(params InjectorParams) inject.Injector
	newInstaller    func(params InstallerParams) prehook.Installer
}

// NewGitTodos creates a new GitTodos instance.
func NewGitTodos(params NewGitTodosParams) (GitTodos, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDependenciesConfig, err)
	}

	repoPath := params.RepoPath
	if repoPath == "" {
		repoPath = "."
	}

	g := &realGitTodos{
		deps:            deps,
		repoPath:        repoPath,
		onProgress:      params.OnProgress,
		getenv:          params.Getenv,
		newSynchronizer: params.NewSynchronizer,
		newInjector:     params.NewInjector,
		newInstaller:    params.NewInstaller,
	}

	if g.getenv == nil {
		g.getenv = os.Getenv
	}
	if g.newSynchronizer == nil {
		g.newSynchronizer = synchronizer.New
	}
	if g.newInjector == nil {
		g.newInjector = func(p InjectorParams) inject.Injector {
			return inject.New(p.Dependencies.Git, p.Dependencies.FS, p.RepoPath, p.Dependencies.Logger)
		}
	}
	if g.newInstaller == nil {
		g.newInstaller = func(p InstallerParams) prehook.Installer {
			return prehook.NewInstaller(p.Dependencies.Git, p.Dependencies.FS, p.RepoPath, p.Dependencies.Logger)
		}
	}

	return g, nil
}

// SetLogger sets the logger for this instance.
func (g *realGitTodos) SetLogger(l logger.Logger) {
	g.deps.Logger = l
}

// VerbosePrint logs a formatted message using the current logger.
func (g *realGitTodos) VerbosePrint(msg string, args ...interface{}) {
	if g.deps.Logger != nil {
		g.deps.Logger.Logf(msg, args...)
	}
}

// CheckEnv verifies that git is available.
func (g *realGitTodos) CheckEnv() error {
	if _, err := g.deps.FS.Which("git"); err != nil {
		return fmt.Errorf("%w: %w", ErrGitNotFound, err)
	}
	return nil
}

// loadConfig returns the effective configuration of the repository.
func (g *realGitTodos) loadConfig() (config.Config, error) {
	return g.deps.Config.Load(g.repoPath)
}
