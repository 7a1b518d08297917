package service

import (
	"fmt"
	"sort"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=registry.go -destination=mocks/registry.gen.go -package=mocks

// RegistryInterface defines the interface for issue service lookup.
type RegistryInterface interface {
	// Get returns the backend registered under name, built for conf.
	Get(name string, conf config.Config) (Backend, error)
	// List returns the metadata of every backend, sorted by name.
	List() []Meta
	// New returns the named backend as a Service, connected lazily with conf.
	New(name string, conf config.Config, dryRun bool) (Service, error)
}

// Factory builds a backend from the configuration of a run.
type Factory func(conf config.Config) Backend

// Registry maps service names to their backend implementation.
type Registry struct {
	factories map[string]Factory
	logger    logger.Logger
}

// NewRegistry creates a registry with every built-in backend.
func NewRegistry(l logger.Logger) *Registry {
	if l == nil {
		l = logger.NewNoopLogger()
	}

	r := &Registry{
		factories: make(map[string]Factory),
		logger:    l,
	}

	r.registerBackends()

	return r
}

// registerBackends registers all available backend implementations.
func (r *Registry) registerBackends() {
	r.factories[GitHubName] = func(conf config.Config) Backend { return NewGitHub(conf) }
	r.factories[GitLabName] = func(conf config.Config) Backend { return NewGitLab(conf) }
	r.factories[TodoTxtName] = func(config.Config) Backend { return NewTodoTxt() }
}

// Get returns the backend registered under name, built for conf.
func (r *Registry) Get(name string, conf config.Config) (Backend, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedService, name)
	}
	return factory(conf), nil
}

// List returns the metadata of every backend, sorted by name.
func (r *Registry) List() []Meta {
	metas := make([]Meta, 0, len(r.factories))
	for _, factory := range r.factories {
		metas = append(metas, factory(config.Config{}).Meta())
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].Name < metas[j].Name })
	return metas
}

// New returns the named backend as a Service, connected lazily with conf.
func (r *Registry) New(name string, conf config.Config, dryRun bool) (Service, error) {
	backend, err := r.Get(name, conf)
	if err != nil {
		return nil, err
	}

	svc := Connected(backend, conf)
	if dryRun {
		r.logger.Logf("dry-run: %s will not be contacted", name)
		svc = DryRun(svc)
	}

	return svc, nil
}
