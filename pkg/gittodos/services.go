package gittodos

import (
	"context"
	"errors"

	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/service"
)

// ListServices returns the available issue services.
func (g *realGitTodos) ListServices() []service.Meta {
	return g.deps.Services.List()
}

// Auth connects to the configured issue service. The user is asked for a token when
// none is available or when force is set, and the token is stored once it works.
func (g *realGitTodos) Auth(ctx context.Context, force bool) (string, error) {
	conf, err := g.loadConfig()
	if err != nil {
		return "", err
	}

	serviceName := conf.String(config.KeyService)
	backend, err := g.deps.Services.Get(serviceName, conf)
	if err != nil {
		return "", err
	}
	tokenKey := backend.Meta().TokenKey

	if force && tokenKey == "" {
		return serviceName, ErrAuthNotApplicable
	}

	if repo, err := g.repository(conf, serviceName, ""); err == nil {
		conf = conf.With(config.KeyRepo, repo)
	}

	if !force {
		err = g.connect(ctx, serviceName, conf)
		if err == nil || tokenKey == "" || !errors.Is(err, service.ErrMissingToken) {
			return serviceName, err
		}
	}

	token, err := g.deps.Prompt.PromptForToken(serviceName)
	if err != nil {
		return serviceName, err
	}

	if err := g.connect(ctx, serviceName, conf.With(tokenKey, token)); err != nil {
		return serviceName, err
	}

	g.VerbosePrint("Storing %s in the local git config", tokenKey)
	return serviceName, g.deps.Config.Set(g.repoPath, tokenKey, token)
}

func (g *realGitTodos) connect(ctx context.Context, serviceName string, conf config.Config) error {
	svc, err := g.deps.Services.New(serviceName, conf, false)
	if err != nil {
		return err
	}
	return svc.Connect(ctx)
}
