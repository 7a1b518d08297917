package gittodos

import (
	"context"
	"fmt"

	"github.com/lerenn/git-todos/pkg/assignee"
	"github.com/lerenn/git-todos/pkg/config"
	"github.com/lerenn/git-todos/pkg/diff"
	"github.com/lerenn/git-todos/pkg/inject"
	"github.com/lerenn/git-todos/pkg/skiplist"
	"github.com/lerenn/git-todos/pkg/synchronizer"
	"github.com/lerenn/git-todos/pkg/todo"
)

// analyzer turns pushed ranges into synchronized markers for one run.
type analyzer struct {
	g             *realGitTodos
	repo          string
	table         todo.LabelTable
	caseSensitive bool
	sync          synchronizer.Synchronizer
	injector      inject.Injector
}

func (g *realGitTodos) newAnalyzer(conf config.Config, remote string, dryRun bool) (*analyzer, error) {
	serviceName := conf.String(config.KeyService)

	repo, err := g.repository(conf, serviceName, remote)
	if err != nil {
		return nil, err
	}
	conf = conf.With(config.KeyRepo, repo)

	svc, err := g.deps.Services.New(serviceName, conf, dryRun)
	if err != nil {
		return nil, err
	}

	caseSensitive := conf.Bool(config.KeyCaseSensitive)
	a := &analyzer{
		g:             g,
		repo:          repo,
		table:         todo.NewLabelTable(conf),
		caseSensitive: caseSensitive,
		sync: g.newSynchronizer(synchronizer.Params{
			Service:    svc,
			Git:        g.deps.Git,
			FS:         g.deps.FS,
			SkipList:   skiplist.New(g.deps.Git, g.deps.FS, g.repoPath, caseSensitive),
			Assignees:  assignee.NewResolver(g.deps.Git, g.repoPath, conf, g.deps.Logger),
			Prompt:     g.deps.Prompt,
			Config:     conf,
			Logger:     g.deps.Logger,
			RepoPath:   g.repoPath,
			OnProgress: g.onProgress,
		}),
	}

	if conf.Bool(config.KeyInjectIssue) && !dryRun {
		a.injector = g.newInjector(InjectorParams{Dependencies: g.deps, RepoPath: g.repoPath})
	}

	g.VerbosePrint("Synchronizing with %s repository %s (dry-run: %t)", serviceName, repo, dryRun)
	return a, nil
}

// repository returns the configured repository, or guesses it from the remote URL.
func (g *realGitTodos) repository(conf config.Config, serviceName, remote string) (string, error) {
	if repo := conf.String(config.KeyRepo); repo != "" {
		return repo, nil
	}

	backend, err := g.deps.Services.Get(serviceName, conf)
	if err != nil {
		return "", err
	}

	if remote == "" {
		remote = "origin"
	}
	url, err := g.deps.Git.GetRemoteURL(g.repoPath, remote)
	if err != nil {
		// Some services do not need a remote
		g.VerbosePrint("No URL for remote %s: %v", remote, err)
		url = ""
	}

	repo, ok := backend.GuessRepoFromURL(url)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRepoUnknown, url)
	}

	g.VerbosePrint("Guessed repository %s from %s", repo, url)
	return repo, nil
}

// analyze diffs one range and synchronizes its markers.
func (a *analyzer) analyze(ctx context.Context, r pushedRange) (RangeReport, error) {
	report := RangeReport{Range: r.Range, SHA: r.SHA}

	text, err := a.g.deps.Git.Diff(a.g.repoPath, r.Range)
	if err != nil {
		return report, err
	}

	files, err := diff.Parse(text)
	if err != nil {
		return report, err
	}

	todos := todo.MapDiff(diff.WithoutDeletions(files), r.SHA, a.table, a.caseSensitive)
	a.g.VerbosePrint("Found %d marker(s) in %s", len(todos), r.Range)
	if len(todos) == 0 {
		return report, nil
	}

	results, todos, err := a.sync.Synchronize(ctx, a.repo, todos)
	report.Todos, report.Results = todos, results
	if err != nil {
		return report, err
	}

	if a.injector != nil {
		injection := a.injector.Run(todos, results)
		report.Injection = &injection
	}

	return report, nil
}
