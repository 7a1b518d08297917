//go:build unit

package gittodos

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lerenn/git-todos/pkg/config"
	configmocks "github.com/lerenn/git-todos/pkg/config/mocks"
	"github.com/lerenn/git-todos/pkg/dependencies"
	fsmocks "github.com/lerenn/git-todos/pkg/fs/mocks"
	gitmocks "github.com/lerenn/git-todos/pkg/git/mocks"
	"github.com/lerenn/git-todos/pkg/inject"
	injectmocks "github.com/lerenn/git-todos/pkg/inject/mocks"
	"github.com/lerenn/git-todos/pkg/issue"
	"github.com/lerenn/git-todos/pkg/logger"
	"github.com/lerenn/git-todos/pkg/prehook"
	prehookmocks "github.com/lerenn/git-todos/pkg/prehook/mocks"
	promptmocks "github.com/lerenn/git-todos/pkg/prompt/mocks"
	"github.com/lerenn/git-todos/pkg/service"
	servicemocks "github.com/lerenn/git-todos/pkg/service/mocks"
	"github.com/lerenn/git-todos/pkg/synchronizer"
	synchronizermocks "github.com/lerenn/git-todos/pkg/synchronizer/mocks"
	"github.com/lerenn/git-todos/pkg/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	localSHA  = "1111111111111111111111111111111111111111"
	remoteSHA = "2222222222222222222222222222222222222222"
	zeroSHA   = "0000000000000000000000000000000000000000"

	sampleDiff = `diff --git a/main.go b/main.go
index 0000000..1111111 100644
--- a/main.go
+++ b/main.go
@@ -1,2 +1,3 @@
 package main
+// TODO Fix parser
 func main() {}
`
)

type fixture struct {
	fs        *fsmocks.MockFS
	git       *gitmocks.MockGit
	store     *configmocks.MockStore
	prompt    *promptmocks.MockPrompter
	registry  *servicemocks.MockRegistryInterface
	backend   *servicemocks.MockBackend
	service   *servicemocks.MockService
	sync      *synchronizermocks.MockSynchronizer
	injector  *injectmocks.MockInjector
	installer *prehookmocks.MockInstaller
	env       map[string]string
	syncConf  config.Config
}

func newFixture(t *testing.T) (*fixture, GitTodos) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		fs:        fsmocks.NewMockFS(ctrl),
		git:       gitmocks.NewMockGit(ctrl),
		store:     configmocks.NewMockStore(ctrl),
		prompt:    promptmocks.NewMockPrompter(ctrl),
		registry:  servicemocks.NewMockRegistryInterface(ctrl),
		backend:   servicemocks.NewMockBackend(ctrl),
		service:   servicemocks.NewMockService(ctrl),
		sync:      synchronizermocks.NewMockSynchronizer(ctrl),
		injector:  injectmocks.NewMockInjector(ctrl),
		installer: prehookmocks.NewMockInstaller(ctrl),
		env:       map[string]string{},
	}

	deps := dependencies.New().
		WithFS(f.fs).
		WithGit(f.git).
		WithConfig(f.store).
		WithLogger(logger.NewNoopLogger()).
		WithPrompt(f.prompt).
		WithServices(f.registry)

	g, err := NewGitTodos(NewGitTodosParams{
		Dependencies: deps,
		RepoPath:     "/repo",
		Getenv:       func(key string) string { return f.env[key] },
		NewSynchronizer: func(p synchronizer.Params) synchronizer.Synchronizer {
			f.syncConf = p.Config
			return f.sync
		},
		NewInjector:  func(InjectorParams) inject.Injector { return f.injector },
		NewInstaller: func(InstallerParams) prehook.Installer { return f.installer },
	})
	require.NoError(t, err)

	return f, g
}

func (f *fixture) expectConfig(values map[string]string) {
	conf := config.Defaults()
	for k, v := range values {
		conf = conf.With(k, v)
	}
	f.store.EXPECT().Load("/repo").Return(conf, nil)
}

func (f *fixture) expectGuessedRepo() {
	f.registry.EXPECT().Get("github", gomock.Any()).Return(f.backend, nil)
	f.git.EXPECT().GetRemoteURL("/repo", "origin").Return("git@github.com:octo/repo.git", nil)
	f.backend.EXPECT().GuessRepoFromURL("git@github.com:octo/repo.git").Return("octo/repo", true)
}

func TestNewGitTodos_InvalidDependencies(t *testing.T) {
	deps := dependencies.New()
	deps.Git = nil

	_, err := NewGitTodos(NewGitTodosParams{Dependencies: deps})
	assert.ErrorIs(t, err, ErrDependenciesConfig)
	assert.ErrorIs(t, err, dependencies.ErrGitMissing)
}

func TestCheckEnv(t *testing.T) {
	f, g := newFixture(t)

	f.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	assert.NoError(t, g.CheckEnv())

	f.fs.EXPECT().Which("git").Return("", errors.New("not found"))
	assert.ErrorIs(t, g.CheckEnv(), ErrGitNotFound)
}

func TestPrePush_DisabledByEnvironment(t *testing.T) {
	f, g := newFixture(t)
	f.env[EnvDisable] = "1"

	report, err := g.PrePush(context.Background(), PrePushOpts{Remote: "origin"})
	require.NoError(t, err)
	assert.True(t, report.Disabled)
}

func TestPrePush_RemoteIgnored(t *testing.T) {
	f, g := newFixture(t)
	f.expectConfig(nil)

	report, err := g.PrePush(context.Background(), PrePushOpts{Remote: "upstream"})
	require.NoError(t, err)
	assert.Contains(t, report.Ignored, "upstream")
	assert.Empty(t, report.Ranges)
}

func TestPrePush_BranchIgnored(t *testing.T) {
	f, g := newFixture(t)
	f.expectConfig(nil)

	stdin := strings.NewReader("refs/heads/feature " + localSHA + " refs/heads/feature " + remoteSHA + "\n")
	report, err := g.PrePush(context.Background(), PrePushOpts{Remote: "origin", Stdin: stdin})
	require.NoError(t, err)
	assert.NotEmpty(t, report.Ignored)
	assert.Empty(t, report.Ranges)
}

func TestPrePush_SynchronizesAndInjects(t *testing.T) {
	f, g := newFixture(t)
	f.expectConfig(map[string]string{"inject-issue": "true"})
	f.expectGuessedRepo()

	created := issue.NewIssue(5, "https://github.com/octo/repo/issues/5", "Fix parser", []string{"TODO"})

	f.registry.EXPECT().New("github", gomock.Any(), false).Return(f.service, nil)
	f.git.EXPECT().Diff("/repo", remoteSHA+".."+localSHA).Return(sampleDiff, nil)
	f.sync.EXPECT().Synchronize(gomock.Any(), "octo/repo", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, todos []*todo.Todo) ([]issue.Result, []*todo.Todo, error) {
			require.Len(t, todos, 1)
			assert.Equal(t, "Fix parser", todos[0].Title)
			assert.Equal(t, "TODO", todos[0].Label)
			assert.Equal(t, 2, todos[0].Line)
			assert.Equal(t, localSHA, todos[0].SHA)
			return []issue.Result{created}, todos, nil
		})
	f.injector.EXPECT().Run(gomock.Any(), []issue.Result{created}).Return(inject.Report{Committed: true})

	stdin := strings.NewReader("refs/heads/main " + localSHA + " refs/heads/main " + remoteSHA + "\n")
	report, err := g.PrePush(context.Background(), PrePushOpts{Remote: "origin", Stdin: stdin})
	require.NoError(t, err)
	require.Len(t, report.Ranges, 1)
	assert.Equal(t, []issue.Result{created}, report.Ranges[0].Results)
	require.NotNil(t, report.Ranges[0].Injection)
	assert.True(t, report.Ranges[0].Injection.Committed)
	assert.Equal(t, "octo/repo", f.syncConf.String(config.KeyRepo))
}

func TestPrePush_DryRunSkipsInjection(t *testing.T) {
	f, g := newFixture(t)
	f.env[EnvDryRun] = "1"
	f.expectConfig(map[string]string{"inject-issue": "true", "repo": "octo/repo"})

	f.registry.EXPECT().New("github", gomock.Any(), true).Return(f.service, nil)
	f.git.EXPECT().Diff("/repo", localSHA).Return(sampleDiff, nil)
	f.sync.EXPECT().Synchronize(gomock.Any(), "octo/repo", gomock.Any()).
		Return([]issue.Result{issue.FakeIssue()}, nil, nil)

	stdin := strings.NewReader("refs/heads/main " + localSHA + " refs/heads/main " + zeroSHA + "\n")
	report, err := g.PrePush(context.Background(), PrePushOpts{Remote: "origin", Stdin: stdin})
	require.NoError(t, err)
	require.Len(t, report.Ranges, 1)
	assert.Nil(t, report.Ranges[0].Injection)
}

func TestPrePush_ExplicitRange(t *testing.T) {
	f, g := newFixture(t)
	f.expectConfig(map[string]string{"repo": "octo/repo", "branches": ""})

	f.git.EXPECT().RevParse("/repo", "HEAD").Return(localSHA, nil)
	f.registry.EXPECT().New("github", gomock.Any(), false).Return(f.service, nil)
	f.git.EXPECT().Diff("/repo", "HEAD~2..HEAD").Return("", nil)

	report, err := g.PrePush(context.Background(), PrePushOpts{Range: "HEAD~2..HEAD"})
	require.NoError(t, err)
	require.Len(t, report.Ranges, 1)
	assert.Equal(t, localSHA, report.Ranges[0].SHA)
	assert.Empty(t, report.Ranges[0].Todos)
}

func TestPrePush_CurrentBranchFilter(t *testing.T) {
	f, g := newFixture(t)
	f.expectConfig(map[string]string{"repo": "octo/repo"})

	f.git.EXPECT().RevParse("/repo", "HEAD").Return(localSHA, nil)
	f.git.EXPECT().GetCurrentBranch("/repo").Return("wip", nil)

	report, err := g.PrePush(context.Background(), PrePushOpts{Range: "HEAD~1..HEAD"})
	require.NoError(t, err)
	assert.NotEmpty(t, report.Ignored)
}

func TestPrePush_SynchronizationError(t *testing.T) {
	f, g := newFixture(t)
	f.expectConfig(map[string]string{"repo": "octo/repo"})

	f.registry.EXPECT().New("github", gomock.Any(), false).Return(f.service, nil)
	f.git.EXPECT().Diff("/repo", remoteSHA+".."+localSHA).Return(sampleDiff, nil)
	f.sync.EXPECT().Synchronize(gomock.Any(), "octo/repo", gomock.Any()).
		Return(nil, nil, synchronizer.ErrInterrupted)

	stdin := strings.NewReader("refs/heads/main " + localSHA + " refs/heads/main " + remoteSHA + "\n")
	_, err := g.PrePush(context.Background(), PrePushOpts{Remote: "origin", Stdin: stdin})
	assert.ErrorIs(t, err, synchronizer.ErrInterrupted)
}

func TestPrePush_RepoUnknown(t *testing.T) {
	f, g := newFixture(t)
	f.expectConfig(nil)

	f.registry.EXPECT().Get("github", gomock.Any()).Return(f.backend, nil)
	f.git.EXPECT().GetRemoteURL("/repo", "origin").Return("https://example.org/x", nil)
	f.backend.EXPECT().GuessRepoFromURL("https://example.org/x").Return("", false)

	stdin := strings.NewReader("refs/heads/main " + localSHA + " refs/heads/main " + remoteSHA + "\n")
	_, err := g.PrePush(context.Background(), PrePushOpts{Remote: "origin", Stdin: stdin})
	assert.ErrorIs(t, err, ErrRepoUnknown)
}

func TestParseHookInput(t *testing.T) {
	input := strings.Join([]string{
		"refs/heads/main " + localSHA + " refs/heads/main " + remoteSHA,
		"refs/heads/old " + zeroSHA + " refs/heads/old " + remoteSHA,
		"refs/heads/new " + localSHA + " refs/heads/new " + zeroSHA,
		"",
		"HEAD " + localSHA + " refs/heads/main " + remoteSHA,
	}, "\n")

	ranges, err := parseHookInput(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []pushedRange{
		{Range: remoteSHA + ".." + localSHA, SHA: localSHA, Branch: "main"},
		{Range: localSHA, SHA: localSHA, Branch: "new"},
		{Range: remoteSHA + ".." + localSHA, SHA: localSHA},
	}, ranges)

	_, err = parseHookInput(strings.NewReader("garbage\n"))
	assert.ErrorIs(t, err, ErrInvalidHookInput)
}

func TestListServices(t *testing.T) {
	f, g := newFixture(t)

	metas := []service.Meta{{Name: "github"}, {Name: "gitlab"}}
	f.registry.EXPECT().List().Return(metas)

	assert.Equal(t, metas, g.ListServices())
}

func TestAuth_AsksForMissingToken(t *testing.T) {
	f, g := newFixture(t)
	f.expectConfig(map[string]string{"repo": "octo/repo"})

	f.registry.EXPECT().Get("github", gomock.Any()).Return(f.backend, nil)
	f.backend.EXPECT().Meta().Return(service.Meta{Name: "github", TokenKey: "github.token"})

	missing := f.service.EXPECT().Connect(gomock.Any()).Return(service.ErrMissingToken)
	f.registry.EXPECT().New("github", gomock.Any(), false).Return(f.service, nil).Times(2)
	f.prompt.EXPECT().PromptForToken("github").Return("ghp_secret", nil)
	f.service.EXPECT().Connect(gomock.Any()).Return(nil).After(missing)
	f.store.EXPECT().Set("/repo", "github.token", "ghp_secret").Return(nil)

	name, err := g.Auth(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "github", name)
}

func TestAuth_ConnectedWithoutPrompt(t *testing.T) {
	f, g := newFixture(t)
	f.expectConfig(map[string]string{"repo": "octo/repo", "github.token": "ghp_ok"})

	f.registry.EXPECT().Get("github", gomock.Any()).Return(f.backend, nil)
	f.backend.EXPECT().Meta().Return(service.Meta{Name: "github", TokenKey: "github.token"})
	f.registry.EXPECT().New("github", gomock.Any(), false).Return(f.service, nil)
	f.service.EXPECT().Connect(gomock.Any()).Return(nil)

	_, err := g.Auth(context.Background(), false)
	require.NoError(t, err)
}

func TestAuth_ForceWithoutToken(t *testing.T) {
	f, g := newFixture(t)
	f.expectConfig(map[string]string{"service": "todotxt"})

	f.registry.EXPECT().Get("todotxt", gomock.Any()).Return(f.backend, nil)
	f.backend.EXPECT().Meta().Return(service.Meta{Name: "todotxt"})

	_, err := g.Auth(context.Background(), true)
	assert.ErrorIs(t, err, ErrAuthNotApplicable)
}

func TestConfigOptions(t *testing.T) {
	f, g := newFixture(t)

	local := map[string]string{"context": "5", "label.todo": "task", "custom.key": "x"}
	f.store.EXPECT().Local("/repo").Return(local, nil).AnyTimes()

	list, err := g.ConfigList(ConfigOpts{})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"context": "5", "label.todo": "task"}, list)

	list, err = g.ConfigList(ConfigOpts{Extra: true, Defaults: true})
	require.NoError(t, err)
	assert.Equal(t, "x", list["custom.key"])
	assert.Equal(t, "task", list["label.todo"])
	assert.NotContains(t, list, "label.TODO")
	assert.Equal(t, "github", list["service"])

	value, err := g.ConfigGet("label.TODO", ConfigOpts{})
	require.NoError(t, err)
	assert.Equal(t, "task", value)

	_, err = g.ConfigGet("service", ConfigOpts{})
	assert.ErrorIs(t, err, ErrOptionNotSet)

	value, err = g.ConfigGet("service", ConfigOpts{Defaults: true})
	require.NoError(t, err)
	assert.Equal(t, "github", value)

	_, err = g.ConfigGet("custom.key", ConfigOpts{})
	assert.ErrorIs(t, err, ErrUnsupportedOption)

	f.store.EXPECT().Set("/repo", "context", "2").Return(nil)
	assert.NoError(t, g.ConfigSet("context", "2", ConfigOpts{}))

	f.store.EXPECT().Unset("/repo", "custom.key").Return(nil)
	assert.NoError(t, g.ConfigUnset("custom.key", ConfigOpts{Extra: true}))

	assert.ErrorIs(t, g.ConfigSet("nope", "1", ConfigOpts{}), ErrUnsupportedOption)
}

func TestHooks(t *testing.T) {
	f, g := newFixture(t)

	f.installer.EXPECT().Install(true).Return(prehook.Result{Action: prehook.ActionCreated}, nil)
	result, err := g.InstallHook(true)
	require.NoError(t, err)
	assert.Equal(t, prehook.ActionCreated, result.Action)

	f.installer.EXPECT().Uninstall(false).Return(prehook.Result{}, prehook.ErrNoHook)
	_, err = g.UninstallHook(false)
	assert.ErrorIs(t, err, prehook.ErrNoHook)
}
