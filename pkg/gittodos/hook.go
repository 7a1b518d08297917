package gittodos

import "github.com/lerenn/git-todos/pkg/prehook"

// InstallHook installs the pre-push hook.
func (g *realGitTodos) InstallHook(force bool) (prehook.Result, error) {
	return g.installer().Install(force)
}

// UninstallHook removes the pre-push hook.
func (g *realGitTodos) UninstallHook(force bool) (prehook.Result, error) {
	return g.installer().Uninstall(force)
}

func (g *realGitTodos) installer() prehook.Installer {
	return g.newInstaller(InstallerParams{Dependencies: g.deps, RepoPath: g.repoPath})
}
