// Package prehook installs and removes the git-todos pre-push hook.
package prehook

import (
	"fmt"
	"os"
	"strings"

	"github.com/lerenn/git-todos/configs"
	"github.com/lerenn/git-todos/pkg/fs"
	"github.com/lerenn/git-todos/pkg/git"
	"github.com/lerenn/git-todos/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prehook.go -destination=mocks/prehook.gen.go -package=mocks

// HookPath is the hook location inside the git directory.
const HookPath = "hooks/pre-push"

const hookPerm os.FileMode = 0755

// Action is what an install or uninstall did to the hook file.
type Action string

// Hook file actions.
const (
	ActionCreated        Action = "created"
	ActionAppended       Action = "appended"
	ActionRemoved        Action = "removed"
	ActionCommandRemoved Action = "command-removed"
)

// Result describes a hook file change.
type Result struct {
	File   string
	Action Action
	// Warning is set when the hook could not be made executable.
	Warning string
}

// Installer manages the pre-push hook of a repository.
type Installer interface {
	// Install writes the hook, or adds the git-todos command to an existing one.
	Install(force bool) (Result, error)
	// Uninstall removes the hook when unmodified, or only the git-todos command.
	Uninstall(force bool) (Result, error)
}

type realInstaller struct {
	git      git.Git
	fs       fs.FS
	logger   logger.Logger
	repoPath string
}

// NewInstaller creates an Installer for the repository at repoPath.
func NewInstaller(g git.Git, f fs.FS, repoPath string, l logger.Logger) Installer {
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realInstaller{git: g, fs: f, logger: l, repoPath: repoPath}
}

// Install writes the hook, or adds the git-todos command on top of an existing one.
func (i *realInstaller) Install(force bool) (Result, error) {
	file, content, found, err := i.read()
	if err != nil {
		return Result{}, err
	}
	result := Result{File: file}

	commandFound := strings.Contains(content, configs.PrePushCommand)
	switch {
	case commandFound && !force:
		return result, fmt.Errorf("%w: edit %s", ErrAlreadyInstalled, file)
	case found:
		i.logger.Logf("Hook file found, adding git-todos command on top")
		result.Action = ActionAppended
		err = i.fs.WriteFileAtomic(file, []byte(insertCommand(content)), hookPerm)
	default:
		i.logger.Logf("Hook file not found, creating %s", file)
		result.Action = ActionCreated
		err = i.fs.WriteFileAtomic(file, []byte(configs.PrePushScript()), hookPerm)
	}
	if err != nil {
		return result, err
	}

	if err := i.fs.Chmod(file, hookPerm); err != nil {
		result.Warning = fmt.Sprintf("failed to `chmod 755 %s`, the hook must be executable: %v", file, err)
	}

	return result, nil
}

// Uninstall removes the hook when unmodified, or only the git-todos command.
func (i *realInstaller) Uninstall(force bool) (Result, error) {
	file, content, found, err := i.read()
	if err != nil {
		return Result{}, err
	}
	result := Result{File: file}

	switch {
	case found && (force || configs.IsPrePushScript(content)):
		result.Action = ActionRemoved
		return result, i.fs.Remove(file)
	case found && strings.Contains(content, configs.PrePushCommand):
		result.Action = ActionCommandRemoved
		return result, i.fs.WriteFileAtomic(file, []byte(removeCommand(content, i.logger)), hookPerm)
	case found:
		return result, fmt.Errorf("%w: edit %s", ErrNotInstalled, file)
	default:
		return result, fmt.Errorf("%w: %s", ErrNoHook, file)
	}
}

func (i *realInstaller) read() (string, string, bool, error) {
	file, err := i.git.Dir(i.repoPath, HookPath)
	if err != nil {
		return "", "", false, err
	}

	data, err := i.fs.ReadFileIfExists(file)
	if err != nil {
		return "", "", false, err
	}

	return file, string(data), data != nil, nil
}

// insertCommand adds the command right after the first line (the shebang).
func insertCommand(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) == 1 {
		return content + "\n\n" + configs.PrePushCommand + "\n"
	}
	out := append([]string{lines[0], "", configs.PrePushCommand, ""}, lines[1:]...)
	return strings.Join(out, "\n")
}

// removeCommand blanks every line holding the command.
func removeCommand(content string, l logger.Logger) string {
	lines := strings.Split(content, "\n")
	for idx, line := range lines {
		if strings.Contains(line, configs.PrePushCommand) {
			l.Logf("Remove line %d: %s", idx+1, line)
			lines[idx] = ""
		}
	}
	return strings.Join(lines, "\n")
}
