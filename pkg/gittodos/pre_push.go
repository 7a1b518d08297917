package gittodos

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/lerenn/git-todos/pkg/config"
)

var zeroSHARegexp = regexp.MustCompile(`^0+$`)

// pushedRange is a commit range to analyze, with the commit it ends on.
type pushedRange struct {
	Range  string
	SHA    string
	Branch string
}

// PrePush analyzes the pushed commits and synchronizes their markers.
func (g *realGitTodos) PrePush(ctx context.Context, opts PrePushOpts) (PrePushReport, error) {
	var report PrePushReport

	if g.getenv(EnvDisable) != "" {
		g.VerbosePrint("%s is set, skipping", EnvDisable)
		report.Disabled = true
		return report, nil
	}

	conf, err := g.loadConfig()
	if err != nil {
		return report, err
	}

	if reason := remoteIgnored(conf, opts.Remote); reason != "" {
		report.Ignored = reason
		return report, nil
	}

	ranges, err := g.pushedRanges(opts)
	if err != nil {
		return report, err
	}

	ranges, reason, err := g.filterBranches(conf, ranges)
	if err != nil {
		return report, err
	}
	if len(ranges) == 0 {
		report.Ignored = reason
		return report, nil
	}

	dryRun := opts.DryRun || g.getenv(EnvDryRun) != ""
	a, err := g.newAnalyzer(conf, opts.Remote, dryRun)
	if err != nil {
		return report, err
	}

	for _, r := range ranges {
		rangeReport, err := a.analyze(ctx, r)
		report.Ranges = append(report.Ranges, rangeReport)
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

// remoteIgnored returns why a push to remote is ignored, empty when it is not.
func remoteIgnored(conf config.Config, remote string) string {
	if remote == "" {
		return ""
	}
	remotes := conf.List(config.KeyRemotes)
	if slices.Contains(remotes, config.AllRemotes) || slices.Contains(remotes, remote) {
		return ""
	}
	return fmt.Sprintf("remote %q is not in %q", remote, conf.String(config.KeyRemotes))
}

// filterBranches keeps the ranges pushed from a configured branch.
func (g *realGitTodos) filterBranches(conf config.Config, ranges []pushedRange) ([]pushedRange, string, error) {
	branches := conf.List(config.KeyBranches)
	if len(branches) == 0 {
		return ranges, "", nil
	}

	var current string
	kept := make([]pushedRange, 0, len(ranges))
	for _, r := range ranges {
		branch := r.Branch
		if branch == "" {
			if current == "" {
				var err error
				if current, err = g.deps.Git.GetCurrentBranch(g.repoPath); err != nil {
					return nil, "", err
				}
			}
			branch = current
		}

		if slices.Contains(branches, branch) {
			kept = append(kept, r)
		} else {
			g.VerbosePrint("Branch %q is not in %q, skipping", branch, conf.String(config.KeyBranches))
		}
	}

	return kept, fmt.Sprintf("pushed branches are not in %q", conf.String(config.KeyBranches)), nil
}

// pushedRanges resolves the explicit range, or reads the git hook input.
func (g *realGitTodos) pushedRanges(opts PrePushOpts) ([]pushedRange, error) {
	if opts.Range != "" {
		parts := strings.Split(opts.Range, "..")
		target := parts[len(parts)-1]
		sha, err := g.deps.Git.RevParse(g.repoPath, target)
		if err != nil {
			return nil, err
		}
		return []pushedRange{{Range: opts.Range, SHA: sha}}, nil
	}

	if opts.Stdin == nil {
		return nil, nil
	}
	return parseHookInput(opts.Stdin)
}

// parseHookInput reads the "<local ref> <local sha> <remote ref> <remote sha>" lines git
// passes to pre-push hooks.
func parseHookInput(r io.Reader) ([]pushedRange, error) {
	var ranges []pushedRange

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHookInput, scanner.Text())
		}

		localRef, localSHA, remoteSHA := fields[0], fields[1], fields[3]
		if zeroSHARegexp.MatchString(localSHA) {
			// Branch deletion
			continue
		}

		r := pushedRange{Range: localSHA, SHA: localSHA}
		if !zeroSHARegexp.MatchString(remoteSHA) {
			r.Range = remoteSHA + ".." + localSHA
		}
		if branch, ok := strings.CutPrefix(localRef, "refs/heads/"); ok {
			r.Branch = branch
		}
		ranges = append(ranges, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHookInput, err)
	}

	return ranges, nil
}
