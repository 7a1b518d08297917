package synchronizer

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lerenn/git-todos/pkg/issue"
	"github.com/lerenn/git-todos/pkg/prompt"
	"github.com/lerenn/git-todos/pkg/service"
	"github.com/lerenn/git-todos/pkg/todo"
)

// process resolves one Todo. A nil Result without error is a skip.
func (s *realSynchronizer) process(ctx context.Context, repo string, t *todo.Todo) (issue.Result, error) {
	if t.Issue > 0 {
		s.logger.Logf("%s references issue #%d", t.Location(), t.Issue)
		return s.commentIssue(ctx, repo, t)
	}

	skip, err := s.skipList.ShouldSkip(t.Title)
	if err != nil {
		return nil, err
	}
	if skip {
		s.logger.Logf("%s: %q is in the skip list", t.Location(), t.Title)
		return nil, nil
	}

	found, err := s.service.FindIssueByTitle(ctx, repo, t.Title)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return s.createIssue(ctx, repo, t)
	}

	t.Issue = found.Number
	s.logger.Logf("%s: found issue #%d for %q", t.Location(), found.Number, t.Title)

	return s.commentAndTag(ctx, repo, t, found)
}

// commentAndTag comments the found issue and adds the marker label when missing.
// Both calls finish before the next Todo starts.
func (s *realSynchronizer) commentAndTag(
	ctx context.Context, repo string, t *todo.Todo, found *issue.Issue,
) (issue.Result, error) {
	var comment issue.Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.commentIssue(gctx, repo, t)
		comment = c
		return err
	})
	if !found.HasLabel(t.Label) {
		g.Go(func() error {
			_, err := s.service.TagIssue(gctx, repo, t.Issue, t.Label)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *realSynchronizer) commentIssue(ctx context.Context, repo string, t *todo.Todo) (issue.Result, error) {
	body, err := s.commentText(repo, t)
	if err != nil {
		return nil, err
	}

	comment, err := s.service.CommentIssue(ctx, repo, t.Issue, body)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, nil
	}
	return comment, nil
}

// createIssue opens an issue for t, asking the user first when confirmation is enabled.
func (s *realSynchronizer) createIssue(ctx context.Context, repo string, t *todo.Todo) (issue.Result, error) {
	if !s.confirmCreate {
		return s.create(ctx, repo, t, t.Title)
	}

	choice, err := s.prompt.PromptCreateChoice(fmt.Sprintf("%s (%s)", t.Title, t.Location()))
	if err != nil {
		if errors.Is(err, prompt.ErrNoSelection) {
			return nil, ErrInterrupted
		}
		return nil, err
	}

	switch choice {
	case prompt.ChoiceCreate:
		return s.create(ctx, repo, t, t.Title)
	case prompt.ChoiceEdit:
		title, err := s.prompt.PromptForTitle(t.Title)
		if err != nil {
			return nil, err
		}
		return s.create(ctx, repo, t, title)
	case prompt.ChoiceSkipAndRemember:
		if err := s.skipList.Remember(t.Title); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRemember, err)
		}
		return nil, nil
	case prompt.ChoiceAbort:
		return nil, ErrInterrupted
	default:
		return nil, nil
	}
}

func (s *realSynchronizer) create(ctx context.Context, repo string, t *todo.Todo, title string) (issue.Result, error) {
	body, err := s.commentText(repo, t)
	if err != nil {
		return nil, err
	}

	created, err := s.service.CreateIssue(ctx, repo, service.CreateIssueParams{
		Title:    title,
		Body:     body,
		Labels:   []string{t.Label},
		Assignee: t.Assignee,
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, nil
	}

	s.logger.Logf("%s: created issue #%d", t.Location(), created.Number)
	return created, nil
}
