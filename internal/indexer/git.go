package indexer

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/goliatone/go-news-intake/internal/logging"
	"github.com/goliatone/go-news-intake/pkg/interfaces"
)

// GitCommitter records imported paths with a local git commit. Commits are
// best-effort: a missing git binary, a non-repo root, or an empty staging
// area surface as errors the caller logs and moves past.
type GitCommitter struct {
	root   string
	logger interfaces.Logger
}

// NewGitCommitter builds a committer rooted at the site repository.
func NewGitCommitter(root string, logger interfaces.Logger) *GitCommitter {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &GitCommitter{root: root, logger: logger}
}

// Commit stages the given repo-relative paths and commits them with the
// supplied message. With no paths the news content and uploads trees are
// staged.
func (c *GitCommitter) Commit(ctx context.Context, message string, paths ...string) error {
	if len(paths) == 0 {
		paths = []string{"content/news", "static/uploads/news"}
	}

	addArgs := append([]string{"-C", c.root, "add"}, paths...)
	if output, err := exec.CommandContext(ctx, "git", addArgs...).CombinedOutput(); err != nil {
		return fmt.Errorf("git add %v: %w (output: %s)", paths, err, output)
	}

	commitArgs := []string{"-C", c.root, "commit", "-m", message}
	if output, err := exec.CommandContext(ctx, "git", commitArgs...).CombinedOutput(); err != nil {
		return fmt.Errorf("git commit: %w (output: %s)", err, output)
	}

	c.logger.Info("committed imported paths", "message", message)
	return nil
}
