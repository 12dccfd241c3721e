package indexer

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/goliatone/go-news-intake/internal/logging"
	"github.com/goliatone/go-news-intake/pkg/interfaces"
)

// Config wires an index trigger to the live site tree.
type Config struct {
	// Root is the site repository root.
	Root string
	// Command is the external rebuild invocation in argv form, run with the
	// working directory set to Root. When empty the built-in index.json
	// writer is used instead.
	Command []string

	Logger interfaces.Logger
}

// ExecTrigger rebuilds the news listing index after an import. With a
// configured command it shells out to the site's own tooling; without one it
// falls back to the native index.json writer so imports stay self-contained.
type ExecTrigger struct {
	root    string
	command []string
	logger  interfaces.Logger
}

// NewExecTrigger builds the trigger. A nil logger defaults to no-op.
func NewExecTrigger(cfg Config) *ExecTrigger {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &ExecTrigger{
		root:    cfg.Root,
		command: cfg.Command,
		logger:  logger,
	}
}

// Rebuild regenerates the index. Callers treat the returned error as
// advisory; the imported content is already live when this runs.
func (t *ExecTrigger) Rebuild(ctx context.Context) error {
	if len(t.command) == 0 {
		contentDir := filepath.Join(t.root, "content", "news")
		t.logger.Debug("rebuilding index with native writer", "dir", contentDir)
		return WriteIndex(contentDir)
	}

	t.logger.Debug("rebuilding index with external command", "command", t.command)
	cmd := exec.CommandContext(ctx, t.command[0], t.command[1:]...)
	cmd.Dir = t.root
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("index command %v: %w (output: %s)", t.command, err, output)
	}
	return nil
}
