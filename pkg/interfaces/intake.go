package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// IndexBuilder rebuilds the news listing index after a successful import.
// Implementations are best-effort collaborators: a failed rebuild is logged
// by the caller and never fails the import that triggered it.
type IndexBuilder interface {
	Rebuild(ctx context.Context) error
}

// RepositoryCommitter records imported paths in version control. Like the
// index builder it is strictly best-effort; the default implementation is a
// no-op so the importer can run without any VCS tooling installed.
type RepositoryCommitter interface {
	Commit(ctx context.Context, message string, paths ...string) error
}

// BundleStatus is the terminal state a bundle reached during an import run.
type BundleStatus string

const (
	// BundleImported marks a bundle whose content and assets were merged
	// into the live tree. Imported bundles are archived under processed/.
	BundleImported BundleStatus = "imported"
	// BundleRejected marks a bundle that failed structural validation (bad
	// zip, path traversal, or no markdown member). Nothing was written.
	BundleRejected BundleStatus = "rejected"
	// BundleFailed marks a bundle that passed validation but hit an I/O
	// error while merging. Files written before the failure stay in place;
	// the bundle is left in the intake directory so a rerun retries it.
	BundleFailed BundleStatus = "failed"
)

// BundleReport summarises the handling of a single intake bundle.
type BundleReport struct {
	Bundle   string       `json:"bundle"`
	Status   BundleStatus `json:"status"`
	Reason   string       `json:"reason,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
	Markdown []string     `json:"markdown,omitempty"`
	Assets   []string     `json:"assets,omitempty"`
}

// BatchResult aggregates the outcome of one pass over the intake directory.
type BatchResult struct {
	RunID    uuid.UUID      `json:"run_id"`
	Archived int            `json:"archived"`
	Reports  []BundleReport `json:"reports"`
}
