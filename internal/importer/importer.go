package importer

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-news-intake/internal/logging"
	"github.com/goliatone/go-news-intake/internal/normalize"
	"github.com/goliatone/go-news-intake/internal/validate"
	"github.com/goliatone/go-news-intake/pkg/interfaces"
)

const (
	processedDirName = "processed"
	scratchSuffix    = ".unpacked"
	contentPrefix    = "content/news/"
	uploadsPrefix    = "static/uploads/news/"
)

// Config encapsulates the dependencies required to merge intake bundles into
// the live site tree.
type Config struct {
	// IntakeDir is polled for *.zip bundles.
	IntakeDir string
	// Root is the live site tree; archive-relative member paths are merged
	// directly beneath it.
	Root string
	// CommitMessagePrefix is prepended to the bundle name on VCS commits.
	CommitMessagePrefix string

	Logger interfaces.Logger
	Index  interfaces.IndexBuilder
	VCS    interfaces.RepositoryCommitter
	// Report receives the operator-facing per-bundle lines. Defaults to
	// io.Discard so the importer stays quiet when embedded.
	Report io.Writer
}

// Importer is the merge engine: it discovers bundles, extracts them into a
// scratch area, validates, rewrites asset paths, merges content into the
// live tree, and triggers downstream indexing. Bundles are processed
// strictly sequentially so a crash mid-batch leaves at most one partially
// processed scratch directory.
type Importer struct {
	intake       string
	root         string
	commitPrefix string
	logger       interfaces.Logger
	index        interfaces.IndexBuilder
	vcs          interfaces.RepositoryCommitter
	out          io.Writer
}

// New builds an Importer from the supplied configuration. Missing
// collaborators default to no-ops so the engine runs without external
// tooling installed.
func New(cfg Config) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	out := cfg.Report
	if out == nil {
		out = io.Discard
	}
	commitPrefix := strings.TrimSpace(cfg.CommitMessagePrefix)
	if commitPrefix == "" {
		commitPrefix = "Import news from"
	}
	return &Importer{
		intake:       cfg.IntakeDir,
		root:         cfg.Root,
		commitPrefix: commitPrefix,
		logger:       logger,
		index:        cfg.Index,
		vcs:          cfg.VCS,
		out:          out,
	}
}

// ImportAll processes every *.zip in the intake directory in filename order
// and returns the batch result. Successfully imported bundles are moved to
// the processed/ subdirectory so a rerun does not pick them up again;
// rejected and failed bundles stay in place for inspection or retry.
func (i *Importer) ImportAll(ctx context.Context) (*interfaces.BatchResult, error) {
	result := &interfaces.BatchResult{RunID: uuid.New()}
	logger := logging.WithBundleContext(i.logger, "", result.RunID.String())

	if err := os.MkdirAll(i.intake, 0o755); err != nil {
		return nil, fmt.Errorf("importer: ensure intake dir %s: %w", i.intake, err)
	}

	bundles, err := i.discoverBundles()
	if err != nil {
		return nil, err
	}
	if len(bundles) == 0 {
		i.printf("[incoming] no ZIP files found in %s", i.intake)
		return result, nil
	}

	logger.Info("import batch started", "bundles", len(bundles))

	for _, bundle := range bundles {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		report := i.ImportBundle(ctx, bundle)
		result.Reports = append(result.Reports, report)

		if report.Status != interfaces.BundleImported {
			continue
		}
		if err := i.archive(bundle); err != nil {
			// The content is already live; leaving the zip in place only
			// costs an idempotent re-import on the next run.
			logger.Error("archive bundle failed", "bundle", report.Bundle, "error", err)
			continue
		}
		result.Archived++
	}

	i.printf("[incoming] done, archived %d bundle(s)", result.Archived)
	logger.Info("import batch finished", "archived", result.Archived)
	return result, nil
}

// ImportBundle runs the per-bundle state machine: Extracting,
// StructuralCheck, Normalizing, Merging, IndexTrigger. The scratch directory
// is removed whatever the outcome. Merging is not transactional: files
// written before a failure stay in place, and the overwrite-by-canonical-
// path contract makes a retry safe.
func (i *Importer) ImportBundle(ctx context.Context, zipPath string) interfaces.BundleReport {
	name := filepath.Base(zipPath)
	report := interfaces.BundleReport{Bundle: name}
	logger := logging.WithBundleContext(i.logger, name, "")

	i.printf("[incoming] importing %s", name)

	scratch := strings.TrimSuffix(zipPath, filepath.Ext(zipPath)) + scratchSuffix
	if err := os.RemoveAll(scratch); err != nil {
		return i.failed(report, fmt.Sprintf("clear scratch dir: %v", err))
	}
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return i.failed(report, fmt.Sprintf("create scratch dir: %v", err))
	}
	defer os.RemoveAll(scratch)

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return i.rejected(report, "bad zip")
	}
	defer reader.Close()

	entries := memberNames(&reader.Reader)

	// The traversal guard runs against the member list before anything is
	// written to disk; one bad entry rejects the whole bundle.
	structure := validate.Structure(entries)
	if !structure.Importable() {
		return i.rejected(report, structure.Fatal[0])
	}
	for _, problem := range structure.Problems {
		report.Warnings = append(report.Warnings, problem)
		i.printf("[incoming] ⚠️ %s: %s", name, problem)
		logger.Warn("structural warning", "problem", problem)
	}

	if err := extractAll(&reader.Reader, scratch); err != nil {
		logger.Warn("extract failed", "error", err)
		return i.rejected(report, "bad zip")
	}

	markdown, assets := classify(entries)

	for _, entry := range assets {
		src := filepath.Join(scratch, filepath.FromSlash(entry))
		dst := filepath.Join(i.root, filepath.FromSlash(entry))
		if err := copyFile(src, dst); err != nil {
			return i.failed(report, fmt.Sprintf("copy asset %s: %v", entry, err))
		}
		report.Assets = append(report.Assets, entry)
		logger.Debug("asset merged", "path", entry)
	}

	for _, entry := range markdown {
		src := filepath.Join(scratch, filepath.FromSlash(entry))
		data, err := os.ReadFile(src)
		if err != nil {
			return i.failed(report, fmt.Sprintf("read markdown %s: %v", entry, err))
		}

		text := string(data)
		for _, warning := range validate.Content(text) {
			report.Warnings = append(report.Warnings, warning)
			i.printf("[incoming] ⚠️ %s: %s: %s", name, entry, warning)
			logger.Warn("content quality warning", "path", entry, "warning", warning)
		}

		rewritten := normalize.Document(text)
		dst := filepath.Join(i.root, filepath.FromSlash(entry))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return i.failed(report, fmt.Sprintf("create content dir for %s: %v", entry, err))
		}
		if err := os.WriteFile(dst, []byte(rewritten), 0o644); err != nil {
			return i.failed(report, fmt.Sprintf("write markdown %s: %v", entry, err))
		}
		report.Markdown = append(report.Markdown, entry)
		logger.Debug("markdown merged", "path", entry)
	}

	if i.index != nil {
		if err := i.index.Rebuild(ctx); err != nil {
			i.printf("[incoming] ⚠️ %s: index rebuild failed: %v", name, err)
			logger.Warn("index rebuild failed", "error", err)
		}
	}
	if i.vcs != nil {
		message := fmt.Sprintf("%s %s", i.commitPrefix, name)
		if err := i.vcs.Commit(ctx, message, "content/news", "static/uploads/news"); err != nil {
			logger.Warn("vcs commit failed", "error", err)
		}
	}

	report.Status = interfaces.BundleImported
	i.printf("[incoming] ✅ imported %s", name)
	logger.Info("bundle imported", "markdown", len(report.Markdown), "assets", len(report.Assets))
	return report
}

func (i *Importer) rejected(report interfaces.BundleReport, reason string) interfaces.BundleReport {
	report.Status = interfaces.BundleRejected
	report.Reason = reason
	i.printf("[incoming] ❌ %s: %s", report.Bundle, reason)
	i.logger.Warn("bundle rejected", "bundle", report.Bundle, "reason", reason)
	return report
}

func (i *Importer) failed(report interfaces.BundleReport, reason string) interfaces.BundleReport {
	report.Status = interfaces.BundleFailed
	report.Reason = reason
	i.printf("[incoming] ❌ %s: %s", report.Bundle, reason)
	i.logger.Error("bundle failed", "bundle", report.Bundle, "reason", reason)
	return report
}

func (i *Importer) discoverBundles() ([]string, error) {
	dirEntries, err := os.ReadDir(i.intake)
	if err != nil {
		return nil, fmt.Errorf("importer: read intake dir %s: %w", i.intake, err)
	}

	bundles := []string{}
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".zip") {
			continue
		}
		bundles = append(bundles, filepath.Join(i.intake, entry.Name()))
	}
	sort.Strings(bundles)
	return bundles, nil
}

func (i *Importer) archive(zipPath string) error {
	processed := filepath.Join(i.intake, processedDirName)
	if err := os.MkdirAll(processed, 0o755); err != nil {
		return err
	}
	return os.Rename(zipPath, filepath.Join(processed, filepath.Base(zipPath)))
}

func (i *Importer) printf(format string, args ...any) {
	fmt.Fprintf(i.out, format+"\n", args...)
}

func memberNames(reader *zip.Reader) []string {
	names := make([]string, 0, len(reader.File))
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		names = append(names, file.Name)
	}
	return names
}

// classify splits member names into markdown documents and upload assets.
// Anything else is ignored. Both lists are sorted so merge order is
// deterministic.
func classify(entries []string) (markdown, assets []string) {
	for _, entry := range entries {
		switch {
		case strings.HasPrefix(entry, contentPrefix) && strings.HasSuffix(strings.ToLower(entry), ".md"):
			markdown = append(markdown, entry)
		case strings.HasPrefix(entry, uploadsPrefix) && len(strings.Split(entry, "/")) >= 6:
			assets = append(assets, entry)
		}
	}
	sort.Strings(markdown)
	sort.Strings(assets)
	return markdown, assets
}

func extractAll(reader *zip.Reader, dest string) error {
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		target := filepath.Join(dest, filepath.FromSlash(file.Name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := extractFile(file, target); err != nil {
			return fmt.Errorf("extract %s: %w", file.Name, err)
		}
	}
	return nil
}

func extractFile(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Close()
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
