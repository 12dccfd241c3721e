package intakecmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-news-intake/internal/commands"
	"github.com/goliatone/go-news-intake/internal/validate"
	"github.com/goliatone/go-news-intake/pkg/interfaces"
)

// BatchImporter is the slice of the importer the command layer needs.
type BatchImporter interface {
	ImportAll(ctx context.Context) (*interfaces.BatchResult, error)
}

// ImportBatchHandler drives a full intake pass through the shared command
// handler foundation.
type ImportBatchHandler struct {
	inner *commands.Handler[ImportBatchCommand]
}

// NewImportBatchHandler constructs a handler wired to the given importer.
func NewImportBatchHandler(importer BatchImporter, logger interfaces.Logger, opts ...commands.HandlerOption[ImportBatchCommand]) *ImportBatchHandler {
	exec := func(ctx context.Context, msg ImportBatchCommand) error {
		_, err := importer.ImportAll(ctx)
		return err
	}

	handlerOpts := []commands.HandlerOption[ImportBatchCommand]{
		commands.WithLogger[ImportBatchCommand](logger),
		commands.WithOperation[ImportBatchCommand]("bundle.import_batch"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportBatchHandler{
		inner: commands.NewHandler[ImportBatchCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportBatchCommand].Execute.
func (h *ImportBatchHandler) Execute(ctx context.Context, msg ImportBatchCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ValidateBundlesHandler runs the strict structural check over one bundle or
// the whole intake directory, writing a per-bundle report and failing when
// any bundle does not pass.
type ValidateBundlesHandler struct {
	inner *commands.Handler[ValidateBundlesCommand]
}

// NewValidateBundlesHandler constructs the handler. Report lines go to out;
// a nil writer discards them.
func NewValidateBundlesHandler(out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[ValidateBundlesCommand]) *ValidateBundlesHandler {
	if out == nil {
		out = io.Discard
	}

	exec := func(ctx context.Context, msg ValidateBundlesCommand) error {
		bundles, err := resolveBundles(msg)
		if err != nil {
			return err
		}
		if len(bundles) == 0 {
			fmt.Fprintf(out, "[validate] no ZIP files found in %s\n", msg.IntakeDir)
			return nil
		}

		failures := 0
		for _, bundle := range bundles {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := filepath.Base(bundle)
			report := validate.Bundle(bundle)
			if report.Valid() {
				fmt.Fprintf(out, "[validate] ✅ %s\n", name)
				continue
			}
			failures++
			for _, problem := range report.All() {
				fmt.Fprintf(out, "[validate] ❌ %s: %s\n", name, problem)
			}
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d bundle(s) failed validation", failures, len(bundles))
		}
		fmt.Fprintf(out, "[validate] all %d bundle(s) passed\n", len(bundles))
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateBundlesCommand]{
		commands.WithLogger[ValidateBundlesCommand](logger),
		commands.WithOperation[ValidateBundlesCommand]("bundle.validate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateBundlesHandler{
		inner: commands.NewHandler[ValidateBundlesCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ValidateBundlesCommand].Execute.
func (h *ValidateBundlesHandler) Execute(ctx context.Context, msg ValidateBundlesCommand) error {
	return h.inner.Execute(ctx, msg)
}

func resolveBundles(msg ValidateBundlesCommand) ([]string, error) {
	if msg.Bundle != "" {
		return []string{msg.Bundle}, nil
	}

	dirEntries, err := os.ReadDir(msg.IntakeDir)
	if err != nil {
		return nil, fmt.Errorf("read intake dir %s: %w", msg.IntakeDir, err)
	}
	bundles := []string{}
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".zip") {
			continue
		}
		bundles = append(bundles, filepath.Join(msg.IntakeDir, entry.Name()))
	}
	sort.Strings(bundles)
	return bundles, nil
}
