package intake

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Paths.Root = t.TempDir()
	cfg.Logging.Provider = "noop"
	return cfg
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Paths.Intake = ""
	if _, err := New(cfg); err != ErrIntakeDirRequired {
		t.Fatalf("expected ErrIntakeDirRequired, got %v", err)
	}
}

func TestModulePackThenImportRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	module, err := New(cfg, WithReportWriter(&out), WithIndexBuilder(nil), WithRepositoryCommitter(nil))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := module.Packer().Pack(PostInput{
		Title: "Harbour Works Resume",
		Date:  "2024-05-01",
		Body: strings.Repeat("Dredging crews returned to the harbour mouth this morning. ", 10) +
			"Work is expected to continue through the summer.",
	})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if filepath.Dir(result.ZipPath) != cfg.IntakeDir() {
		t.Fatalf("bundle not placed in intake dir: %s", result.ZipPath)
	}

	// The packer already wrote the post locally; drop it so the import is
	// observable.
	if err := os.Remove(result.MarkdownPath); err != nil {
		t.Fatalf("remove local post: %v", err)
	}

	batch, err := module.ImportAll(context.Background())
	if err != nil {
		t.Fatalf("ImportAll: %v", err)
	}
	if batch.Archived != 1 {
		t.Fatalf("archived = %d, reports = %#v", batch.Archived, batch.Reports)
	}
	if _, err := os.Stat(result.MarkdownPath); err != nil {
		t.Fatalf("post not re-imported: %v", err)
	}
	if !strings.Contains(out.String(), "✅ imported") {
		t.Fatalf("report output missing success line: %s", out.String())
	}
}

func TestModuleValidateBundle(t *testing.T) {
	cfg := testConfig(t)
	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := module.Packer().Pack(PostInput{
		Title: "Library Hours Extended",
		Date:  "2024-06-10",
		Body:  "The library stays open until nine on weekdays starting next month.",
	})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	report := module.ValidateBundle(result.ZipPath)
	if !report.Valid() {
		t.Fatalf("packed bundle should validate cleanly: %v", report.All())
	}
}
