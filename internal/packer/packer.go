package packer

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-news-intake/internal/logging"
	"github.com/goliatone/go-news-intake/internal/normalize"
	"github.com/goliatone/go-news-intake/pkg/interfaces"
)

// Config locates the producer-side working tree and the drop-off directory
// for finished bundles.
type Config struct {
	// Root is the producer's working copy; markdown and uploads are written
	// beneath it before being zipped.
	Root string
	// IntakeDir receives the finished bundle zips.
	IntakeDir string

	Logger interfaces.Logger
	// Now is overridable for deterministic bundle names in tests.
	Now func() time.Time
}

// Packer turns a validated PostInput into a bundle the import pipeline
// accepts: a markdown post under content/news plus its image under
// static/uploads/news, zipped with repo-relative member paths.
type Packer struct {
	root   string
	intake string
	logger interfaces.Logger
	now    func() time.Time
}

// Result reports what a Pack call produced.
type Result struct {
	MarkdownPath string
	ImagePath    string
	ZipPath      string
}

// New builds a Packer from the configuration.
func New(cfg Config) *Packer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Packer{
		root:   cfg.Root,
		intake: cfg.IntakeDir,
		logger: logger,
		now:    now,
	}
}

// Pack validates the input, writes the post and its image into the working
// tree, and zips both into the intake directory. The returned Result holds
// the produced paths.
func (p *Packer) Pack(input PostInput) (*Result, error) {
	if input.Slug == "" {
		input.Slug = normalize.Slug(input.Title)
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("packer: invalid input: %w", err)
	}

	result := &Result{}

	webPath := ""
	if input.ImagePath != "" {
		uploadsRoot := filepath.Join(p.root, "static", "uploads", "news")
		hint := input.ImageAlt
		if hint == "" {
			hint = "hero"
		}
		web, local, err := CopyImage(input.ImagePath, uploadsRoot, input.Date, input.Slug, hint)
		if err != nil {
			return nil, err
		}
		webPath = web
		result.ImagePath = local
		p.logger.Debug("image copied", "path", local)
	}

	markdownDir := filepath.Join(p.root, "content", "news")
	if err := os.MkdirAll(markdownDir, 0o755); err != nil {
		return nil, fmt.Errorf("packer: create content dir: %w", err)
	}
	markdownPath := filepath.Join(markdownDir, fmt.Sprintf("%s-%s.md", input.Date, input.Slug))

	document := Frontmatter(input, webPath) + strings.TrimRight(input.Body, "\n") + "\n"
	if err := os.WriteFile(markdownPath, []byte(document), 0o644); err != nil {
		return nil, fmt.Errorf("packer: write markdown: %w", err)
	}
	result.MarkdownPath = markdownPath
	p.logger.Debug("markdown written", "path", markdownPath)

	zipPath, err := p.writeBundle(result.MarkdownPath, result.ImagePath)
	if err != nil {
		return nil, err
	}
	result.ZipPath = zipPath
	p.logger.Info("bundle packed", "zip", zipPath)
	return result, nil
}

func (p *Packer) writeBundle(markdownPath, imagePath string) (string, error) {
	if err := os.MkdirAll(p.intake, 0o755); err != nil {
		return "", fmt.Errorf("packer: create intake dir: %w", err)
	}

	stamp := p.now().Format("20060102-150405")
	zipPath := filepath.Join(p.intake, fmt.Sprintf("news-upload-%s.zip", stamp))

	f, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("packer: create bundle: %w", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	if err := p.addMember(w, markdownPath); err != nil {
		w.Close()
		return "", err
	}
	if imagePath != "" {
		if err := p.addMember(w, imagePath); err != nil {
			w.Close()
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("packer: finalize bundle: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("packer: flush bundle: %w", err)
	}
	return zipPath, nil
}

func (p *Packer) addMember(w *zip.Writer, path string) error {
	rel, err := filepath.Rel(p.root, path)
	if err != nil {
		return fmt.Errorf("packer: member %s is outside the working tree: %w", path, err)
	}

	entry, err := w.Create(filepath.ToSlash(rel))
	if err != nil {
		return fmt.Errorf("packer: add member %s: %w", rel, err)
	}
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("packer: open member %s: %w", path, err)
	}
	defer src.Close()

	if _, err := io.Copy(entry, src); err != nil {
		return fmt.Errorf("packer: write member %s: %w", rel, err)
	}
	return nil
}
