package intake

import (
	"context"
	"io"

	"github.com/goliatone/go-news-intake/internal/importer"
	"github.com/goliatone/go-news-intake/internal/indexer"
	"github.com/goliatone/go-news-intake/internal/logging"
	"github.com/goliatone/go-news-intake/internal/logging/gologger"
	"github.com/goliatone/go-news-intake/internal/packer"
	"github.com/goliatone/go-news-intake/internal/validate"
	"github.com/goliatone/go-news-intake/pkg/interfaces"
)

// Importer exports the merge engine for consumers of the intake package.
type Importer = importer.Importer

// Packer exports the producer-side bundle builder.
type Packer = packer.Packer

// PostInput exports the packer input record.
type PostInput = packer.PostInput

// BundleReport exports the per-bundle outcome record.
type BundleReport = interfaces.BundleReport

// BatchResult exports the whole-batch outcome record.
type BatchResult = interfaces.BatchResult

// StructureReport exports the structural validation report.
type StructureReport = validate.StructureReport

// IndexBuilder exports the index rebuild collaborator contract.
type IndexBuilder = interfaces.IndexBuilder

// RepositoryCommitter exports the VCS collaborator contract.
type RepositoryCommitter = interfaces.RepositoryCommitter

// Logger exports the logging contract used throughout the module.
type Logger = interfaces.Logger

// LoggerProvider exports the logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// Module is the top level intake runtime façade: it owns the configured
// importer, packer, and collaborators.
type Module struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	importer  *importer.Importer
	packer    *packer.Packer
	index     interfaces.IndexBuilder
	vcs       interfaces.RepositoryCommitter
	reportOut io.Writer
}

// Option overrides a collaborator during construction.
type Option func(*Module)

// WithLoggerProvider replaces the provider derived from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// WithIndexBuilder replaces the index trigger derived from the config.
func WithIndexBuilder(builder interfaces.IndexBuilder) Option {
	return func(m *Module) {
		m.index = builder
	}
}

// WithRepositoryCommitter replaces the VCS collaborator derived from the config.
func WithRepositoryCommitter(committer interfaces.RepositoryCommitter) Option {
	return func(m *Module) {
		m.vcs = committer
	}
}

// WithReportWriter directs the operator-facing per-bundle lines to w.
func WithReportWriter(w io.Writer) Option {
	return func(m *Module) {
		m.reportOut = w
	}
}

// New constructs an intake module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := buildProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if m.index == nil {
		m.index = indexer.NewExecTrigger(indexer.Config{
			Root:    cfg.Paths.Root,
			Command: cfg.Index.Command,
			Logger:  logging.IndexerLogger(m.provider),
		})
	}
	if m.vcs == nil {
		if cfg.VCS.Enabled {
			m.vcs = indexer.NewGitCommitter(cfg.Paths.Root, logging.IndexerLogger(m.provider))
		} else {
			m.vcs = indexer.NoOpCommitter()
		}
	}

	m.importer = importer.New(importer.Config{
		IntakeDir:           cfg.IntakeDir(),
		Root:                cfg.Paths.Root,
		CommitMessagePrefix: cfg.VCS.MessagePrefix,
		Logger:              logging.ImporterLogger(m.provider),
		Index:               m.index,
		VCS:                 m.vcs,
		Report:              m.reportOut,
	})
	m.packer = packer.New(packer.Config{
		Root:      cfg.Paths.Root,
		IntakeDir: cfg.IntakeDir(),
		Logger:    logging.PackerLogger(m.provider),
	})
	return m, nil
}

// Importer returns the configured merge engine.
func (m *Module) Importer() *Importer {
	return m.importer
}

// Packer returns the configured bundle producer.
func (m *Module) Packer() *Packer {
	return m.packer
}

// LoggerProvider exposes the provider for host applications that want to
// share the module's logging configuration.
func (m *Module) LoggerProvider() LoggerProvider {
	return m.provider
}

// ImportAll runs one batch over the intake directory.
func (m *Module) ImportAll(ctx context.Context) (*BatchResult, error) {
	return m.importer.ImportAll(ctx)
}

// ValidateBundle runs the strict structural check against a single zip.
func (m *Module) ValidateBundle(zipPath string) StructureReport {
	return validate.Bundle(zipPath)
}

func buildProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch cfg.Provider {
	case "", "noop":
		return nil, nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	}
	return nil, ErrLoggingProviderUnknown
}
