package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-news-intake/pkg/interfaces"
)

const (
	rootModule      = "intake"
	importerModule  = "intake.importer"
	validatorModule = "intake.validator"
	indexerModule   = "intake.indexer"
	packerModule    = "intake.packer"
)

const (
	fieldBundle = "bundle"
	fieldRunID  = "run_id"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as structured context so entries can be filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ImporterLogger returns the logger namespace reserved for the merge engine.
func ImporterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, importerModule)
}

// ValidatorLogger returns the logger namespace reserved for bundle validation.
func ValidatorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, validatorModule)
}

// IndexerLogger returns the logger namespace reserved for index rebuilds and
// VCS commits.
func IndexerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, indexerModule)
}

// PackerLogger returns the logger namespace reserved for bundle production.
func PackerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, packerModule)
}

// WithBundleContext enriches the provided logger with the bundle name and run
// identifier. Empty values are ignored.
func WithBundleContext(logger interfaces.Logger, bundle, runID string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(bundle); trimmed != "" {
		fields[fieldBundle] = trimmed
	}
	if trimmed := strings.TrimSpace(runID); trimmed != "" {
		fields[fieldRunID] = trimmed
	}
	return WithFields(logger, fields)
}

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Callers can pass nil or an
// empty map to skip allocation safely.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// NoOp returns a logger that drops every entry. It satisfies the Logger
// contract so services can operate safely when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithContext(context.Context) interfaces.Logger { return n }
