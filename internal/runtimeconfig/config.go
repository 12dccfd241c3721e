package runtimeconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrRootRequired = errors.New("intake config: site root directory is required")
var ErrIntakeDirRequired = errors.New("intake config: intake directory is required")
var ErrLoggingProviderUnknown = errors.New("intake config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("intake config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("intake config: logging format is invalid")
var ErrIndexCommandEmptyArg = errors.New("intake config: index command contains an empty argument")
var ErrWatchScheduleRequired = errors.New("intake config: watch schedule is required when watch is enabled")

// Config aggregates the paths and collaborator settings for the intake
// module. Fields intentionally use simple types so host applications can
// bind them from files or environment variables.
type Config struct {
	Paths   PathsConfig
	Index   IndexConfig
	VCS     VCSConfig
	Watch   WatchConfig
	Logging LoggingConfig
}

// PathsConfig locates the live site tree and the bundle intake directory.
// Relative values are resolved against Root.
type PathsConfig struct {
	// Root is the site repository root. Content lands under
	// Root/content/news and assets under Root/static/uploads/news.
	Root string
	// Intake is the directory polled for *.zip bundles.
	Intake string
}

// IndexConfig controls the post-import index rebuild.
type IndexConfig struct {
	// Command is the external rebuild invocation (argv form). When empty
	// the built-in index.json writer is used instead.
	Command []string
}

// VCSConfig controls the best-effort commit of imported paths.
type VCSConfig struct {
	Enabled bool
	// MessagePrefix is prepended to the bundle name in commit messages.
	MessagePrefix string
}

// WatchConfig controls the polling importer binary.
type WatchConfig struct {
	Enabled bool
	// Schedule is a five-field cron expression.
	Schedule string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig mirrors the directory layout the packaging collaborator
// produces bundles for.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Root:   ".",
			Intake: "incoming",
		},
		Index: IndexConfig{},
		VCS: VCSConfig{
			MessagePrefix: "Import news from",
		},
		Watch: WatchConfig{
			Schedule: "*/5 * * * *",
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// IntakeDir returns the resolved intake directory.
func (cfg Config) IntakeDir() string {
	return cfg.resolve(cfg.Paths.Intake)
}

// ContentDir returns the live markdown tree for news posts.
func (cfg Config) ContentDir() string {
	return filepath.Join(cfg.Paths.Root, "content", "news")
}

// UploadsDir returns the live asset tree for news uploads.
func (cfg Config) UploadsDir() string {
	return filepath.Join(cfg.Paths.Root, "static", "uploads", "news")
}

func (cfg Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.Paths.Root, path)
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Paths.Root) == "" {
		return ErrRootRequired
	}
	if strings.TrimSpace(cfg.Paths.Intake) == "" {
		return ErrIntakeDirRequired
	}
	for _, arg := range cfg.Index.Command {
		if strings.TrimSpace(arg) == "" {
			return ErrIndexCommandEmptyArg
		}
	}
	if cfg.Watch.Enabled && strings.TrimSpace(cfg.Watch.Schedule) == "" {
		return ErrWatchScheduleRequired
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
	switch provider {
	case "", "noop", "gologger":
	default:
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	}
	return false
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	}
	return false
}
