package runtimeconfig

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRequiresRoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paths.Root = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrRootRequired) {
		t.Fatalf("expected ErrRootRequired, got %v", err)
	}
}

func TestValidateRequiresIntake(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paths.Intake = ""
	if err := cfg.Validate(); !errors.Is(err, ErrIntakeDirRequired) {
		t.Fatalf("expected ErrIntakeDirRequired, got %v", err)
	}
}

func TestValidateRejectsUnknownLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestValidateRejectsBadLevelAndFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestValidateRejectsEmptyIndexArg(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Index.Command = []string{"node", " "}
	if err := cfg.Validate(); !errors.Is(err, ErrIndexCommandEmptyArg) {
		t.Fatalf("expected ErrIndexCommandEmptyArg, got %v", err)
	}
}

func TestPathResolution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paths.Root = "/srv/site"

	if got := cfg.IntakeDir(); got != filepath.Join("/srv/site", "incoming") {
		t.Fatalf("IntakeDir: %s", got)
	}
	if got := cfg.ContentDir(); got != filepath.Join("/srv/site", "content", "news") {
		t.Fatalf("ContentDir: %s", got)
	}
	if got := cfg.UploadsDir(); got != filepath.Join("/srv/site", "static", "uploads", "news") {
		t.Fatalf("UploadsDir: %s", got)
	}

	cfg.Paths.Intake = "/var/spool/news"
	if got := cfg.IntakeDir(); got != "/var/spool/news" {
		t.Fatalf("absolute intake should be preserved: %s", got)
	}
}
