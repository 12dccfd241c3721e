package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Paths.Intake != "incoming" {
		t.Fatalf("intake dir = %q", cfg.Paths.Intake)
	}
	if cfg.Watch.Schedule == "" {
		t.Fatalf("watch schedule must have a default")
	}
}

func TestLoadConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intake.yaml")
	doc := `paths:
  root: /srv/site
  intake: drop
vcs:
  enabled: true
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Paths.Root != "/srv/site" || cfg.Paths.Intake != "drop" {
		t.Fatalf("paths = %+v", cfg.Paths)
	}
	if !cfg.VCS.Enabled {
		t.Fatalf("vcs.enabled not applied")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging.level = %q", cfg.Logging.Level)
	}
	if cfg.VCS.MessagePrefix == "" {
		t.Fatalf("untouched defaults must survive the overlay")
	}
}

func TestLoadConfigMissingExplicitFileFails(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestBuildModuleAppliesOverrides(t *testing.T) {
	root := t.TempDir()
	module, err := BuildModule(Options{
		Root:      root,
		IntakeDir: "drop",
		LogLevel:  "debug",
	})
	if err != nil {
		t.Fatalf("BuildModule: %v", err)
	}
	if module.Config.Paths.Root != root {
		t.Fatalf("root override not applied: %q", module.Config.Paths.Root)
	}
	if module.Config.IntakeDir() != filepath.Join(root, "drop") {
		t.Fatalf("intake dir = %q", module.Config.IntakeDir())
	}
}
