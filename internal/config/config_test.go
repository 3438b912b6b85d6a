package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	Init(v, writeConfig(t, ""))

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Hints.Enabled || cfg.Hints.Max != 3 {
		t.Errorf("hints = %+v, want enabled with max 3", cfg.Hints)
	}
	if cfg.Performance.Mode != "high" {
		t.Errorf("performance mode = %q, want high", cfg.Performance.Mode)
	}
	if !cfg.UI.Notifications {
		t.Error("notifications disabled by default")
	}
	if !cfg.Catalog.Builtin {
		t.Error("builtin catalog disabled by default")
	}
	if cfg.UI.ReducedMotion {
		t.Error("reduced motion enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
hints:
  enabled: false
performance:
  mode: low
ui:
  reduced_motion: true
  notifications: false
catalog:
  builtin: false
  dirs:
    - /opt/eggs
storage:
  db_path: /tmp/custom.db
`)
	v := viper.New()
	Init(v, path)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Hints.Enabled {
		t.Error("hints.enabled = true, want false from file")
	}
	if cfg.Performance.Mode != "low" {
		t.Errorf("performance mode = %q, want low", cfg.Performance.Mode)
	}
	if !cfg.UI.ReducedMotion || cfg.UI.Notifications {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if cfg.Catalog.Builtin || len(cfg.Catalog.Dirs) != 1 || cfg.Catalog.Dirs[0] != "/opt/eggs" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.Storage.DBPath != "/tmp/custom.db" {
		t.Errorf("db path = %q", cfg.Storage.DBPath)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	v := viper.New()
	v.AddConfigPath(t.TempDir())
	v.SetConfigType("yaml")
	v.SetConfigName("config")

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("load without config file: %v", err)
	}
	if cfg.Performance.Mode != "high" {
		t.Errorf("performance mode = %q, want high", cfg.Performance.Mode)
	}
}

func TestLoadRejectsBadMode(t *testing.T) {
	path := writeConfig(t, "performance:\n  mode: turbo\n")
	v := viper.New()
	Init(v, path)

	if _, err := Load(v); err == nil {
		t.Fatal("load accepted performance mode turbo")
	}
}

func TestLoadRejectsNegativeHintMax(t *testing.T) {
	path := writeConfig(t, "hints:\n  max: -1\n")
	v := viper.New()
	Init(v, path)

	if _, err := Load(v); err == nil {
		t.Fatal("load accepted negative hints.max")
	}
}
