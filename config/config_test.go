package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Storage.Path != "bus_data.txt" {
		t.Fatalf("storage path = %q", cfg.Storage.Path)
	}
	if cfg.Report.Path != "fleet_report.csv" {
		t.Fatalf("report path = %q", cfg.Report.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `storage:
  path: "/var/lib/fleet/bus_data.txt"
report:
  path: "/tmp/fleet_report.csv"
logging:
  level: "debug"
  format: "console"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"storage.path", cfg.Storage.Path, "/var/lib/fleet/bus_data.txt"},
		{"report.path", cfg.Report.Path, "/tmp/fleet_report.csv"},
		{"logging.level", cfg.Logging.Level, "debug"},
		{"logging.format", cfg.Logging.Format, "console"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FG_STORAGE__PATH", "/override/bus_data.txt")
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Storage.Path != "/override/bus_data.txt" {
		t.Fatalf("env override ignored: %q", cfg.Storage.Path)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestLoggingValidate(t *testing.T) {
	bad := LoggingConfig{Level: "loud"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	bad = LoggingConfig{Level: "info", Format: "xml"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	good := LoggingConfig{Level: "warn", Format: "json"}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
