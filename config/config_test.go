package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"WORKLOG_PATH", "DB_PATH", "WATCH", "REPORT_LINE_WIDTH", "REPORT_BAR_WIDTH", "STRICT_CONFIG"} {
		t.Setenv(key, "")
	}
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoadDefaults(t *testing.T) {
	isolateEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.InputPath != defaultInputFile {
		t.Fatalf("expected default input path %q, got %q", defaultInputFile, cfg.InputPath)
	}
	if cfg.DBPath != "" {
		t.Fatalf("archive should be disabled by default, got %q", cfg.DBPath)
	}
	if cfg.Report.LineWidth != defaultLineWidth || cfg.Report.BarWidth != defaultBarWidth {
		t.Fatalf("unexpected report defaults: %+v", cfg.Report)
	}
	if !reflect.DeepEqual(cfg.Keywords, DefaultNegativeKeywords()) {
		t.Fatalf("unexpected default keywords: %v", cfg.Keywords)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("input_path: from_file.csv\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("WORKLOG_PATH", "from_env.csv")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.InputPath != "from_env.csv" {
		t.Fatalf("env should win over file, got %q", cfg.InputPath)
	}
}

func TestFileConfigOverrides(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	body := `input_path: sprint_log.csv
db_path: archive.db
report:
  line_width: 80
  bar_width: 40
keywords: [" Outage ", "regression", "outage"]
`
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", configPath)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.InputPath != "sprint_log.csv" {
		t.Fatalf("unexpected input path: %q", cfg.InputPath)
	}
	if cfg.DBPath != "archive.db" {
		t.Fatalf("unexpected db path: %q", cfg.DBPath)
	}
	if cfg.Report.LineWidth != 80 || cfg.Report.BarWidth != 40 {
		t.Fatalf("unexpected report config: %+v", cfg.Report)
	}
	want := []string{"outage", "regression"}
	if !reflect.DeepEqual(cfg.Keywords, want) {
		t.Fatalf("expected normalized keywords %v, got %v", want, cfg.Keywords)
	}
}

func TestBarWidthClamp(t *testing.T) {
	isolateEnv(t)
	t.Setenv("REPORT_BAR_WIDTH", "500")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Report.BarWidth != defaultBarWidth {
		t.Fatalf("expected bar width clamped to %d, got %d", defaultBarWidth, cfg.Report.BarWidth)
	}
}

func TestStrictConfigRejectsBadFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(":\n\t- broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("STRICT_CONFIG", "1")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config in strict mode")
	}
}

func TestNegativeKeywordsFallsBackToDefaults(t *testing.T) {
	got := NegativeKeywords([]string{"  ", ""})
	if !reflect.DeepEqual(got, DefaultNegativeKeywords()) {
		t.Fatalf("expected defaults for blank override, got %v", got)
	}
}
