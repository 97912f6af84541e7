package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"socialteam/internal/platform/config"
)

func TestNewWritesDefaultsOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.ListenAddr != config.DefaultListenAddr || cfg.Brand != config.DefaultBrand {
		t.Fatalf("unexpected defaults: %+v", cfg.File)
	}
	if cfg.SearchPollInterval().Seconds() != 5 || cfg.SocialPollInterval().Seconds() != 10 {
		t.Fatalf("unexpected poll intervals: %+v", cfg.Poll)
	}
	if cfg.DBPath != filepath.Join(dir, "socialteam.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if !strings.Contains(string(raw), "listen_addr") {
		t.Fatalf("expected toml keys in config file, got %s", raw)
	}
}

func TestNewReadsFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "listen_addr = '127.0.0.1:9000'\nbrand = 'MyBrand'\n[poll]\nsearch_seconds = 2\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SOCIALTEAM_LOG_LEVEL", "DEBUG")
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" || cfg.Brand != "mybrand" || cfg.Poll.SearchSeconds != 2 {
		t.Fatalf("file values not applied: %+v", cfg.File)
	}
	if cfg.Poll.SocialSeconds != 10 {
		t.Fatalf("expected missing social poll to default, got %d", cfg.Poll.SocialSeconds)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected env override, got %q", cfg.LogLevel)
	}
}

func TestNewRequiresDataDir(t *testing.T) {
	if _, err := config.New("  "); err == nil {
		t.Fatalf("expected error for empty data dir")
	}
}
