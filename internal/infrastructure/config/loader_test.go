package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/codesuggest/assets"
	"github.com/doeshing/codesuggest/internal/domain"
)

func TestLoadWritesDefaultWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if string(written) != string(assets.DefaultConfigYAML) {
		t.Fatal("written config differs from embedded default")
	}
	if cfg.GetHistorySize() != domain.DefaultHistorySize || cfg.GetMaxResults() != domain.DefaultMaxResults {
		t.Fatalf("unexpected engine settings %+v", cfg.Engine)
	}
	if !cfg.IsUsageTrackingEnabled() || cfg.Usage.Database != filepath.Join(home, ".codesuggest", "usage.db") {
		t.Fatalf("usage database not expanded: %q", cfg.Usage.Database)
	}
}

func TestLoadReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "engine:\n  history_size: 4\n  max_results: 3\nproviders:\n  enabled: [Python]\nusage:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.GetHistorySize() != 4 || cfg.GetMaxResults() != 3 || cfg.GetCacheMaxEntries() != domain.DefaultMaxCacheEntries {
		t.Fatalf("unexpected engine settings %+v", cfg.Engine)
	}
	if !cfg.IsProviderEnabled("python") || cfg.IsProviderEnabled("javascript") {
		t.Fatalf("unexpected providers %v", cfg.GetEnabledProviders())
	}
	if cfg.ConfigFormatVersion != "1" {
		t.Fatalf("format version not hydrated: %q", cfg.ConfigFormatVersion)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("engine: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathPrecedence(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/from-env.yaml")
	if got := NewFileLoader("/tmp/flag.yaml").Path(); got != "/tmp/flag.yaml" {
		t.Fatalf("override should win, got %s", got)
	}
	if got := NewFileLoader("").Path(); got != "/tmp/from-env.yaml" {
		t.Fatalf("env should win over home, got %s", got)
	}
}

func TestDefaultMatchesEmbeddedFile(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	if err := cfg.ValidateConsistency(); err != nil {
		t.Fatalf("default config inconsistent: %v", err)
	}
	if cfg.GetRecencyWindow() != domain.DefaultRecencyWindow {
		t.Fatalf("recency window = %v", cfg.GetRecencyWindow())
	}
}

func TestSaveRoundTripsAndBacksUp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	backup, err := loader.Backup(time.Now())
	if err != nil || backup != "" {
		t.Fatalf("backup of missing file = %q, %v", backup, err)
	}

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	cfg.Engine.MaxResults = 5
	if err := cfg.DisableProvider("typescript"); err != nil {
		t.Fatal(err)
	}
	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != domain.SecureFilePermissions {
		t.Fatalf("config mode = %v", info.Mode().Perm())
	}

	reloaded, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if reloaded.GetMaxResults() != 5 || reloaded.IsProviderEnabled("typescript") {
		t.Fatalf("saved values lost: %+v", reloaded)
	}

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	backup, err = loader.Backup(stamp)
	if err != nil {
		t.Fatalf("Backup error: %v", err)
	}
	if backup != path+".20240501T120000.bak" {
		t.Fatalf("backup path = %s", backup)
	}
	if _, err := os.Stat(backup); err != nil {
		t.Fatalf("backup not written: %v", err)
	}
}

func TestResetRestoresDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  max_results: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	loader := NewFileLoader(path)
	cfg, err := loader.Reset()
	if err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	if cfg.GetMaxResults() != domain.DefaultMaxResults {
		t.Fatalf("max results = %d", cfg.GetMaxResults())
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != string(assets.DefaultConfigYAML) {
		t.Fatal("reset did not restore embedded default")
	}
}
