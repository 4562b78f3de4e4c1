package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildContainer(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	cfgPath := filepath.Join(dir, "config.yaml")
	raw := "providers:\n  enabled: [python, javascript, cobol]\nusage:\n  enabled: true\n  database: " + filepath.Join(dir, "usage.db") + "\n"
	if err := os.WriteFile(cfgPath, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := BuildContainer(context.Background(), Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	if diff := cmp.Diff([]string{"javascript", "python"}, c.Engine.Languages()); diff != "" {
		t.Fatalf("registered languages (-want +got):\n%s", diff)
	}
	if c.UsageStore == nil || c.UsageStore.Path() != filepath.Join(dir, "usage.db") {
		t.Fatalf("usage store not wired: %v", c.UsageStore)
	}
	if c.Collector == nil || c.DoctorService == nil || c.ConfigLoader.Path() != cfgPath {
		t.Fatal("container incomplete")
	}
}

func TestBuildContainerWithoutUsage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("usage:\n  enabled: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := BuildContainer(context.Background(), Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	if c.UsageStore != nil {
		t.Fatal("usage store should be nil when tracking is disabled")
	}
	if len(c.Engine.Languages()) != 3 {
		t.Fatalf("expected builtin providers, got %v", c.Engine.Languages())
	}
}
