package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/doeshing/codesuggest/internal/app"
	"github.com/doeshing/codesuggest/internal/version"
)

func init() {
	color.NoColor = true
}

func newTestContainer(t *testing.T, usageEnabled bool) *app.Container {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	cfgPath := filepath.Join(dir, "config.yaml")
	raw := "engine:\n  history_size: 10\n" +
		"practices:\n  rules_file: " + filepath.Join(dir, "practices.yaml") + "\n" +
		"usage:\n  enabled: " + strconv.FormatBool(usageEnabled) + "\n" +
		"  database: " + filepath.Join(dir, "usage.db") + "\n"
	if err := os.WriteFile(cfgPath, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}
	container, err := app.BuildContainer(context.Background(), app.Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	return container
}

func writeBuffer(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSuggestCommandJSON(t *testing.T) {
	container := newTestContainer(t, false)
	path := writeBuffer(t, "app.js", "const x = ")

	out, err := run(t, NewSuggestCommand(container), path, "--line", "1", "--json", "--stats")
	if err != nil {
		t.Fatalf("suggest error: %v", err)
	}
	var payload suggestOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	found := false
	for _, s := range payload.Suggestions {
		if s.ID == "javascript:const-binding" {
			found = true
		}
	}
	if !found {
		t.Fatalf("const binding missing from %+v", payload.Suggestions)
	}
	if payload.Stats == nil || payload.Stats.HistorySize != 1 || payload.Stats.CacheSize != 1 {
		t.Fatalf("unexpected stats %+v", payload.Stats)
	}
	if payload.Stats.HistoryCapacity != 10 || payload.Stats.CacheCapacity != 100 {
		t.Fatalf("capacities missing from stats %+v", payload.Stats)
	}
}

func TestSuggestCommandRequiresLine(t *testing.T) {
	container := newTestContainer(t, false)
	path := writeBuffer(t, "app.js", "x")
	if _, err := run(t, NewSuggestCommand(container), path); err == nil || err.Error() != ErrLineRequired {
		t.Fatalf("expected %q, got %v", ErrLineRequired, err)
	}
}

func TestAnalyzeCommand(t *testing.T) {
	container := newTestContainer(t, false)
	path := writeBuffer(t, "model.py", "class Cart:\n    def total(self):\n        for item in self.items:\n")

	out, err := run(t, NewAnalyzeCommand(container), path, "--line", "3")
	if err != nil {
		t.Fatalf("analyze error: %v", err)
	}
	for _, want := range []string{"Language: python", "Scope:    class", "Intent:   loop", "Classes:   Cart"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLintCommand(t *testing.T) {
	container := newTestContainer(t, false)
	path := writeBuffer(t, "cmp.js", "var a = 1;\nif (a == 2) {}\n")

	out, err := run(t, NewLintCommand(container), path)
	if err != nil {
		t.Fatalf("lint error: %v", err)
	}
	for _, want := range []string{"js-prefer-block-scope", "js-strict-equality"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLanguagesCommand(t *testing.T) {
	container := newTestContainer(t, false)
	out, err := run(t, NewLanguagesCommand(container))
	if err != nil {
		t.Fatalf("languages error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "javascript") || !strings.Contains(lines[1], ".py") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestUsageAcceptListClear(t *testing.T) {
	container := newTestContainer(t, true)
	path := writeBuffer(t, "loop.py", "for ")

	if _, err := run(t, NewUsageCommand(container), "accept", path, "--line", "1", "--id", "python:for-range"); err != nil {
		t.Fatalf("accept error: %v", err)
	}
	if _, err := run(t, NewUsageCommand(container), "accept", path, "--line", "1", "--id", "python:nope"); err == nil {
		t.Fatal("expected error for a suggestion that was not offered")
	}

	out, err := run(t, NewUsageCommand(container), "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, "python:for-range") {
		t.Fatalf("accepted suggestion not listed:\n%s", out)
	}

	if _, err := run(t, NewUsageCommand(container), "clear"); err != nil {
		t.Fatalf("clear error: %v", err)
	}
	out, _ = run(t, NewUsageCommand(container), "list")
	if strings.TrimSpace(out) != MsgNoUsageRecorded {
		t.Fatalf("expected empty list, got %q", out)
	}
}

func TestUsageDisabled(t *testing.T) {
	container := newTestContainer(t, false)
	if _, err := run(t, NewUsageCommand(container), "list"); err == nil || err.Error() != ErrUsageStoreUnavailable {
		t.Fatalf("expected %q, got %v", ErrUsageStoreUnavailable, err)
	}
}

func TestConfigCommands(t *testing.T) {
	container := newTestContainer(t, false)

	out, err := run(t, NewConfigCommand(container), "validate")
	if err != nil || strings.TrimSpace(out) != MsgConfigurationValid {
		t.Fatalf("validate: %q %v", out, err)
	}

	out, err = run(t, NewConfigCommand(container), "path")
	if err != nil || !strings.HasSuffix(strings.TrimSpace(out), "config.yaml") {
		t.Fatalf("path: %q %v", out, err)
	}

	out, err = run(t, NewConfigCommand(container), "diff")
	if err != nil || !strings.Contains(out, "Differences") {
		t.Fatalf("diff: %q %v", out, err)
	}

	out, err = run(t, NewConfigCommand(container), "show")
	if err != nil || !strings.Contains(out, "history_size: 10") {
		t.Fatalf("show: %q %v", out, err)
	}
}

func TestConfigSetGetReset(t *testing.T) {
	container := newTestContainer(t, false)
	cfgPath := container.ConfigLoader.Path()

	out, err := run(t, NewConfigCommand(container), "set", "engine.max_results", "3")
	if err != nil || !strings.Contains(out, "Updated engine.max_results") {
		t.Fatalf("set: %q %v", out, err)
	}
	backups, err := filepath.Glob(cfgPath + ".*.bak")
	if err != nil || len(backups) != 1 {
		t.Fatalf("expected one backup, got %v %v", backups, err)
	}
	if container.Config.GetMaxResults() != 3 {
		t.Fatalf("container config not refreshed: %+v", container.Config.Engine)
	}

	out, err = run(t, NewConfigCommand(container), "get", "engine.max_results")
	if err != nil || strings.TrimSpace(out) != "3" {
		t.Fatalf("get: %q %v", out, err)
	}

	if _, err := run(t, NewConfigCommand(container), "set", "engine.max_results", "-1"); err == nil {
		t.Fatal("expected validation error for negative max_results")
	}
	if _, err := run(t, NewConfigCommand(container), "set", "engine.turbo", "true"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, err := run(t, NewConfigCommand(container), "get", "engine.turbo"); err == nil {
		t.Fatal("expected error for unknown key")
	}

	out, err = run(t, NewConfigCommand(container), "reset")
	if err != nil || !strings.Contains(out, "Configuration reset at "+cfgPath) {
		t.Fatalf("reset: %q %v", out, err)
	}
	out, err = run(t, NewConfigCommand(container), "get", "engine.max_results")
	if err != nil || strings.TrimSpace(out) != "8" {
		t.Fatalf("get after reset: %q %v", out, err)
	}
}

func TestConfigEditValidatesResult(t *testing.T) {
	container := newTestContainer(t, false)
	t.Setenv(EnvEditor, "true")

	out, err := run(t, NewConfigCommand(container), "edit")
	if err != nil || strings.TrimSpace(out) != MsgConfigurationValid {
		t.Fatalf("edit: %q %v", out, err)
	}
}

func TestLanguagesEnableDisable(t *testing.T) {
	container := newTestContainer(t, false)

	out, err := run(t, NewLanguagesCommand(container), "disable", "TypeScript")
	if err != nil || !strings.Contains(out, "Disabled typescript") {
		t.Fatalf("disable: %q %v", out, err)
	}
	cfg, err := container.ConfigLoader.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IsProviderEnabled("typescript") || !cfg.IsProviderEnabled("javascript") {
		t.Fatalf("providers after disable: %v", cfg.GetEnabledProviders())
	}

	rebuilt, err := app.BuildContainer(context.Background(), app.Options{ConfigPath: container.ConfigLoader.Path()})
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	out, err = run(t, NewLanguagesCommand(rebuilt), "list")
	if err != nil || strings.Contains(out, "typescript") {
		t.Fatalf("typescript still registered:\n%s", out)
	}

	if _, err := run(t, NewLanguagesCommand(container), "disable", "typescript"); err == nil {
		t.Fatal("expected error disabling a disabled provider")
	}
	if _, err := run(t, NewLanguagesCommand(container), "enable", "ruby"); err == nil {
		t.Fatal("expected error enabling a language without a provider")
	}

	out, err = run(t, NewLanguagesCommand(container), "enable", "typescript")
	if err != nil || !strings.Contains(out, "Enabled typescript") {
		t.Fatalf("enable: %q %v", out, err)
	}
	cfg, err = container.ConfigLoader.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.IsProviderEnabled("typescript") {
		t.Fatalf("providers after enable: %v", cfg.GetEnabledProviders())
	}
}

func TestDoctorCommand(t *testing.T) {
	container := newTestContainer(t, true)
	out, err := run(t, NewDoctorCommand(container))
	if err != nil {
		t.Fatalf("doctor error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "[OK] Language providers - javascript, python, typescript") {
		t.Fatalf("unexpected doctor output:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, NewVersionCommand())
	if err != nil || !strings.HasPrefix(out, "codesuggest "+version.Version) || !strings.Contains(out, "Commit:   unknown") {
		t.Fatalf("version: %q %v", out, err)
	}

	out, err = run(t, NewVersionCommand(), "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	var info version.Info
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if info.Version != version.Version || info.GoVersion == "" || info.Platform == "" {
		t.Fatalf("unexpected info %+v", info)
	}
}
