package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/codesuggest/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubUsage struct {
	summary map[string]domain.UsageSummary
	err     error
}

func (s stubUsage) Save(domain.UsageRecord) error                     { return nil }
func (s stubUsage) Records(int, string) ([]domain.UsageRecord, error) { return nil, nil }
func (s stubUsage) Summary() (map[string]domain.UsageSummary, error)  { return s.summary, s.err }
func (s stubUsage) Clear() error                                      { return nil }
func (s stubUsage) Path() string                                      { return "/tmp/usage.db" }

type stubProviders []string

func (s stubProviders) Languages() []string { return s }

func rulesOK(string) ([]string, error) { return []string{"javascript", "python"}, nil }

func TestRunHealthy(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{
			ConfigFormatVersion: "1",
			Usage:               domain.UsageSettings{Enabled: true, Database: "/tmp/usage.db"},
		}},
		LoadRules: rulesOK,
		Usage:     stubUsage{summary: map[string]domain.UsageSummary{"a": {Count: 1}}},
		Providers: stubProviders{"javascript", "python", "typescript"},
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(report.Checks) != 4 {
		t.Fatalf("expected 4 checks, got %+v", report.Checks)
	}
	for _, check := range report.Checks {
		if check.Status != domain.HealthOK {
			t.Errorf("%s: %s (%s)", check.Name, check.Status, check.Details)
		}
	}
	if report.Failed() {
		t.Fatal("healthy report marked failed")
	}
}

func TestRunReportsProblems(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{
			Providers: domain.ProviderSettings{Enabled: []string{"python", "typescript"}},
			Usage:     domain.UsageSettings{Enabled: true, Database: "/tmp/usage.db"},
		}},
		LoadRules: func(string) ([]string, error) { return nil, errors.New("rule py-x: invalid pattern") },
		Usage:     stubUsage{err: errors.New("database is locked")},
		Providers: stubProviders{"python"},
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	want := map[string]domain.HealthStatus{
		"Best-practice rules": domain.HealthError,
		"Usage store":         domain.HealthError,
		"Language providers":  domain.HealthWarn,
	}
	for _, check := range report.Checks {
		if status, ok := want[check.Name]; ok && status != check.Status {
			t.Errorf("%s: got %s, want %s", check.Name, check.Status, status)
		}
	}
	if !report.Failed() {
		t.Fatal("expected failed report")
	}
}

func TestRunStopsOnConfigError(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfig{err: errors.New("parse config: bad yaml")}}
	report, err := svc.Run(context.Background())
	if err == nil || len(report.Checks) != 1 || report.Checks[0].Status != domain.HealthError {
		t.Fatalf("unexpected result %+v %v", report, err)
	}
}

func TestUsageDisabledIsWarning(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{}},
		LoadRules:      rulesOK,
		Providers:      stubProviders{"javascript", "python", "typescript"},
	}
	report, _ := svc.Run(context.Background())
	for _, check := range report.Checks {
		if check.Name == "Usage store" && check.Status != domain.HealthWarn {
			t.Fatalf("usage check = %s", check.Status)
		}
	}
}
