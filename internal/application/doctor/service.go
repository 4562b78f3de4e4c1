package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/ports"
)

// RulesLoader compiles the best-practice rules at path and reports the
// languages they cover.
type RulesLoader func(path string) ([]string, error)

// ProviderLister reports registered provider languages.
type ProviderLister interface {
	Languages() []string
}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	LoadRules      RulesLoader
	Usage          ports.UsageRepository
	Providers      ProviderLister
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded format %s", cfg.ConfigFormatVersion)))

	if s.LoadRules != nil {
		if languages, err := s.LoadRules(cfg.Practices.RulesFile); err != nil {
			checks = append(checks, fail("Best-practice rules", err.Error()))
		} else {
			checks = append(checks, ok("Best-practice rules", "rules for "+strings.Join(languages, ", ")))
		}
	} else {
		checks = append(checks, warn("Best-practice rules", "rules loader not initialized"))
	}

	checks = append(checks, s.usageCheck(cfg))
	checks = append(checks, s.providerCheck(cfg))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) usageCheck(cfg domain.Config) domain.HealthCheck {
	if !cfg.IsUsageTrackingEnabled() {
		return warn("Usage store", "usage tracking disabled")
	}
	if s.Usage == nil {
		return fail("Usage store", "usage store not initialized")
	}
	summary, err := s.Usage.Summary()
	if err != nil {
		return fail("Usage store", err.Error())
	}
	return ok("Usage store", fmt.Sprintf("%d suggestions tracked in %s", len(summary), s.Usage.Path()))
}

func (s *Service) providerCheck(cfg domain.Config) domain.HealthCheck {
	if s.Providers == nil {
		return warn("Language providers", "engine not initialized")
	}
	registered := make(map[string]bool)
	for _, language := range s.Providers.Languages() {
		registered[language] = true
	}
	var missing []string
	for _, language := range cfg.GetEnabledProviders() {
		if !registered[language] {
			missing = append(missing, language)
		}
	}
	if len(registered) == 0 {
		return fail("Language providers", "no providers registered")
	}
	if len(missing) > 0 {
		return warn("Language providers", "not registered: "+strings.Join(missing, ", "))
	}
	return ok("Language providers", strings.Join(s.Providers.Languages(), ", "))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
