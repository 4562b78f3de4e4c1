package config

import (
	"fmt"
	"time"

	"github.com/doeshing/codesuggest/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := cfg.ValidateConsistency(); err != nil {
		return err
	}
	if err := validateEngine(cfg.Engine); err != nil {
		return err
	}
	return validateProviders(cfg.Providers)
}

func validateEngine(engine domain.EngineSettings) error {
	if engine.CacheMaxEntries < 0 {
		return fmt.Errorf("engine.cache_max_entries must be >= 0")
	}
	if engine.RecencyWindow != "" {
		d, err := time.ParseDuration(engine.RecencyWindow)
		if err != nil {
			return fmt.Errorf("engine.recency_window invalid: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("engine.recency_window must be positive")
		}
	}
	return nil
}

func validateProviders(providers domain.ProviderSettings) error {
	cfg := domain.Config{Providers: providers}
	for _, name := range cfg.GetEnabledProviders() {
		if !isBuiltin(name) {
			return fmt.Errorf("providers.enabled: unknown language %s", name)
		}
	}
	return nil
}

func isBuiltin(name string) bool {
	for _, builtin := range domain.BuiltinLanguages {
		if builtin == name {
			return true
		}
	}
	return false
}
