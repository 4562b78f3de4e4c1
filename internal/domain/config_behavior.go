package domain

import (
	"fmt"
	"strings"
	"time"
)

// GetHistorySize returns the context history capacity
func (c *Config) GetHistorySize() int {
	if c.Engine.HistorySize <= 0 {
		return DefaultHistorySize
	}
	return c.Engine.HistorySize
}

// GetCacheMaxEntries returns the maximum number of cached suggestion lists
func (c *Config) GetCacheMaxEntries() int {
	if c.Engine.CacheMaxEntries <= 0 {
		return DefaultMaxCacheEntries
	}
	return c.Engine.CacheMaxEntries
}

// GetMaxResults returns how many ranked suggestions a generation returns
func (c *Config) GetMaxResults() int {
	if c.Engine.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return c.Engine.MaxResults
}

// GetRecencyWindow returns the window within which a suggestion counts as recently used.
// Invalid or empty values fall back to the default.
func (c *Config) GetRecencyWindow() time.Duration {
	if c.Engine.RecencyWindow == "" {
		return DefaultRecencyWindow
	}
	d, err := time.ParseDuration(c.Engine.RecencyWindow)
	if err != nil || d <= 0 {
		return DefaultRecencyWindow
	}
	return d
}

// GetEnabledProviders returns the normalized list of provider languages to register.
// An empty list enables every built-in provider.
func (c *Config) GetEnabledProviders() []string {
	if len(c.Providers.Enabled) == 0 {
		return append([]string(nil), BuiltinLanguages...)
	}
	seen := make(map[string]bool, len(c.Providers.Enabled))
	var out []string
	for _, name := range c.Providers.Enabled {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// IsProviderEnabled checks if a provider language is enabled
func (c *Config) IsProviderEnabled(language string) bool {
	language = strings.ToLower(language)
	for _, name := range c.GetEnabledProviders() {
		if name == language {
			return true
		}
	}
	return false
}

// EnableProvider adds a provider language to the enabled list
// Returns an error if it is already enabled
func (c *Config) EnableProvider(language string) error {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return fmt.Errorf("provider language cannot be empty")
	}
	if c.IsProviderEnabled(language) {
		return fmt.Errorf("provider %s already enabled", language)
	}
	c.Providers.Enabled = append(c.GetEnabledProviders(), language)
	return nil
}

// DisableProvider removes a provider language from the enabled list
// Returns an error if it is not enabled or is the last enabled provider
// (an empty list enables every built-in)
func (c *Config) DisableProvider(language string) error {
	language = strings.ToLower(strings.TrimSpace(language))
	current := c.GetEnabledProviders()
	var updated []string
	found := false
	for _, name := range current {
		if name == language {
			found = true
			continue
		}
		updated = append(updated, name)
	}
	if !found {
		return fmt.Errorf("provider %s not enabled", language)
	}
	if len(updated) == 0 {
		return fmt.Errorf("provider %s is the last enabled provider", language)
	}
	c.Providers.Enabled = updated
	return nil
}

// IsUsageTrackingEnabled checks if accepted suggestions are persisted
func (c *Config) IsUsageTrackingEnabled() bool {
	return c.Usage.Enabled
}

// ValidateConsistency checks the internal consistency of the configuration
func (c *Config) ValidateConsistency() error {
	if c.Engine.HistorySize < 0 {
		return fmt.Errorf("engine.history_size must be >= 0")
	}
	if c.Engine.MaxResults < 0 {
		return fmt.Errorf("engine.max_results must be >= 0")
	}
	if c.Usage.Enabled && c.Usage.Database == "" {
		return fmt.Errorf("usage tracking is enabled but usage.database is empty")
	}
	return nil
}
