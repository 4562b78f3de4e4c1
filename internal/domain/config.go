package domain

// Config mirrors ~/.codesuggest/config.yaml.
type Config struct {
	ConfigFormatVersion string           `yaml:"config_format_version"`
	Engine              EngineSettings   `yaml:"engine"`
	Providers           ProviderSettings `yaml:"providers"`
	Practices           PracticeSettings `yaml:"practices"`
	Usage               UsageSettings    `yaml:"usage"`
}

// EngineSettings bounds the engine's in-memory state.
type EngineSettings struct {
	HistorySize     int    `yaml:"history_size"`
	CacheMaxEntries int    `yaml:"cache_max_entries"`
	MaxResults      int    `yaml:"max_results"`
	RecencyWindow   string `yaml:"recency_window"`
}

// ProviderSettings selects which language providers are registered.
type ProviderSettings struct {
	Enabled []string `yaml:"enabled"`
}

// PracticeSettings points at user supplied best-practice rules.
type PracticeSettings struct {
	RulesFile string `yaml:"rules_file"`
}

// UsageSettings controls persistence of accepted suggestions.
type UsageSettings struct {
	Enabled  bool   `yaml:"enabled"`
	Database string `yaml:"database"`
}
