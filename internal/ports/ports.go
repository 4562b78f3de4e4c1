// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the suggestion engine and its
// adapters (infrastructure). Language providers, caches, history buffers and
// usage stores are all plugged in through the interfaces declared here, so the
// engine itself never depends on a concrete language or storage backend.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., LanguageProvider, SuggestionCache)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/codesuggest/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.codesuggest/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// EditorStateCollector turns a buffer position into the raw editing state the
// engine analyzes. The CLI reads buffers from disk; editor integrations supply
// their own implementation.
type EditorStateCollector interface {
	Collect(ctx context.Context, req domain.CollectRequest) (domain.EditorState, error)
}

// LanguageProvider encapsulates the knowledge of one language. Implementations
// must be deterministic for a given context: no randomness and no I/O.
type LanguageProvider interface {
	// Language is the identifier the registry keys the provider by.
	Language() string
	// Extensions lists recognized file extensions (with leading dot).
	Extensions() []string
	// AnalyzeContext reacts to literal substrings of the current line.
	AnalyzeContext(domain.CodeContext) []domain.CodeSuggestion
	// GenerateSuggestions produces scope- and intent-driven templates.
	GenerateSuggestions(domain.CodeContext) []domain.CodeSuggestion
	// BestPractices reports one advisory per anti-pattern found in the file.
	BestPractices(domain.CodeContext) []domain.CodeSuggestion
}

// ProviderFactory builds language providers by language identifier.
type ProviderFactory interface {
	ForLanguage(language string) (LanguageProvider, error)
}

// SuggestionCache memoizes ranked suggestion lists by context signature.
type SuggestionCache interface {
	Get(signature string) ([]domain.CodeSuggestion, bool)
	Put(signature string, suggestions []domain.CodeSuggestion)
	Clear()
	Len() int
	TotalSuggestions() int
}

// ContextHistory is a bounded record of analyzed contexts.
type ContextHistory interface {
	Append(domain.CodeContext)
	// Entries returns a copy of the history, most recent first.
	Entries() []domain.CodeContext
	Len() int
}

// UsageRepository persists suggestions the user accepted.
type UsageRepository interface {
	Save(domain.UsageRecord) error
	Records(limit int, language string) ([]domain.UsageRecord, error)
	Summary() (map[string]domain.UsageSummary, error)
	Clear() error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
