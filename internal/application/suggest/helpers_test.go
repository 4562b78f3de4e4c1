package suggest

import (
	"fmt"
	"testing"
	"time"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/infrastructure/cache"
	"github.com/doeshing/codesuggest/internal/infrastructure/history"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ctx-%d", n)
	}
}

type recordingLogger struct {
	errors []error
	warns  []string
}

func (l *recordingLogger) Debug(string, map[string]interface{}) {}
func (l *recordingLogger) Info(string, map[string]interface{})  {}
func (l *recordingLogger) Warn(msg string, _ map[string]interface{}) {
	l.warns = append(l.warns, msg)
}
func (l *recordingLogger) Error(_ string, err error, _ map[string]interface{}) {
	l.errors = append(l.errors, err)
}

type stubProvider struct {
	language    string
	extensions  []string
	reactions   []domain.CodeSuggestion
	templates   []domain.CodeSuggestion
	advisories  []domain.CodeSuggestion
	panicOnCall bool
	calls       int
}

func (p *stubProvider) Language() string     { return p.language }
func (p *stubProvider) Extensions() []string { return p.extensions }

func (p *stubProvider) AnalyzeContext(domain.CodeContext) []domain.CodeSuggestion {
	p.calls++
	return p.reactions
}

func (p *stubProvider) GenerateSuggestions(domain.CodeContext) []domain.CodeSuggestion {
	if p.panicOnCall {
		panic("template table corrupted")
	}
	return p.templates
}

func (p *stubProvider) BestPractices(domain.CodeContext) []domain.CodeSuggestion {
	return p.advisories
}

type stubUsage struct {
	summary map[string]domain.UsageSummary
	saved   []domain.UsageRecord
	err     error
}

func (s *stubUsage) Save(rec domain.UsageRecord) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, rec)
	return nil
}

func (s *stubUsage) Records(int, string) ([]domain.UsageRecord, error) { return s.saved, s.err }

func (s *stubUsage) Summary() (map[string]domain.UsageSummary, error) { return s.summary, s.err }

func (s *stubUsage) Clear() error { s.saved = nil; return nil }

func (s *stubUsage) Path() string { return "stub" }

type engineFixture struct {
	engine *Engine
	cache  *cache.SuggestionCache
	logger *recordingLogger
}

func newFixture(t *testing.T, mutate func(*Options)) engineFixture {
	t.Helper()
	c := cache.NewSuggestionCache(domain.DefaultMaxCacheEntries)
	logger := &recordingLogger{}
	opts := Options{
		Cache:   c,
		History: history.NewContextHistory(domain.DefaultHistorySize),
		Logger:  logger,
		Clock:   fixedClock,
		NewID:   sequentialIDs(),
	}
	if mutate != nil {
		mutate(&opts)
	}
	engine, err := NewEngine(opts)
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	return engineFixture{engine: engine, cache: c, logger: logger}
}

func containsID(suggestions []domain.CodeSuggestion, id string) bool {
	return indexOf(suggestions, id) >= 0
}

func indexOf(suggestions []domain.CodeSuggestion, id string) int {
	for i, s := range suggestions {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func ids(suggestions []domain.CodeSuggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.ID
	}
	return out
}
