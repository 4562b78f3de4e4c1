package suggest

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/ports"
)

var (
	// ErrProviderFault marks a provider that panicked while producing suggestions.
	ErrProviderFault = errors.New("language provider fault")
	// ErrNoProvider is returned by lookups for an unregistered language.
	ErrNoProvider = errors.New("no language provider registered")
	// ErrUsageDisabled is returned by RecordAcceptance without a usage repository.
	ErrUsageDisabled = errors.New("usage tracking disabled")
)

const (
	historyConfidence = 0.6
	maxHistoryItems   = 3
	fallbackID        = "fallback:todo"
)

// Options configures an Engine. Cache and History are required.
type Options struct {
	Cache         ports.SuggestionCache
	History       ports.ContextHistory
	Usage         ports.UsageRepository
	Logger        ports.Logger
	Clock         func() time.Time
	NewID         func() string
	MaxResults    int
	RecencyWindow time.Duration
}

// Engine owns the provider registry, context history and suggestion cache of
// one editing session.
type Engine struct {
	mu       sync.Mutex
	registry *Registry
	analyzer *Analyzer
	ranker   *Ranker
	cache    ports.SuggestionCache
	history  ports.ContextHistory
	usage    ports.UsageRepository
	logger   ports.Logger
	clock    func() time.Time
}

// NewEngine validates the options and builds an engine.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Cache == nil || opts.History == nil {
		return nil, errors.New("suggest.Engine dependencies not satisfied")
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	return &Engine{
		registry: NewRegistry(),
		analyzer: NewAnalyzer(clock, opts.NewID),
		ranker:   NewRanker(clock, opts.RecencyWindow, opts.MaxResults),
		cache:    opts.Cache,
		history:  opts.History,
		usage:    opts.Usage,
		logger:   logger,
		clock:    clock,
	}, nil
}

// RegisterLanguageProvider adds or replaces the provider for its language.
// Cached lists are dropped so they cannot outlive the provider that built them.
func (e *Engine) RegisterLanguageProvider(provider ports.LanguageProvider) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.registry.Register(provider)
	e.cache.Clear()
	e.logger.Debug("provider registered", map[string]interface{}{
		"language":   provider.Language(),
		"extensions": strings.Join(provider.Extensions(), ","),
	})
}

// AnalyzeContext builds a CodeContext and appends it to the history.
func (e *Engine) AnalyzeContext(state domain.EditorState) domain.CodeContext {
	e.mu.Lock()
	defer e.mu.Unlock()
	ctx := e.analyzer.Build(state)
	e.history.Append(ctx)
	e.logger.Debug("context analyzed", map[string]interface{}{
		"language": ctx.Language,
		"scope":    ctx.Scope,
		"intent":   ctx.Intent,
	})
	return ctx
}

// GenerateSuggestions returns the ranked suggestions for ctx. Lists are cached
// by Signature; a cache hit returns the stored list unchanged.
func (e *Engine) GenerateSuggestions(ctx domain.CodeContext) []domain.CodeSuggestion {
	e.mu.Lock()
	defer e.mu.Unlock()

	signature := Signature(ctx)
	if cached, ok := e.cache.Get(signature); ok {
		e.logger.Debug("suggestion cache hit", map[string]interface{}{"signature": signature})
		return cached
	}

	provider, ok := e.registry.Resolve(ctx.Language)
	if !ok {
		return []domain.CodeSuggestion{e.fallback(ctx)}
	}

	candidates, err := collect(ctx, provider.AnalyzeContext, provider.GenerateSuggestions, provider.BestPractices)
	if err != nil {
		e.logger.Error("provider failed", err, map[string]interface{}{"language": ctx.Language})
		return []domain.CodeSuggestion{}
	}
	candidates = append(candidates, e.historySuggestions(ctx)...)
	candidates = dedupe(candidates)
	e.applyUsage(candidates)

	ranked := e.ranker.Rank(candidates, ctx)
	e.cache.Put(signature, ranked)
	e.logger.Debug("suggestion cache miss", map[string]interface{}{
		"signature":  signature,
		"candidates": len(candidates),
		"returned":   len(ranked),
	})
	return ranked
}

// BestPractices returns only the provider's advisories for ctx, bypassing
// ranking and the cache.
func (e *Engine) BestPractices(ctx domain.CodeContext) ([]domain.CodeSuggestion, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	provider, ok := e.registry.Resolve(ctx.Language)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoProvider, ctx.Language)
	}
	return collect(ctx, provider.BestPractices)
}

// RecordAcceptance persists that the user accepted s. The cache is cleared so
// the new usage counts reach the next ranking.
func (e *Engine) RecordAcceptance(s domain.CodeSuggestion) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.usage == nil {
		return ErrUsageDisabled
	}
	record := domain.UsageRecord{
		SuggestionID: s.ID,
		Language:     s.Language,
		Code:         s.Code,
		AcceptedAt:   e.clock(),
	}
	if err := e.usage.Save(record); err != nil {
		return fmt.Errorf("record acceptance: %w", err)
	}
	e.cache.Clear()
	return nil
}

// ClearCache empties the suggestion cache.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache.Clear()
}

// Stats reports cache and history sizes.
func (e *Engine) Stats() domain.EngineStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	stats := domain.EngineStats{
		TotalSuggestions: e.cache.TotalSuggestions(),
		CacheSize:        e.cache.Len(),
		HistorySize:      e.history.Len(),
	}
	if bounded, ok := e.cache.(interface{ MaxEntries() int }); ok {
		stats.CacheCapacity = bounded.MaxEntries()
	}
	if bounded, ok := e.history.(interface{ Capacity() int }); ok {
		stats.HistoryCapacity = bounded.Capacity()
	}
	return stats
}

// History returns the analyzed contexts, most recent first.
func (e *Engine) History() []domain.CodeContext {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Entries()
}

// Languages lists the registered provider languages.
func (e *Engine) Languages() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Languages()
}

// Extensions lists the file extensions claimed by the provider for language.
func (e *Engine) Extensions(language string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	provider, ok := e.registry.Resolve(language)
	if !ok {
		return nil
	}
	return provider.Extensions()
}

// ProviderForExtension returns the language id of the provider claiming ext.
func (e *Engine) ProviderForExtension(ext string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	provider, ok := e.registry.ForExtension(ext)
	if !ok {
		return "", false
	}
	return provider.Language(), true
}

// collect concatenates the output of each source, turning a panic into
// ErrProviderFault.
func collect(ctx domain.CodeContext, sources ...func(domain.CodeContext) []domain.CodeSuggestion) (out []domain.CodeSuggestion, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %s: %v", ErrProviderFault, ctx.Language, r)
		}
	}()
	for _, source := range sources {
		out = append(out, source(ctx)...)
	}
	return out, nil
}

func (e *Engine) fallback(ctx domain.CodeContext) domain.CodeSuggestion {
	return domain.CodeSuggestion{
		ID:          fallbackID,
		Code:        todoPlaceholder(ctx.Language),
		Explanation: fmt.Sprintf("No language provider is registered for %q", ctx.Language),
		Confidence:  0.1,
		Category:    domain.CategorySnippet,
		Language:    ctx.Language,
		Tags:        []string{"fallback"},
		LastUsed:    e.clock(),
		Complexity:  domain.ComplexitySimple,
	}
}

// commentStyles maps languages (and the bare extensions the collector falls
// back to) whose line comment is not "//".
var commentStyles = map[string][2]string{
	"python": {"# ", ""}, "py": {"# ", ""}, "ruby": {"# ", ""}, "rb": {"# ", ""},
	"shell": {"# ", ""}, "sh": {"# ", ""}, "bash": {"# ", ""}, "zsh": {"# ", ""},
	"perl": {"# ", ""}, "pl": {"# ", ""}, "r": {"# ", ""}, "elixir": {"# ", ""},
	"ex": {"# ", ""}, "exs": {"# ", ""}, "yaml": {"# ", ""}, "yml": {"# ", ""},
	"toml": {"# ", ""}, "julia": {"# ", ""}, "jl": {"# ", ""}, "nim": {"# ", ""},
	"powershell": {"# ", ""}, "ps1": {"# ", ""}, "dockerfile": {"# ", ""},
	"sql": {"-- ", ""}, "lua": {"-- ", ""}, "haskell": {"-- ", ""}, "hs": {"-- ", ""},
	"elm": {"-- ", ""}, "ada": {"-- ", ""},
	"clojure": {";; ", ""}, "clj": {";; ", ""}, "lisp": {";; ", ""}, "scheme": {";; ", ""},
	"erlang": {"% ", ""}, "erl": {"% ", ""}, "tex": {"% ", ""}, "latex": {"% ", ""},
	"html": {"<!-- ", " -->"}, "xml": {"<!-- ", " -->"}, "markdown": {"<!-- ", " -->"},
	"md": {"<!-- ", " -->"}, "css": {"/* ", " */"},
}

// todoPlaceholder comments out a TODO in the syntax of language.
func todoPlaceholder(language string) string {
	style, ok := commentStyles[language]
	if !ok {
		style = [2]string{"// ", ""}
	}
	return style[0] + "TODO: implement" + style[1]
}

// historySuggestions replays lines from earlier contexts with the same
// language, scope and intent. One suggestion per distinct line, newest first.
func (e *Engine) historySuggestions(ctx domain.CodeContext) []domain.CodeSuggestion {
	type seen struct {
		line     string
		count    int
		lastSeen time.Time
	}
	var order []*seen
	byLine := make(map[string]*seen)
	for _, entry := range e.history.Entries() {
		if entry.ID == ctx.ID || !entry.SameShape(ctx) {
			continue
		}
		line := strings.TrimSpace(entry.CurrentLine)
		if line == "" {
			continue
		}
		if item, ok := byLine[line]; ok {
			item.count++
			continue
		}
		item := &seen{line: line, count: 1, lastSeen: entry.CreatedAt}
		byLine[line] = item
		order = append(order, item)
	}

	var out []domain.CodeSuggestion
	for _, item := range order {
		if len(out) == maxHistoryItems {
			break
		}
		out = append(out, domain.CodeSuggestion{
			ID:          historyID(item.line),
			Code:        item.line,
			Explanation: fmt.Sprintf("Seen %d time(s) in a similar %s context", item.count, ctx.Scope),
			Confidence:  historyConfidence,
			Category:    domain.CategoryCompletion,
			Language:    ctx.Language,
			Tags:        []string{"history", "pattern"},
			Usage:       item.count,
			LastUsed:    item.lastSeen,
			Complexity:  domain.ComplexitySimple,
		})
	}
	return out
}

func historyID(line string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(line))
	return fmt.Sprintf("history:%08x", h.Sum32())
}

// applyUsage folds persisted acceptance counts into the candidates.
func (e *Engine) applyUsage(candidates []domain.CodeSuggestion) {
	if e.usage == nil || len(candidates) == 0 {
		return
	}
	summary, err := e.usage.Summary()
	if err != nil {
		e.logger.Warn("usage summary unavailable", map[string]interface{}{"error": err.Error()})
		return
	}
	for i := range candidates {
		sum, ok := summary[candidates[i].ID]
		if !ok {
			continue
		}
		candidates[i].Usage += sum.Count
		if sum.LastAccepted.After(candidates[i].LastUsed) {
			candidates[i].LastUsed = sum.LastAccepted
		}
	}
}

// dedupe keeps the first suggestion for each id.
func dedupe(in []domain.CodeSuggestion) []domain.CodeSuggestion {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s.ID]; ok {
			continue
		}
		seen[s.ID] = struct{}{}
		out = append(out, s)
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
