package suggest

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/doeshing/codesuggest/internal/domain"
)

// Score weights.
const (
	confidenceWeight = 0.4
	recencyBonus     = 0.2
	usageBonusCap    = 0.2
	relevanceBonus   = 0.3
	complexityBonus  = 0.1
	maxScore         = 1.0
)

// scored pairs a candidate with its transient rank score. Scores never leave
// the ranker.
type scored struct {
	suggestion domain.CodeSuggestion
	score      float64
}

// Ranker orders candidate suggestions for a context.
type Ranker struct {
	clock         func() time.Time
	recencyWindow time.Duration
	maxResults    int
}

// NewRanker builds a ranker. Zero values fall back to the engine defaults.
func NewRanker(clock func() time.Time, recencyWindow time.Duration, maxResults int) *Ranker {
	if clock == nil {
		clock = time.Now
	}
	if recencyWindow <= 0 {
		recencyWindow = domain.DefaultRecencyWindow
	}
	if maxResults <= 0 {
		maxResults = domain.DefaultMaxResults
	}
	return &Ranker{clock: clock, recencyWindow: recencyWindow, maxResults: maxResults}
}

// Rank scores every candidate, sorts by descending score (ties keep their
// input order) and returns at most maxResults bare suggestions.
func (r *Ranker) Rank(candidates []domain.CodeSuggestion, ctx domain.CodeContext) []domain.CodeSuggestion {
	ranked := r.scoreAll(candidates, ctx)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > r.maxResults {
		ranked = ranked[:r.maxResults]
	}
	out := make([]domain.CodeSuggestion, len(ranked))
	for i, item := range ranked {
		out[i] = item.suggestion
	}
	return out
}

func (r *Ranker) scoreAll(candidates []domain.CodeSuggestion, ctx domain.CodeContext) []scored {
	now := r.clock()
	level := contextComplexity(ctx)
	lineWords := words(ctx.CurrentLine)
	out := make([]scored, len(candidates))
	for i, s := range candidates {
		out[i] = scored{suggestion: s, score: r.score(s, now, level, lineWords)}
	}
	return out
}

func (r *Ranker) score(s domain.CodeSuggestion, now time.Time, level float64, lineWords map[string]struct{}) float64 {
	score := confidenceWeight * clampUnit(s.Confidence)
	if !s.LastUsed.IsZero() && now.Sub(s.LastUsed) < r.recencyWindow {
		score += recencyBonus
	}
	if s.Usage > 0 {
		score += minFloat(float64(s.Usage)/100, usageBonusCap)
	}
	if sharesWord(lineWords, s.Code) {
		score += relevanceBonus
	}
	if appropriate(s.Complexity, level) {
		score += complexityBonus
	}
	return minFloat(score, maxScore)
}

// contextComplexity estimates how involved the surrounding code is, in [0,1].
func contextComplexity(ctx domain.CodeContext) float64 {
	level := 0.0
	switch ctx.Scope {
	case domain.ScopeFunction:
		level += 0.2
	case domain.ScopeClass:
		level += 0.3
	case domain.ScopeLoop:
		level += 0.2
	case domain.ScopeConditional:
		level += 0.1
	}
	if len(ctx.Functions) > 3 {
		level += 0.2
	}
	if len(ctx.Classes) > 1 {
		level += 0.2
	}
	if len(ctx.Variables) > 5 {
		level += 0.1
	}
	return minFloat(level, 1.0)
}

func appropriate(c domain.Complexity, level float64) bool {
	switch c {
	case domain.ComplexityMedium:
		// tolerate rounding from summing tenths
		return level >= 0.3-1e-9
	case domain.ComplexityAdvanced:
		return level >= 0.7-1e-9
	default:
		return true
	}
}

// words tokenizes on whitespace, keeping lowercase tokens longer than two runes.
func words(text string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(w) > 2 {
			out[w] = struct{}{}
		}
	}
	return out
}

func sharesWord(lineWords map[string]struct{}, code string) bool {
	if len(lineWords) == 0 {
		return false
	}
	for w := range words(code) {
		if _, ok := lineWords[w]; ok {
			return true
		}
	}
	return false
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	return minFloat(v, 1)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
