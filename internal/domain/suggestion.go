package domain

import "time"

// Category groups suggestions for display and filtering.
type Category string

const (
	CategorySnippet      Category = "snippet"
	CategoryCompletion   Category = "completion"
	CategoryOptimization Category = "optimization"
	CategoryBestPractice Category = "best-practice"
)

// Complexity is a suggestion's self-declared difficulty tier.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityMedium   Complexity = "medium"
	ComplexityAdvanced Complexity = "advanced"
)

// CodeSuggestion is a single candidate code insertion. Suggestions are values:
// providers emit them and nothing downstream mutates them.
type CodeSuggestion struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Explanation string     `json:"explanation"`
	Confidence  float64    `json:"confidence"`
	Category    Category   `json:"category"`
	Language    string     `json:"language"`
	Tags        []string   `json:"tags"`
	Usage       int        `json:"usage"`
	LastUsed    time.Time  `json:"last_used"`
	Complexity  Complexity `json:"complexity"`
}

// HasTag reports whether the suggestion carries tag.
func (s CodeSuggestion) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// EngineStats is read-only engine introspection. Capacities are zero when
// the backing store does not report a bound.
type EngineStats struct {
	TotalSuggestions int `json:"total_suggestions"`
	CacheSize        int `json:"cache_size"`
	CacheCapacity    int `json:"cache_capacity,omitempty"`
	HistorySize      int `json:"history_size"`
	HistoryCapacity  int `json:"history_capacity,omitempty"`
}
