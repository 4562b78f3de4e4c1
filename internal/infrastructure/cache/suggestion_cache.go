package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/ports"
)

// SuggestionCache stores ranked suggestion lists keyed by context signature.
// Entries are evicted least-recently-used once maxEntries is reached.
type SuggestionCache struct {
	mu         sync.Mutex
	entries    *lru.Cache[string, []domain.CodeSuggestion]
	maxEntries int
	total      int
}

// NewSuggestionCache returns a cache holding at most maxEntries lists.
// Non-positive values use domain.DefaultMaxCacheEntries.
func NewSuggestionCache(maxEntries int) *SuggestionCache {
	if maxEntries <= 0 {
		maxEntries = domain.DefaultMaxCacheEntries
	}
	c := &SuggestionCache{maxEntries: maxEntries}
	// lru.NewWithEvict only fails on a non-positive size.
	entries, _ := lru.NewWithEvict[string, []domain.CodeSuggestion](maxEntries, c.onEvict)
	c.entries = entries
	return c
}

// Get returns the stored list itself, not a copy.
func (c *SuggestionCache) Get(signature string) ([]domain.CodeSuggestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Get(signature)
}

// Put stores suggestions under signature, replacing any previous list.
func (c *SuggestionCache) Put(signature string, suggestions []domain.CodeSuggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.entries.Peek(signature); ok {
		c.total -= len(old)
	}
	c.entries.Add(signature, suggestions)
	c.total += len(suggestions)
}

// Clear removes all entries.
func (c *SuggestionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
	c.total = 0
}

// Len returns the number of cached lists.
func (c *SuggestionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// TotalSuggestions returns the number of suggestions across all lists.
func (c *SuggestionCache) TotalSuggestions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// MaxEntries exposes the configured bound.
func (c *SuggestionCache) MaxEntries() int {
	return c.maxEntries
}

// signatures lists cached keys from oldest to newest.
func (c *SuggestionCache) signatures() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Keys()
}

// onEvict runs under c.mu, called from Add or Purge.
func (c *SuggestionCache) onEvict(_ string, suggestions []domain.CodeSuggestion) {
	c.total -= len(suggestions)
}

var _ ports.SuggestionCache = (*SuggestionCache)(nil)
