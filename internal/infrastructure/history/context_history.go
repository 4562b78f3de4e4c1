package history

import (
	"sync"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/ports"
)

// ContextHistory keeps the most recent analyzed contexts in memory.
// When full, appending drops the oldest entry.
type ContextHistory struct {
	mu       sync.Mutex
	entries  []domain.CodeContext
	capacity int
}

// NewContextHistory creates a history holding at most capacity contexts.
// Non-positive capacities use domain.DefaultHistorySize.
func NewContextHistory(capacity int) *ContextHistory {
	if capacity <= 0 {
		capacity = domain.DefaultHistorySize
	}
	return &ContextHistory{
		entries:  make([]domain.CodeContext, 0, capacity),
		capacity: capacity,
	}
}

// Append implements ports.ContextHistory.
func (h *ContextHistory) Append(ctx domain.CodeContext) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, ctx)
}

// Entries returns a copy of the history, most recent first.
func (h *ContextHistory) Entries() []domain.CodeContext {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]domain.CodeContext, len(h.entries))
	for i, entry := range h.entries {
		out[len(h.entries)-1-i] = entry
	}
	return out
}

// Len returns the number of stored contexts.
func (h *ContextHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Capacity returns the configured bound.
func (h *ContextHistory) Capacity() int {
	return h.capacity
}

var _ ports.ContextHistory = (*ContextHistory)(nil)
