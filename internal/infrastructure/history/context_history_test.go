package history

import (
	"fmt"
	"testing"

	"github.com/doeshing/codesuggest/internal/domain"
)

func TestContextHistoryEvictsOldest(t *testing.T) {
	h := NewContextHistory(10)
	for i := 0; i < 11; i++ {
		h.Append(domain.CodeContext{ID: fmt.Sprintf("ctx-%d", i)})
	}
	if h.Len() != 10 {
		t.Fatalf("expected 10 entries, got %d", h.Len())
	}
	entries := h.Entries()
	if entries[0].ID != "ctx-10" {
		t.Fatalf("expected most recent first, got %s", entries[0].ID)
	}
	if entries[len(entries)-1].ID != "ctx-1" {
		t.Fatalf("expected ctx-0 evicted, oldest is %s", entries[len(entries)-1].ID)
	}
	for _, entry := range entries {
		if entry.ID == "ctx-0" {
			t.Fatalf("ctx-0 should have been evicted")
		}
	}
}

func TestContextHistoryEntriesIsCopy(t *testing.T) {
	h := NewContextHistory(3)
	h.Append(domain.CodeContext{ID: "a"})
	entries := h.Entries()
	entries[0].ID = "mutated"
	if got := h.Entries()[0].ID; got != "a" {
		t.Fatalf("history mutated through copy: %s", got)
	}
}

func TestContextHistoryDefaultCapacity(t *testing.T) {
	if got := NewContextHistory(0).Capacity(); got != domain.DefaultHistorySize {
		t.Fatalf("expected default capacity, got %d", got)
	}
}
