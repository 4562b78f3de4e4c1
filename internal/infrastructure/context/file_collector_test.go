package contextcollector

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/codesuggest/internal/domain"
)

func TestFileCollectorSlicesWindow(t *testing.T) {
	var lines []string
	for _, l := range "abcdefghij" {
		lines = append(lines, string(l))
	}
	path := filepath.Join(t.TempDir(), "buffer.py")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\r\n")), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := NewFileCollector(nil).Collect(context.Background(), domain.CollectRequest{Path: path, Line: 7, Column: -1})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	want := domain.EditorState{
		Language:       "python",
		CurrentLine:    "g",
		PreviousLines:  []string{"b", "c", "d", "e", "f"},
		NextLines:      []string{"h", "i", "j"},
		CursorPosition: 1,
		FileContent:    strings.Join(lines, "\n"),
	}
	if diff := cmp.Diff(want, state); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestFileCollectorEdges(t *testing.T) {
	content := "const a = 1;\nconst b = "
	tests := []struct {
		name     string
		req      domain.CollectRequest
		wantErr  bool
		language string
		previous int
		next     int
	}{
		{name: "first line", req: domain.CollectRequest{Path: "x.ts", Content: &content, Line: 1}, language: "typescript", previous: 0, next: 1},
		{name: "last line", req: domain.CollectRequest{Path: "x.js", Content: &content, Line: 2}, language: "javascript", previous: 1, next: 0},
		{name: "override language", req: domain.CollectRequest{Path: "x.js", Content: &content, Line: 2, Language: "Python"}, language: "python", previous: 1},
		{name: "unknown extension", req: domain.CollectRequest{Path: "x.rb", Content: &content, Line: 1}, language: "rb", next: 1},
		{name: "line zero", req: domain.CollectRequest{Content: &content, Line: 0}, wantErr: true},
		{name: "past end", req: domain.CollectRequest{Content: &content, Line: 3}, wantErr: true},
		{name: "missing file", req: domain.CollectRequest{Path: filepath.Join(t.TempDir(), "none.js"), Line: 1}, wantErr: true},
	}
	collector := NewFileCollector(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := collector.Collect(context.Background(), tt.req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Collect error: %v", err)
			}
			if state.Language != tt.language || len(state.PreviousLines) != tt.previous || len(state.NextLines) != tt.next {
				t.Fatalf("unexpected state %+v", state)
			}
		})
	}
}

func TestFileCollectorUsesResolver(t *testing.T) {
	content := "x"
	resolve := func(ext string) (string, bool) { return "custom" + ext, true }
	state, err := NewFileCollector(resolve).Collect(context.Background(), domain.CollectRequest{Path: "a.foo", Content: &content, Line: 1})
	if err != nil {
		t.Fatal(err)
	}
	if state.Language != "custom.foo" {
		t.Fatalf("language = %q", state.Language)
	}
}

func TestFileCollectorHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	content := "x"
	if _, err := NewFileCollector(nil).Collect(ctx, domain.CollectRequest{Content: &content, Line: 1}); err == nil {
		t.Fatal("expected context error")
	}
}
