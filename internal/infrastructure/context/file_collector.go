// Package contextcollector reads editor buffers from disk and slices the
// window around the cursor.
package contextcollector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/infrastructure/extract"
	"github.com/doeshing/codesuggest/internal/ports"
)

// LanguageResolver maps a file extension to a language id.
type LanguageResolver func(ext string) (string, bool)

// FileCollector implements ports.EditorStateCollector for files on disk.
type FileCollector struct {
	resolve LanguageResolver
}

// NewFileCollector builds a collector. A nil resolver routes extensions
// through the extraction profiles.
func NewFileCollector(resolve LanguageResolver) *FileCollector {
	if resolve == nil {
		resolve = extract.LanguageForExtension
	}
	return &FileCollector{resolve: resolve}
}

// Collect reads the buffer and returns the editing state at the requested
// position.
func (c *FileCollector) Collect(ctx context.Context, req domain.CollectRequest) (domain.EditorState, error) {
	if err := ctx.Err(); err != nil {
		return domain.EditorState{}, err
	}

	content, err := c.read(req)
	if err != nil {
		return domain.EditorState{}, err
	}
	lines := strings.Split(content, "\n")
	if req.Line < 1 || req.Line > len(lines) {
		return domain.EditorState{}, fmt.Errorf("line %d out of range (buffer has %d lines)", req.Line, len(lines))
	}

	idx := req.Line - 1
	current := lines[idx]
	column := req.Column
	if column < 0 {
		column = len([]rune(current))
	}

	start := idx - domain.MaxPreviousLines
	if start < 0 {
		start = 0
	}
	end := idx + 1 + domain.MaxNextLines
	if end > len(lines) {
		end = len(lines)
	}

	return domain.EditorState{
		Language:       c.language(req),
		CurrentLine:    current,
		PreviousLines:  append([]string(nil), lines[start:idx]...),
		NextLines:      append([]string(nil), lines[idx+1:end]...),
		CursorPosition: column,
		FileContent:    content,
	}, nil
}

func (c *FileCollector) read(req domain.CollectRequest) (string, error) {
	if req.Content != nil {
		return normalizeNewlines(*req.Content), nil
	}
	if req.Path == "" {
		return "", fmt.Errorf("no buffer path given")
	}
	data, err := os.ReadFile(req.Path)
	if err != nil {
		return "", fmt.Errorf("read buffer: %w", err)
	}
	return normalizeNewlines(string(data)), nil
}

func (c *FileCollector) language(req domain.CollectRequest) string {
	if req.Language != "" {
		return strings.ToLower(req.Language)
	}
	ext := strings.ToLower(filepath.Ext(req.Path))
	if language, ok := c.resolve(ext); ok {
		return language
	}
	return strings.TrimPrefix(ext, ".")
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

var _ ports.EditorStateCollector = (*FileCollector)(nil)
