package suggest

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/infrastructure/extract"
)

// Scope markers, checked in precedence order.
var scopeMarkers = []struct {
	scope   domain.Scope
	pattern *regexp.Regexp
}{
	{domain.ScopeClass, regexp.MustCompile(`\bclass\b`)},
	{domain.ScopeFunction, regexp.MustCompile(`\bfunction\b|\bdef\b|=>|\bfunc\b`)},
	{domain.ScopeLoop, regexp.MustCompile(`\b(for|while)\b|\.forEach\(`)},
	{domain.ScopeConditional, regexp.MustCompile(`\b(if|else|elif|switch)\b`)},
	{domain.ScopeTryCatch, regexp.MustCompile(`\b(try|catch|except|finally)\b`)},
}

// Intent markers matched against the current line, in precedence order.
// Comment and variable intents are handled separately.
var (
	functionIntent  = regexp.MustCompile(`\bfunction\b|\bdef\b|=>|\bfunc\b`)
	loopIntent      = regexp.MustCompile(`\b(for|while)\b|\.forEach\(`)
	conditionIntent = regexp.MustCompile(`\b(if|else|elif|switch)\b`)
	classIntent     = regexp.MustCompile(`\bclass\b`)
	importIntent    = regexp.MustCompile(`^\s*(import|from)\b|\brequire\s*\(`)
)

var commentPrefixes = []string{"//", "#", "/*", "*"}

// Analyzer turns raw editor state into a CodeContext. It never fails:
// oversized windows are truncated and out-of-range cursors are clamped.
type Analyzer struct {
	clock func() time.Time
	newID func() string
}

// NewAnalyzer builds an analyzer. Nil arguments default to time.Now and
// random UUIDs.
func NewAnalyzer(clock func() time.Time, newID func() string) *Analyzer {
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &Analyzer{clock: clock, newID: newID}
}

// Build classifies the editing state.
func (a *Analyzer) Build(state domain.EditorState) domain.CodeContext {
	language := normalize(state.Language)
	runes := []rune(state.CurrentLine)
	cursor := clamp(state.CursorPosition, 0, len(runes))
	previous := tail(state.PreviousLines, domain.MaxPreviousLines)
	next := head(state.NextLines, domain.MaxNextLines)

	profile := extract.ForLanguage(language)
	symbols := profile.Extract(state.FileContent)

	return domain.CodeContext{
		ID:             a.newID(),
		CreatedAt:      a.clock(),
		Language:       language,
		CurrentLine:    state.CurrentLine,
		PreviousLines:  previous,
		NextLines:      next,
		CursorPosition: cursor,
		FileContent:    state.FileContent,
		Imports:        symbols.Imports,
		Variables:      symbols.Variables,
		Functions:      symbols.Functions,
		Classes:        symbols.Classes,
		Scope:          classifyScope(previous, state.CurrentLine),
		Intent:         classifyIntent(profile, state.CurrentLine, string(runes[:cursor])),
	}
}

func classifyScope(previous []string, current string) domain.Scope {
	window := strings.Join(append(append([]string(nil), previous...), current), "\n")
	for _, marker := range scopeMarkers {
		if marker.pattern.MatchString(window) {
			return marker.scope
		}
	}
	return domain.ScopeGlobal
}

func classifyIntent(profile *extract.Profile, line, beforeCursor string) domain.Intent {
	switch {
	case functionIntent.MatchString(line):
		return domain.IntentFunction
	case loopIntent.MatchString(line):
		return domain.IntentLoop
	case conditionIntent.MatchString(line):
		return domain.IntentCondition
	case classIntent.MatchString(line):
		return domain.IntentClass
	case importIntent.MatchString(line):
		return domain.IntentImport
	case isComment(line):
		return domain.IntentComment
	case profile.IntroducesBinding(beforeCursor):
		return domain.IntentVariable
	}
	return domain.IntentUnknown
}

func isComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func tail(lines []string, n int) []string {
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return append([]string(nil), lines...)
}

func head(lines []string, n int) []string {
	if len(lines) > n {
		lines = lines[:n]
	}
	return append([]string(nil), lines...)
}
