package domain

import "time"

// Scope is the lexical construct enclosing the cursor, inferred heuristically.
type Scope string

const (
	ScopeGlobal      Scope = "global"
	ScopeFunction    Scope = "function"
	ScopeClass       Scope = "class"
	ScopeLoop        Scope = "loop"
	ScopeConditional Scope = "conditional"
	ScopeTryCatch    Scope = "try-catch"
)

// Intent is the inferred authoring goal of the current line.
type Intent string

const (
	IntentFunction  Intent = "function"
	IntentLoop      Intent = "loop"
	IntentCondition Intent = "condition"
	IntentVariable  Intent = "variable"
	IntentClass     Intent = "class"
	IntentImport    Intent = "import"
	IntentComment   Intent = "comment"
	IntentUnknown   Intent = "unknown"
)

// EditorState is the raw editing state handed over by the editor shell.
type EditorState struct {
	Language       string
	CurrentLine    string
	PreviousLines  []string
	NextLines      []string
	CursorPosition int
	FileContent    string
}

// CodeContext is a structured snapshot of the editing state. A new value is
// built on every analysis call and must not be modified afterwards.
type CodeContext struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Language       string   `json:"language"`
	CurrentLine    string   `json:"current_line"`
	PreviousLines  []string `json:"previous_lines"`
	NextLines      []string `json:"next_lines"`
	CursorPosition int      `json:"cursor_position"`
	FileContent    string   `json:"-"`

	Imports   []string `json:"imports"`
	Variables []string `json:"variables"`
	Functions []string `json:"functions"`
	Classes   []string `json:"classes"`

	Scope  Scope  `json:"scope"`
	Intent Intent `json:"intent"`
}

// SameShape reports whether two contexts share language, scope and intent.
func (c CodeContext) SameShape(other CodeContext) bool {
	return c.Language == other.Language && c.Scope == other.Scope && c.Intent == other.Intent
}

// Window limits for CodeContext.PreviousLines and CodeContext.NextLines.
const (
	MaxPreviousLines = 5
	MaxNextLines     = 3
)

// CollectRequest locates a cursor inside a buffer.
type CollectRequest struct {
	// Path is the buffer's file path; its extension routes the language.
	Path string
	// Content overrides reading Path from disk when non-nil.
	Content *string
	// Line is 1-based.
	Line int
	// Column is the 0-based rune offset of the cursor inside the line.
	// A negative value places the cursor at the end of the line.
	Column int
	// Language overrides extension-based routing.
	Language string
}
