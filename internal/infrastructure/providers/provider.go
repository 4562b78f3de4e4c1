// Package providers contains the built-in language providers.
//
// Providers serve static template catalogs: every suggestion is precomputed
// and only stamped with a language and timestamp on emission, so the output
// is deterministic for a given context and clock.
package providers

import (
	"strings"
	"time"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/infrastructure/practices"
)

const day = 24 * time.Hour

// template is a catalog entry; build turns it into a suggestion.
type template struct {
	id          string
	code        string
	explanation string
	confidence  float64
	category    domain.Category
	tags        []string
	usage       int
	// age is how long ago the template was last used, relative to the clock.
	age        time.Duration
	complexity domain.Complexity
}

func (t template) build(language string, now time.Time) domain.CodeSuggestion {
	category := t.category
	if category == "" {
		category = domain.CategorySnippet
	}
	complexity := t.complexity
	if complexity == "" {
		complexity = domain.ComplexitySimple
	}
	return domain.CodeSuggestion{
		ID:          language + ":" + t.id,
		Code:        t.code,
		Explanation: t.explanation,
		Confidence:  t.confidence,
		Category:    category,
		Language:    language,
		Tags:        append([]string(nil), t.tags...),
		Usage:       t.usage,
		LastUsed:    now.Add(-t.age),
		Complexity:  complexity,
	}
}

// trigger pairs a literal substring of the current line with a reaction.
type trigger struct {
	contains string
	template template
}

// base carries what every provider shares: identity, clock and rules.
type base struct {
	language   string
	extensions []string
	clock      func() time.Time
	rules      practices.RuleSet
}

func newBase(language string, extensions []string, rules practices.RuleSet, clock func() time.Time) base {
	if clock == nil {
		clock = time.Now
	}
	return base{language: language, extensions: extensions, clock: clock, rules: rules}
}

func (b base) Language() string { return b.language }

func (b base) Extensions() []string {
	return append([]string(nil), b.extensions...)
}

// BestPractices evaluates the language's rule set over the whole buffer.
func (b base) BestPractices(ctx domain.CodeContext) []domain.CodeSuggestion {
	return b.rules.Evaluate(ctx.FileContent, b.clock())
}

func (b base) emit(templates []template) []domain.CodeSuggestion {
	if len(templates) == 0 {
		return nil
	}
	now := b.clock()
	out := make([]domain.CodeSuggestion, 0, len(templates))
	for _, t := range templates {
		out = append(out, t.build(b.language, now))
	}
	return out
}

// react emits the template of every trigger found in line.
func (b base) react(line string, triggers []trigger) []domain.CodeSuggestion {
	var matched []template
	for _, tr := range triggers {
		if strings.Contains(line, tr.contains) {
			matched = append(matched, tr.template)
		}
	}
	return b.emit(matched)
}

// catalog maps scopes and intents to their templates.
type catalog struct {
	byScope  map[domain.Scope][]template
	byIntent map[domain.Intent][]template
}

// generate concatenates the scope templates with the intent templates.
func (b base) generate(c catalog, ctx domain.CodeContext) []domain.CodeSuggestion {
	templates := append([]template(nil), c.byScope[ctx.Scope]...)
	templates = append(templates, c.byIntent[ctx.Intent]...)
	return b.emit(templates)
}
