// Package practices evaluates regex-based best-practice rules against a buffer.
//
// Rules are heuristics: a pattern match means "this looks like the
// anti-pattern", not that the code is semantically wrong.
package practices

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/codesuggest/assets"
	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/pkg/filesystem"
)

// Rule describes a single anti-pattern and the advice attached to it.
type Rule struct {
	ID         string   `yaml:"id"`
	Languages  []string `yaml:"languages"`
	Pattern    string   `yaml:"pattern"`
	Message    string   `yaml:"message"`
	Code       string   `yaml:"code"`
	Confidence float64  `yaml:"confidence"`
	Tags       []string `yaml:"tags"`
	MinLines   int      `yaml:"min_lines"`
	Complexity string   `yaml:"complexity"`
}

// RulesFile is the YAML schema root.
type RulesFile struct {
	Rules []Rule `yaml:"rules"`
}

type compiledRule struct {
	re   *regexp.Regexp
	rule Rule
}

// Catalog holds compiled rules for every language.
type Catalog struct {
	byLanguage map[string][]compiledRule
}

// RuleSet is the slice of a Catalog that applies to one language.
type RuleSet struct {
	language string
	rules    []compiledRule
}

// LoadDefaults compiles the embedded rule set.
func LoadDefaults() (*Catalog, error) {
	return Load("")
}

// Load compiles the embedded rules plus the rules in path, if it exists.
// A missing file is not an error; an unreadable or invalid one is.
func Load(path string) (*Catalog, error) {
	var defaults RulesFile
	if err := yaml.Unmarshal(assets.DefaultPracticesYAML, &defaults); err != nil {
		return nil, fmt.Errorf("parse default rules: %w", err)
	}
	rules := defaults.Rules

	extra, err := loadRulesFile(path)
	if err != nil {
		return nil, err
	}
	rules = append(rules, extra...)

	return Compile(rules)
}

// Compile validates and compiles rules into a Catalog.
func Compile(rules []Rule) (*Catalog, error) {
	catalog := &Catalog{byLanguage: make(map[string][]compiledRule)}
	for _, rule := range rules {
		if rule.ID == "" {
			return nil, errors.New("rule without id")
		}
		if len(rule.Languages) == 0 {
			return nil, fmt.Errorf("rule %s: no languages", rule.ID)
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.ID, err)
		}
		if rule.Confidence < 0 || rule.Confidence > 1 {
			return nil, fmt.Errorf("rule %s: confidence %.2f outside [0,1]", rule.ID, rule.Confidence)
		}
		for _, lang := range rule.Languages {
			lang = strings.ToLower(lang)
			catalog.byLanguage[lang] = append(catalog.byLanguage[lang], compiledRule{re: re, rule: rule})
		}
	}
	return catalog, nil
}

// ForLanguage returns the rules that apply to language.
func (c *Catalog) ForLanguage(language string) RuleSet {
	language = strings.ToLower(language)
	if c == nil {
		return RuleSet{language: language}
	}
	return RuleSet{language: language, rules: c.byLanguage[language]}
}

// Languages lists languages with at least one rule.
func (c *Catalog) Languages() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.byLanguage))
	for lang := range c.byLanguage {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of rules in the set.
func (s RuleSet) Len() int {
	return len(s.rules)
}

// Evaluate returns one best-practice suggestion per rule matching content.
func (s RuleSet) Evaluate(content string, now time.Time) []domain.CodeSuggestion {
	if content == "" || len(s.rules) == 0 {
		return nil
	}
	lines := strings.Count(content, "\n") + 1
	var out []domain.CodeSuggestion
	for _, cr := range s.rules {
		if cr.rule.MinLines > 0 && lines <= cr.rule.MinLines {
			continue
		}
		if !cr.re.MatchString(content) {
			continue
		}
		out = append(out, domain.CodeSuggestion{
			ID:          cr.rule.ID,
			Code:        cr.rule.Code,
			Explanation: cr.rule.Message,
			Confidence:  cr.rule.Confidence,
			Category:    domain.CategoryBestPractice,
			Language:    s.language,
			Tags:        append([]string(nil), cr.rule.Tags...),
			LastUsed:    now,
			Complexity:  parseComplexity(cr.rule.Complexity),
		})
	}
	return out
}

func loadRulesFile(path string) ([]Rule, error) {
	path = filesystem.ExpandPath(path)
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return file.Rules, nil
}

func parseComplexity(value string) domain.Complexity {
	switch strings.ToLower(value) {
	case "medium":
		return domain.ComplexityMedium
	case "advanced":
		return domain.ComplexityAdvanced
	default:
		return domain.ComplexitySimple
	}
}
