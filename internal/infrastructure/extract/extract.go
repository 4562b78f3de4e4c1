// Package extract provides best-effort, regex-based symbol extraction per
// language.
//
// Nothing here parses code. Patterns recognise common declaration shapes and
// will miss or misreport declarations that span lines, live inside strings,
// or use unusual syntax. Callers must treat results as hints, never as
// semantic facts about the program.
package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Symbols holds declarations found in a buffer, sorted and de-duplicated.
type Symbols struct {
	Imports   []string
	Variables []string
	Functions []string
	Classes   []string
}

// Profile holds the extraction patterns for one language. Each pattern's
// first capture group is the extracted name.
type Profile struct {
	Name       string
	Extensions []string
	Imports    []*regexp.Regexp
	Variables  []*regexp.Regexp
	Functions  []*regexp.Regexp
	Classes    []*regexp.Regexp

	// Binding matches text before the cursor that introduces a variable.
	Binding *regexp.Regexp
}

// profiles maps language names to their patterns.
// Populated by init() functions in per-language files and read-only afterwards.
var profiles = map[string]*Profile{}

// genericBinding is used for languages without a profile.
var genericBinding = regexp.MustCompile(`\b(const|let|var)\b`)

// ForLanguage returns the profile for language. Unknown languages get an
// empty profile, so extraction yields nothing.
func ForLanguage(language string) *Profile {
	if p, ok := profiles[strings.ToLower(language)]; ok {
		return p
	}
	return &Profile{Name: strings.ToLower(language), Binding: genericBinding}
}

// Languages lists languages with a registered profile.
func Languages() []string {
	out := make([]string, 0, len(profiles))
	for name := range profiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Extract runs every pattern of the profile over content.
func (p *Profile) Extract(content string) Symbols {
	if p == nil || content == "" {
		return Symbols{}
	}
	return Symbols{
		Imports:   collect(p.Imports, content),
		Variables: collect(p.Variables, content),
		Functions: collect(p.Functions, content),
		Classes:   collect(p.Classes, content),
	}
}

// IntroducesBinding reports whether text (usually the line up to the cursor)
// starts a variable declaration.
func (p *Profile) IntroducesBinding(text string) bool {
	re := genericBinding
	if p != nil && p.Binding != nil {
		re = p.Binding
	}
	return re.MatchString(text)
}

func collect(patterns []*regexp.Regexp, content string) []string {
	seen := make(map[string]struct{})
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			if len(m) < 2 || m[1] == "" {
				continue
			}
			seen[m[1]] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LanguageForExtension maps a file extension (with or without the dot) to
// the profile claiming it.
func LanguageForExtension(ext string) (string, bool) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, name := range Languages() {
		for _, candidate := range profiles[name].Extensions {
			if candidate == ext {
				return name, true
			}
		}
	}
	return "", false
}
