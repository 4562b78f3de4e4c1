package suggest

import (
	"sort"
	"strings"

	"github.com/doeshing/codesuggest/internal/ports"
)

// Registry maps language ids to providers. Registering a provider for a
// language that already has one replaces it.
type Registry struct {
	providers map[string]ports.LanguageProvider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]ports.LanguageProvider)}
}

// Register stores the provider under its lowercase language id.
func (r *Registry) Register(provider ports.LanguageProvider) {
	r.providers[normalize(provider.Language())] = provider
}

// Resolve returns the provider registered for language.
func (r *Registry) Resolve(language string) (ports.LanguageProvider, bool) {
	provider, ok := r.providers[normalize(language)]
	return provider, ok
}

// Languages returns the registered language ids, sorted.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.providers))
	for language := range r.providers {
		out = append(out, language)
	}
	sort.Strings(out)
	return out
}

// ForExtension finds the provider claiming a file extension. The leading dot
// is optional and matching ignores case.
func (r *Registry) ForExtension(ext string) (ports.LanguageProvider, bool) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return nil, false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, language := range r.Languages() {
		provider := r.providers[language]
		for _, candidate := range provider.Extensions() {
			if strings.ToLower(candidate) == ext {
				return provider, true
			}
		}
	}
	return nil, false
}

func normalize(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}
