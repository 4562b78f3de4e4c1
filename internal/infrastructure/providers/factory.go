package providers

import (
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/codesuggest/internal/infrastructure/practices"
	"github.com/doeshing/codesuggest/internal/ports"
)

// Factory builds the built-in providers, handing each its rule set.
type Factory struct {
	rules *practices.Catalog
	clock func() time.Time
}

// NewFactory returns a factory. A nil clock means time.Now.
func NewFactory(rules *practices.Catalog, clock func() time.Time) *Factory {
	if clock == nil {
		clock = time.Now
	}
	return &Factory{rules: rules, clock: clock}
}

func (f *Factory) ForLanguage(language string) (ports.LanguageProvider, error) {
	language = normalizeLanguage(language)
	rules := f.rules.ForLanguage(language)

	switch language {
	case "javascript":
		return NewJavaScript(rules, f.clock), nil
	case "typescript":
		return NewTypeScript(rules, f.clock), nil
	case "python":
		return NewPython(rules, f.clock), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", language)
	}
}

func normalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))

	switch language {
	case "js", "node", "jsx":
		return "javascript"
	case "ts", "tsx":
		return "typescript"
	case "py", "python3":
		return "python"
	default:
		return language
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)
