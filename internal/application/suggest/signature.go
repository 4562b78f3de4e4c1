package suggest

import (
	"strings"

	"github.com/doeshing/codesuggest/internal/domain"
)

// Signature keys the suggestion cache: language, scope, intent and the
// first runes of the current line.
func Signature(ctx domain.CodeContext) string {
	prefix := []rune(ctx.CurrentLine)
	if len(prefix) > domain.SignaturePrefixLength {
		prefix = prefix[:domain.SignaturePrefixLength]
	}
	return strings.Join([]string{
		normalize(ctx.Language),
		string(ctx.Scope),
		string(ctx.Intent),
		string(prefix),
	}, "|")
}
