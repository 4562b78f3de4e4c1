package extract

import "regexp"

var (
	jsImports = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^\s*import\s+(?:[\w*${}\s,]+\s+from\s+)?['"]([^'"]+)['"]`),
		regexp.MustCompile(`\brequire\(\s*['"]([^'"]+)['"]\s*\)`),
	}
	jsVariables = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:const|let|var)\s+([A-Za-z_$][\w$]*)`),
	}
	jsFunctions = []*regexp.Regexp{
		regexp.MustCompile(`\bfunction\s*\*?\s*([A-Za-z_$][\w$]*)\s*\(`),
		regexp.MustCompile(`\b(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?(?:function\b|\([^)]*\)\s*=>|[A-Za-z_$][\w$]*\s*=>)`),
	}
	jsClasses = []*regexp.Regexp{
		regexp.MustCompile(`\bclass\s+([A-Za-z_$][\w$]*)`),
	}
	jsBinding = regexp.MustCompile(`\b(const|let|var)\b`)
)

func init() {
	profiles["javascript"] = &Profile{
		Name:       "javascript",
		Extensions: []string{".js", ".jsx", ".mjs", ".cjs"},
		Imports:    jsImports,
		Variables:  jsVariables,
		Functions:  jsFunctions,
		Classes:    jsClasses,
		Binding:    jsBinding,
	}

	profiles["typescript"] = &Profile{
		Name:       "typescript",
		Extensions: []string{".ts", ".tsx", ".mts", ".cts"},
		Imports:    jsImports,
		Variables:  jsVariables,
		Functions:  jsFunctions,
		Classes: append([]*regexp.Regexp{
			regexp.MustCompile(`\binterface\s+([A-Za-z_$][\w$]*)`),
		}, jsClasses...),
		Binding: jsBinding,
	}
}
