package extract

import "regexp"

func init() {
	profiles["python"] = &Profile{
		Name:       "python",
		Extensions: []string{".py", ".pyw", ".pyi"},
		Imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*import\s+([\w.]+)`),
			regexp.MustCompile(`(?m)^[ \t]*from\s+([\w.]+)\s+import\b`),
		},
		Variables: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*([A-Za-z_]\w*)[ \t]*(?::[^=\n]+)?=[^=]`),
		},
		Functions: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*(?:async[ \t]+)?def[ \t]+([A-Za-z_]\w*)`),
		},
		Classes: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*class[ \t]+([A-Za-z_]\w*)`),
		},
		// A bare "name =" or "name: Type =" binding; Python has no declaration keyword.
		Binding: regexp.MustCompile(`^\s*[A-Za-z_]\w*\s*(?::[^=]+)?=([^=]|$)`),
	}
}
