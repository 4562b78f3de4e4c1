package providers

import (
	"time"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/infrastructure/practices"
	"github.com/doeshing/codesuggest/internal/ports"
)

// pythonProvider serves indentation-based Python idioms: docstrings,
// f-strings, context managers and snake_case names.
type pythonProvider struct {
	base
}

// NewPython builds the Python provider.
func NewPython(rules practices.RuleSet, clock func() time.Time) ports.LanguageProvider {
	return &pythonProvider{
		base: newBase("python", []string{".py", ".pyw", ".pyi"}, rules, clock),
	}
}

func (p *pythonProvider) AnalyzeContext(ctx domain.CodeContext) []domain.CodeSuggestion {
	return p.react(ctx.CurrentLine, pyTriggers)
}

func (p *pythonProvider) GenerateSuggestions(ctx domain.CodeContext) []domain.CodeSuggestion {
	return p.generate(pyCatalog, ctx)
}

var pyTriggers = []trigger{
	{contains: "import ", template: template{
		id:          "specific-import",
		code:        "from module import specific_name",
		explanation: "Import the specific names you need instead of the whole module.",
		confidence:  0.8,
		category:    domain.CategoryBestPractice,
		tags:        []string{"import"},
		usage:       40,
		age:         2 * day,
	}},
	{contains: "print(", template: template{
		id:          "f-string",
		code:        `print(f"{value=}")`,
		explanation: "Use an f-string to format values in place.",
		confidence:  0.75,
		category:    domain.CategoryCompletion,
		tags:        []string{"f-string", "formatting"},
		usage:       55,
		age:         day,
	}},
	{contains: "open(", template: template{
		id:          "with-open",
		code:        "with open(path, encoding=\"utf-8\") as handle:\n    content = handle.read()",
		explanation: "Open files in a context manager so they are always closed.",
		confidence:  0.85,
		category:    domain.CategoryBestPractice,
		tags:        []string{"files", "context-manager"},
		usage:       45,
		age:         3 * day,
		complexity:  domain.ComplexityMedium,
	}},
	{contains: "except:", template: template{
		id:          "typed-except",
		code:        "except Exception as exc:",
		explanation: "Name the exception type and bind it for logging.",
		confidence:  0.85,
		category:    domain.CategoryBestPractice,
		tags:        []string{"exceptions"},
		usage:       35,
		age:         4 * day,
	}},
	{contains: "def ", template: template{
		id:          "docstring",
		code:        `    """Describe what the function does."""`,
		explanation: "Start the function body with a docstring.",
		confidence:  0.7,
		category:    domain.CategoryCompletion,
		tags:        []string{"documentation", "docstring"},
		usage:       30,
		age:         5 * day,
	}},
}

var pyCatalog = catalog{
	byScope: map[domain.Scope][]template{
		domain.ScopeFunction: {
			{
				id:          "early-return",
				code:        "if not value:\n    return None",
				explanation: "Guard clause: return early on empty input.",
				confidence:  0.8,
				tags:        []string{"control-flow", "guard"},
				usage:       40,
				age:         2 * day,
			},
			{
				id:          "return-value",
				code:        "return result",
				explanation: "Return the computed result.",
				confidence:  0.75,
				category:    domain.CategoryCompletion,
				tags:        []string{"return"},
				usage:       60,
				age:         day,
			},
		},
		domain.ScopeClass: {
			{
				id:          "init",
				code:        "def __init__(self, value):\n    self.value = value",
				explanation: "Initialize instance attributes in __init__.",
				confidence:  0.9,
				tags:        []string{"class", "constructor"},
				usage:       65,
				age:         2 * day,
				complexity:  domain.ComplexityMedium,
			},
			{
				id:          "method",
				code:        "def method(self):\n    return self.value",
				explanation: "Add an instance method.",
				confidence:  0.8,
				tags:        []string{"class", "method"},
				usage:       50,
				age:         2 * day,
			},
			{
				id:          "property",
				code:        "@property\ndef value(self):\n    return self._value",
				explanation: "Expose a read-only attribute with @property.",
				confidence:  0.75,
				tags:        []string{"class", "property"},
				usage:       30,
				age:         9 * day,
				complexity:  domain.ComplexityMedium,
			},
		},
		domain.ScopeLoop: {
			{
				id:          "break",
				code:        "break",
				explanation: "Exit the loop early.",
				confidence:  0.7,
				category:    domain.CategoryCompletion,
				tags:        []string{"loop", "control-flow"},
				usage:       30,
				age:         4 * day,
			},
			{
				id:          "continue",
				code:        "continue",
				explanation: "Skip to the next iteration.",
				confidence:  0.7,
				category:    domain.CategoryCompletion,
				tags:        []string{"loop", "control-flow"},
				usage:       25,
				age:         4 * day,
			},
		},
		domain.ScopeConditional: {
			{
				id:          "conditional-expression",
				code:        "value = when_true if condition else when_false",
				explanation: "Choose between two values inline.",
				confidence:  0.8,
				tags:        []string{"conditional", "ternary"},
				usage:       45,
				age:         2 * day,
			},
			{
				id:          "or-default",
				code:        "value = candidate or default",
				explanation: "Fall back to a default when the candidate is falsy.",
				confidence:  0.75,
				tags:        []string{"conditional", "default"},
				usage:       40,
				age:         3 * day,
			},
		},
		domain.ScopeTryCatch: {
			{
				id:          "except-chain",
				code:        "except ValueError as exc:\n    raise RuntimeError(\"operation failed\") from exc",
				explanation: "Translate the error while keeping the original cause.",
				confidence:  0.8,
				tags:        []string{"exceptions", "error-handling"},
				usage:       30,
				age:         3 * day,
				complexity:  domain.ComplexityMedium,
			},
			{
				id:          "finally",
				code:        "finally:\n    cleanup()",
				explanation: "Release resources whether or not an error occurred.",
				confidence:  0.6,
				tags:        []string{"exceptions", "cleanup"},
				usage:       15,
				age:         12 * day,
			},
		},
	},
	byIntent: map[domain.Intent][]template{
		domain.IntentFunction: {
			{
				id:          "def",
				code:        "def function_name(param):\n    \"\"\"Describe the function.\"\"\"\n    pass",
				explanation: "Define a function with a docstring.",
				confidence:  0.9,
				tags:        []string{"function", "def"},
				usage:       90,
				age:         day,
			},
			{
				id:          "typed-def",
				code:        "def function_name(param: str) -> str:\n    \"\"\"Describe the function.\"\"\"\n    return param",
				explanation: "Define a function with type hints.",
				confidence:  0.85,
				tags:        []string{"function", "type-hints"},
				usage:       60,
				age:         2 * day,
				complexity:  domain.ComplexityMedium,
			},
			{
				id:          "async-def",
				code:        "async def function_name(param):\n    result = await operation(param)\n    return result",
				explanation: "Define a coroutine that awaits its work.",
				confidence:  0.8,
				tags:        []string{"function", "async"},
				usage:       50,
				age:         4 * day,
				complexity:  domain.ComplexityMedium,
			},
		},
		domain.IntentLoop: {
			{
				id:          "for-range",
				code:        "for i in range(n):\n    pass",
				explanation: "Counted loop over a range.",
				confidence:  0.9,
				tags:        []string{"loop", "range"},
				usage:       90,
				age:         day,
			},
			{
				id:          "for-enumerate",
				code:        "for index, item in enumerate(items):\n    pass",
				explanation: "Iterate with both index and value.",
				confidence:  0.85,
				tags:        []string{"loop", "enumerate"},
				usage:       70,
				age:         day,
			},
			{
				id:          "for-items",
				code:        "for key, value in mapping.items():\n    pass",
				explanation: "Iterate over the key/value pairs of a dict.",
				confidence:  0.8,
				tags:        []string{"loop", "dict"},
				usage:       60,
				age:         2 * day,
			},
			{
				id:          "while",
				code:        "while condition:\n    pass",
				explanation: "Loop while a condition holds.",
				confidence:  0.75,
				tags:        []string{"loop", "while"},
				usage:       40,
				age:         30 * day,
			},
			{
				id:          "list-comprehension",
				code:        "result = [transform(item) for item in items]",
				explanation: "Build a list in one expression instead of an append loop.",
				confidence:  0.8,
				category:    domain.CategoryOptimization,
				tags:        []string{"loop", "comprehension"},
				usage:       55,
				age:         3 * day,
				complexity:  domain.ComplexityMedium,
			},
		},
		domain.IntentCondition: {
			{
				id:          "if",
				code:        "if condition:\n    pass",
				explanation: "Run a block when the condition holds.",
				confidence:  0.9,
				tags:        []string{"conditional", "if"},
				usage:       90,
				age:         day,
			},
			{
				id:          "if-else",
				code:        "if condition:\n    pass\nelse:\n    pass",
				explanation: "Branch on a condition.",
				confidence:  0.85,
				tags:        []string{"conditional", "if-else"},
				usage:       75,
				age:         day,
			},
			{
				id:          "if-elif-else",
				code:        "if first:\n    pass\nelif second:\n    pass\nelse:\n    pass",
				explanation: "Handle several mutually exclusive cases.",
				confidence:  0.75,
				tags:        []string{"conditional", "multi-branch"},
				usage:       40,
				age:         10 * day,
				complexity:  domain.ComplexityMedium,
			},
			{
				id:          "match",
				code:        "match value:\n    case pattern:\n        pass\n    case _:\n        pass",
				explanation: "Structural pattern matching (Python 3.10+).",
				confidence:  0.65,
				tags:        []string{"conditional", "match"},
				usage:       15,
				age:         20 * day,
				complexity:  domain.ComplexityAdvanced,
			},
		},
		domain.IntentVariable: {
			{
				id:          "assignment",
				code:        "variable_name = value",
				explanation: "Bind a value to a snake_case name.",
				confidence:  0.9,
				category:    domain.CategoryCompletion,
				tags:        []string{"variable"},
				usage:       90,
				age:         day,
			},
			{
				id:          "typed-assignment",
				code:        "count: int = 0",
				explanation: "Annotate the variable with a type hint.",
				confidence:  0.8,
				category:    domain.CategoryCompletion,
				tags:        []string{"variable", "type-hints"},
				usage:       45,
				age:         3 * day,
				complexity:  domain.ComplexityMedium,
			},
			{
				id:          "unpacking",
				code:        "first, second = values",
				explanation: "Unpack a sequence into several names.",
				confidence:  0.75,
				tags:        []string{"variable", "unpacking"},
				usage:       35,
				age:         6 * day,
				complexity:  domain.ComplexityMedium,
			},
		},
		domain.IntentClass: {
			{
				id:          "class",
				code:        "class ClassName:\n    def __init__(self):\n        pass",
				explanation: "Define a class with an initializer.",
				confidence:  0.85,
				tags:        []string{"class"},
				usage:       60,
				age:         2 * day,
				complexity:  domain.ComplexityMedium,
			},
			{
				id:          "dataclass",
				code:        "@dataclass\nclass ClassName:\n    field: str",
				explanation: "Let dataclasses generate __init__ and __repr__.",
				confidence:  0.8,
				tags:        []string{"class", "dataclass"},
				usage:       45,
				age:         3 * day,
				complexity:  domain.ComplexityMedium,
			},
		},
		domain.IntentImport: {
			{
				id:          "from-import",
				code:        "from module import name",
				explanation: "Import a specific name from a module.",
				confidence:  0.85,
				tags:        []string{"import"},
				usage:       80,
				age:         day,
			},
			{
				id:          "import",
				code:        "import module",
				explanation: "Import a whole module.",
				confidence:  0.8,
				tags:        []string{"import"},
				usage:       70,
				age:         day,
			},
		},
		domain.IntentComment: {
			{
				id:          "module-docstring",
				code:        "\"\"\"Summary line.\n\nLonger description.\n\"\"\"",
				explanation: "Document the module or class with a docstring.",
				confidence:  0.75,
				tags:        []string{"documentation", "docstring"},
				usage:       35,
				age:         4 * day,
			},
		},
	},
}
