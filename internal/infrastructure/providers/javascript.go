package providers

import (
	"time"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/infrastructure/practices"
	"github.com/doeshing/codesuggest/internal/ports"
)

// javaScriptProvider serves curly-brace JavaScript idioms. The TypeScript
// provider is the same type with typed templates layered on top.
type javaScriptProvider struct {
	base
	catalog  catalog
	triggers []trigger
}

// NewJavaScript builds the JavaScript provider.
func NewJavaScript(rules practices.RuleSet, clock func() time.Time) ports.LanguageProvider {
	return &javaScriptProvider{
		base:     newBase("javascript", []string{".js", ".jsx", ".mjs", ".cjs"}, rules, clock),
		catalog:  jsCatalog,
		triggers: jsTriggers,
	}
}

// NewTypeScript builds the TypeScript provider.
func NewTypeScript(rules practices.RuleSet, clock func() time.Time) ports.LanguageProvider {
	return &javaScriptProvider{
		base:     newBase("typescript", []string{".ts", ".tsx", ".mts", ".cts"}, rules, clock),
		catalog:  mergeCatalogs(jsCatalog, tsExtras),
		triggers: jsTriggers,
	}
}

func (p *javaScriptProvider) AnalyzeContext(ctx domain.CodeContext) []domain.CodeSuggestion {
	return p.react(ctx.CurrentLine, p.triggers)
}

func (p *javaScriptProvider) GenerateSuggestions(ctx domain.CodeContext) []domain.CodeSuggestion {
	return p.generate(p.catalog, ctx)
}

// mergeCatalogs returns a new catalog with extra's templates appended to primary's.
func mergeCatalogs(primary, extra catalog) catalog {
	out := catalog{
		byScope:  make(map[domain.Scope][]template, len(primary.byScope)),
		byIntent: make(map[domain.Intent][]template, len(primary.byIntent)),
	}
	for scope, ts := range primary.byScope {
		out.byScope[scope] = append([]template(nil), ts...)
	}
	for intent, ts := range primary.byIntent {
		out.byIntent[intent] = append([]template(nil), ts...)
	}
	for scope, ts := range extra.byScope {
		out.byScope[scope] = append(out.byScope[scope], ts...)
	}
	for intent, ts := range extra.byIntent {
		out.byIntent[intent] = append(out.byIntent[intent], ts...)
	}
	return out
}

var jsTriggers = []trigger{
	{contains: "async", template: template{
		id:          "await-promise",
		code:        "const result = await asyncOperation();",
		explanation: "Await the promise inside the async function instead of handling it manually.",
		confidence:  0.9,
		category:    domain.CategoryCompletion,
		tags:        []string{"async", "await"},
		usage:       45,
		age:         2 * day,
	}},
	{contains: "fetch(", template: template{
		id: "checked-fetch",
		code: "const response = await fetch(url);\n" +
			"if (!response.ok) {\n" +
			"  throw new Error(`Request failed: ${response.status}`);\n" +
			"}\n" +
			"const data = await response.json();",
		explanation: "Check response.ok before reading the body; fetch only rejects on network errors.",
		confidence:  0.85,
		category:    domain.CategorySnippet,
		tags:        []string{"fetch", "async", "error-handling"},
		usage:       30,
		age:         3 * day,
		complexity:  domain.ComplexityMedium,
	}},
	{contains: "console.log", template: template{
		id:          "labelled-log",
		code:        "console.log('label:', value);",
		explanation: "Label logged values so they are easy to find in the console.",
		confidence:  0.6,
		category:    domain.CategoryCompletion,
		tags:        []string{"debugging"},
		usage:       50,
		age:         day,
	}},
	{contains: ".then(", template: template{
		id:          "then-to-await",
		code:        "const data = await promise;",
		explanation: "Replace the promise chain with await for linear control flow.",
		confidence:  0.75,
		category:    domain.CategoryOptimization,
		tags:        []string{"async", "promises"},
		usage:       25,
		age:         5 * day,
		complexity:  domain.ComplexityMedium,
	}},
}

var jsCatalog = catalog{
	byScope: map[domain.Scope][]template{
		domain.ScopeFunction: {
			{
				id:          "early-return",
				code:        "if (!input) {\n  return null;\n}",
				explanation: "Guard clause: return early when the input is missing.",
				confidence:  0.8,
				tags:        []string{"control-flow", "guard"},
				usage:       40,
				age:         2 * day,
			},
			{
				id:          "return-value",
				code:        "return result;",
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
				id:          "constructor",
				code:        "constructor(options) {\n  this.options = options;\n}",
				explanation: "Initialize instance state in the constructor.",
				confidence:  0.85,
				tags:        []string{"class", "constructor"},
				usage:       55,
				age:         3 * day,
				complexity:  domain.ComplexityMedium,
			},
			{
				id:          "method",
				code:        "methodName(args) {\n  return this;\n}",
				explanation: "Add an instance method.",
				confidence:  0.8,
				tags:        []string{"class", "method"},
				usage:       50,
				age:         2 * day,
			},
			{
				id:          "getter",
				code:        "get value() {\n  return this._value;\n}",
				explanation: "Expose state through a read-only property.",
				confidence:  0.7,
				tags:        []string{"class", "property"},
				usage:       20,
				age:         10 * day,
				complexity:  domain.ComplexityMedium,
			},
		},
		domain.ScopeLoop: {
			{
				id:          "break",
				code:        "break;",
				explanation: "Exit the loop early.",
				confidence:  0.7,
				category:    domain.CategoryCompletion,
				tags:        []string{"loop", "control-flow"},
				usage:       30,
				age:         4 * day,
			},
			{
				id:          "continue",
				code:        "continue;",
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
				id:          "ternary",
				code:        "const value = condition ? whenTrue : whenFalse;",
				explanation: "Choose between two values inline.",
				confidence:  0.8,
				tags:        []string{"conditional", "ternary"},
				usage:       45,
				age:         2 * day,
			},
			{
				id:          "nullish-coalescing",
				code:        "const value = input ?? defaultValue;",
				explanation: "Fall back only when the input is null or undefined.",
				confidence:  0.8,
				tags:        []string{"conditional", "nullish"},
				usage:       40,
				age:         3 * day,
			},
			{
				id:          "optional-chaining",
				code:        "const name = user?.profile?.name;",
				explanation: "Read nested properties without guarding every level.",
				confidence:  0.7,
				tags:        []string{"conditional", "optional-chaining"},
				usage:       35,
				age:         6 * day,
				complexity:  domain.ComplexityMedium,
			},
		},
		domain.ScopeTryCatch: {
			{
				id:          "catch-error",
				code:        "catch (error) {\n  console.error(error);\n  throw error;\n}",
				explanation: "Report the error and rethrow so callers can react.",
				confidence:  0.8,
				tags:        []string{"error-handling"},
				usage:       35,
				age:         3 * day,
			},
			{
				id:          "finally",
				code:        "finally {\n  cleanup();\n}",
				explanation: "Release resources whether or not an error occurred.",
				confidence:  0.6,
				tags:        []string{"error-handling", "cleanup"},
				usage:       15,
				age:         12 * day,
			},
		},
	},
	byIntent: map[domain.Intent][]template{
		domain.IntentFunction: {
			{
				id:          "function-declaration",
				code:        "function name(params) {\n  \n}",
				explanation: "Declare a named function.",
				confidence:  0.9,
				tags:        []string{"function", "declaration"},
				usage:       90,
				age:         day,
			},
			{
				id:          "arrow-function",
				code:        "const name = (params) => {\n  \n};",
				explanation: "Declare an arrow function bound to a constant.",
				confidence:  0.88,
				tags:        []string{"function", "arrow"},
				usage:       85,
				age:         day,
			},
			{
				id:          "async-function",
				code:        "async function name(params) {\n  const result = await operation();\n  return result;\n}",
				explanation: "Declare an async function that awaits its work.",
				confidence:  0.85,
				tags:        []string{"function", "async"},
				usage:       70,
				age:         2 * day,
				complexity:  domain.ComplexityMedium,
			},
		},
		domain.IntentLoop: {
			{
				id:          "for-counted",
				code:        "for (let i = 0; i < array.length; i++) {\n  \n}",
				explanation: "Counted loop over an index.",
				confidence:  0.9,
				tags:        []string{"loop", "for"},
				usage:       85,
				age:         day,
			},
			{
				id:          "for-of",
				code:        "for (const item of items) {\n  \n}",
				explanation: "Iterate over the values of an iterable.",
				confidence:  0.88,
				tags:        []string{"loop", "iterator"},
				usage:       80,
				age:         day,
			},
			{
				id:          "for-each",
				code:        "items.forEach((item) => {\n  \n});",
				explanation: "Run a callback for each element.",
				confidence:  0.8,
				tags:        []string{"loop", "functional"},
				usage:       70,
				age:         2 * day,
			},
			{
				id:          "while",
				code:        "while (condition) {\n  \n}",
				explanation: "Loop while a condition holds.",
				confidence:  0.75,
				tags:        []string{"loop", "while"},
				usage:       40,
				age:         30 * day,
			},
		},
		domain.IntentCondition: {
			{
				id:          "if",
				code:        "if (condition) {\n  \n}",
				explanation: "Run a block when the condition holds.",
				confidence:  0.9,
				tags:        []string{"conditional", "if"},
				usage:       90,
				age:         day,
			},
			{
				id:          "if-else",
				code:        "if (condition) {\n  \n} else {\n  \n}",
				explanation: "Branch on a condition.",
				confidence:  0.85,
				tags:        []string{"conditional", "if-else"},
				usage:       75,
				age:         day,
			},
			{
				id:          "else-if-chain",
				code:        "if (first) {\n  \n} else if (second) {\n  \n} else {\n  \n}",
				explanation: "Handle several mutually exclusive cases.",
				confidence:  0.75,
				tags:        []string{"conditional", "multi-branch"},
				usage:       40,
				age:         10 * day,
				complexity:  domain.ComplexityMedium,
			},
			{
				id:          "switch",
				code:        "switch (value) {\n  case 'a':\n    break;\n  default:\n    break;\n}",
				explanation: "Dispatch on the value of an expression.",
				confidence:  0.7,
				tags:        []string{"conditional", "switch"},
				usage:       30,
				age:         14 * day,
				complexity:  domain.ComplexityMedium,
			},
		},
		domain.IntentVariable: {
			{
				id:          "const-binding",
				code:        "const name = value;",
				explanation: "Bind a value that is never reassigned.",
				confidence:  0.95,
				category:    domain.CategoryCompletion,
				tags:        []string{"variable", "const"},
				usage:       95,
				age:         day,
			},
			{
				id:          "let-binding",
				code:        "let name = value;",
				explanation: "Bind a value that will be reassigned.",
				confidence:  0.85,
				category:    domain.CategoryCompletion,
				tags:        []string{"variable", "let"},
				usage:       70,
				age:         day,
			},
			{
				id:          "object-destructuring",
				code:        "const { first, second } = object;",
				explanation: "Pull several properties out of an object at once.",
				confidence:  0.8,
				tags:        []string{"variable", "destructuring"},
				usage:       50,
				age:         3 * day,
				complexity:  domain.ComplexityMedium,
			},
			{
				id:          "array-destructuring",
				code:        "const [first, second] = array;",
				explanation: "Bind array elements by position.",
				confidence:  0.75,
				tags:        []string{"variable", "destructuring"},
				usage:       35,
				age:         8 * day,
				complexity:  domain.ComplexityMedium,
			},
		},
		domain.IntentClass: {
			{
				id:          "class-declaration",
				code:        "class Name {\n  constructor() {\n  }\n}",
				explanation: "Declare a class with a constructor.",
				confidence:  0.85,
				tags:        []string{"class"},
				usage:       60,
				age:         2 * day,
				complexity:  domain.ComplexityMedium,
			},
			{
				id:          "class-extends",
				code:        "class Name extends Base {\n  constructor(...args) {\n    super(...args);\n  }\n}",
				explanation: "Declare a subclass that forwards to its parent constructor.",
				confidence:  0.75,
				tags:        []string{"class", "inheritance"},
				usage:       30,
				age:         9 * day,
				complexity:  domain.ComplexityAdvanced,
			},
		},
		domain.IntentImport: {
			{
				id:          "named-import",
				code:        "import { name } from 'module';",
				explanation: "Import only the names you use.",
				confidence:  0.85,
				tags:        []string{"import", "es-modules"},
				usage:       80,
				age:         day,
			},
			{
				id:          "default-import",
				code:        "import name from 'module';",
				explanation: "Import the module's default export.",
				confidence:  0.8,
				tags:        []string{"import", "es-modules"},
				usage:       65,
				age:         day,
			},
		},
		domain.IntentComment: {
			{
				id:          "jsdoc",
				code:        "/**\n * Description.\n * @param {Type} name - Description.\n * @returns {Type} Description.\n */",
				explanation: "Document the function with JSDoc.",
				confidence:  0.8,
				tags:        []string{"documentation", "jsdoc"},
				usage:       40,
				age:         4 * day,
			},
		},
	},
}

var tsExtras = catalog{
	byIntent: map[domain.Intent][]template{
		domain.IntentVariable: {
			{
				id:          "typed-binding",
				code:        "const name: Type = value;",
				explanation: "Annotate the binding with an explicit type.",
				confidence:  0.9,
				category:    domain.CategoryCompletion,
				tags:        []string{"variable", "types"},
				usage:       60,
				age:         day,
			},
		},
		domain.IntentClass: {
			{
				id:          "interface",
				code:        "interface Name {\n  field: string;\n}",
				explanation: "Describe the shape of an object with an interface.",
				confidence:  0.85,
				tags:        []string{"types", "interface"},
				usage:       55,
				age:         2 * day,
			},
		},
		domain.IntentFunction: {
			{
				id:          "typed-function",
				code:        "function name(param: Type): ReturnType {\n  \n}",
				explanation: "Declare a function with typed parameters and return value.",
				confidence:  0.87,
				tags:        []string{"function", "types"},
				usage:       65,
				age:         day,
			},
		},
	},
}
