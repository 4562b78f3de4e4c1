package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/version"
)

var (
	headingColor  = color.New(color.FgCyan, color.Bold)
	idColor       = color.New(color.FgYellow)
	codeColor     = color.New(color.FgGreen)
	dimColor      = color.New(color.Faint)
	categoryColor = map[domain.Category]*color.Color{
		domain.CategorySnippet:      color.New(color.FgBlue),
		domain.CategoryCompletion:   color.New(color.FgGreen),
		domain.CategoryOptimization: color.New(color.FgMagenta),
		domain.CategoryBestPractice: color.New(color.FgRed),
	}
	statusColor = map[domain.HealthStatus]*color.Color{
		domain.HealthOK:    color.New(color.FgGreen, color.Bold),
		domain.HealthWarn:  color.New(color.FgYellow, color.Bold),
		domain.HealthError: color.New(color.FgRed, color.Bold),
	}
)

// WriteJSON encodes v as indented JSON.
func WriteJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderSuggestions prints a ranked list, best first.
func RenderSuggestions(out io.Writer, suggestions []domain.CodeSuggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintln(out, "No suggestions.")
		return
	}
	for i, s := range suggestions {
		label := string(s.Category)
		if c, ok := categoryColor[s.Category]; ok {
			label = c.Sprint(label)
		}
		fmt.Fprintf(out, "%d. %s [%s] %s\n", i+1, idColor.Sprint(s.ID), label, s.Explanation)
		for _, line := range strings.Split(s.Code, "\n") {
			fmt.Fprintf(out, "     %s\n", codeColor.Sprint(line))
		}
		meta := fmt.Sprintf("confidence %.2f, %s", s.Confidence, s.Complexity)
		if len(s.Tags) > 0 {
			meta += ", tags: " + strings.Join(s.Tags, ", ")
		}
		fmt.Fprintf(out, "     %s\n", dimColor.Sprint(meta))
	}
}

// RenderStats prints engine counters.
func RenderStats(out io.Writer, stats domain.EngineStats) {
	fmt.Fprintln(out, headingColor.Sprint("Engine stats"))
	fmt.Fprintf(out, "  Cached suggestions: %d\n", stats.TotalSuggestions)
	fmt.Fprintf(out, "  Cache entries:      %s\n", ofCapacity(stats.CacheSize, stats.CacheCapacity))
	fmt.Fprintf(out, "  History size:       %s\n", ofCapacity(stats.HistorySize, stats.HistoryCapacity))
}

// RenderContext prints the classified context without the file body.
func RenderContext(out io.Writer, ctx domain.CodeContext) {
	fmt.Fprintln(out, headingColor.Sprint("Context"))
	fmt.Fprintf(out, "  Language: %s\n", ctx.Language)
	fmt.Fprintf(out, "  Scope:    %s\n", ctx.Scope)
	fmt.Fprintf(out, "  Intent:   %s\n", ctx.Intent)
	fmt.Fprintf(out, "  Line:     %q (cursor %d)\n", ctx.CurrentLine, ctx.CursorPosition)
	fmt.Fprintf(out, "  Imports:   %s\n", joinOrDash(ctx.Imports))
	fmt.Fprintf(out, "  Variables: %s\n", joinOrDash(ctx.Variables))
	fmt.Fprintf(out, "  Functions: %s\n", joinOrDash(ctx.Functions))
	fmt.Fprintf(out, "  Classes:   %s\n", joinOrDash(ctx.Classes))
}

// RenderAdvisories prints best-practice findings.
func RenderAdvisories(out io.Writer, path string, advisories []domain.CodeSuggestion) {
	if len(advisories) == 0 {
		fmt.Fprintf(out, "%s: no issues found\n", path)
		return
	}
	for _, a := range advisories {
		fmt.Fprintf(out, "%s: %s %s\n", path, categoryColor[domain.CategoryBestPractice].Sprint(a.ID), a.Explanation)
		if a.Code != "" {
			fmt.Fprintf(out, "    suggestion: %s\n", codeColor.Sprint(a.Code))
		}
	}
}

// RenderUsage prints accepted suggestions, newest first.
func RenderUsage(out io.Writer, records []domain.UsageRecord) {
	for _, rec := range records {
		fmt.Fprintf(out, "%s  %-10s %s  %s\n",
			dimColor.Sprint(rec.AcceptedAt.Format(domain.TimestampFormat)),
			rec.Language,
			idColor.Sprint(rec.SuggestionID),
			firstLine(rec.Code))
	}
}

// RenderDoctorReport prints one line per check.
func RenderDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		status := strings.ToUpper(string(check.Status))
		if c, ok := statusColor[check.Status]; ok {
			status = c.Sprint(status)
		}
		fmt.Fprintf(out, "[%s] %s - %s\n", status, check.Name, check.Details)
	}
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func firstLine(code string) string {
	if i := strings.IndexByte(code, '\n'); i >= 0 {
		return code[:i] + " ..."
	}
	return code
}

// RenderVersion prints build metadata; missing fields show as unknown.
func RenderVersion(out io.Writer, info version.Info) {
	fmt.Fprintf(out, "codesuggest %s\n", headingColor.Sprint(info.Version))
	fmt.Fprintf(out, "  Commit:   %s\n", orUnknown(info.ShortCommit()))
	fmt.Fprintf(out, "  Built:    %s\n", orUnknown(info.BuildDate))
	fmt.Fprintf(out, "  Go:       %s (%s)\n", info.GoVersion, info.Platform)
}

func orUnknown(value string) string {
	if value == "" {
		return dimColor.Sprint("unknown")
	}
	return value
}

func ofCapacity(size, capacity int) string {
	if capacity <= 0 {
		return strconv.Itoa(size)
	}
	return fmt.Sprintf("%d/%d", size, capacity)
}
