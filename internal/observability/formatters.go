// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContext outputs a human-readable summary of the assembled generation context.
func (p *Printer) PrintContext(gctx *types.GenerationContext) {
	if gctx == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", gctx.Job.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", gctx.Job.Title))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Style:    %s, %s sentences\n", gctx.Style.Tone, gctx.Style.SentenceLength))
	sb.WriteString(fmt.Sprintf("Samples:  %d\n", len(gctx.WritingSamples)))

	if len(gctx.Job.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		count := min(len(gctx.Job.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", gctx.Job.Requirements[i]))
		}
		if len(gctx.Job.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gctx.Job.Requirements)-maxItemsToShow))
		}
	}

	if gctx.Intel.HasContent() {
		sb.WriteString("\nCompany Intel:\n")
		if len(gctx.Intel.Values) > 0 {
			sb.WriteString(fmt.Sprintf("  Values: %s\n", joinCapped(gctx.Intel.Values, 3)))
		}
		if len(gctx.Intel.News) > 0 {
			sb.WriteString(fmt.Sprintf("  News:   %d items\n", len(gctx.Intel.News)))
		}
		if len(gctx.Intel.TechStack) > 0 {
			sb.WriteString(fmt.Sprintf("  Tech:   %s\n", joinCapped(gctx.Intel.TechStack, 3)))
		}
	} else {
		sb.WriteString("\nCompany Intel: (none)\n")
	}

	p.printBox("GENERATION CONTEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs the validation outcome for one candidate letter.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(result *types.ValidationResult) {
	if result == nil {
		return
	}

	if result.IsValid && len(result.Warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ VALIDATION PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words: %d  Paragraphs: %d  Mentions: %d\n",
		result.Stats.WordCount, result.Stats.ParagraphCount, result.Stats.KeyEntityMentions))

	if len(result.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, e := range result.Errors {
			if len(e) > 50 {
				e = e[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", e))
		}
	}
	if len(result.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range result.Warnings {
			if len(w) > 50 {
				w = w[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", w))
		}
	}

	title := "VALIDATION PASSED (with warnings)"
	if !result.IsValid {
		title = "VALIDATION FAILED"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScores outputs the judge's quality scores for one candidate letter.
func (p *Printer) PrintScores(scores *types.QualityScores) {
	if scores == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Naturalness:   %4.1f/10\n", scores.Naturalness))
	sb.WriteString(fmt.Sprintf("Style match:   %4.1f/10\n", scores.StyleMatch))
	sb.WriteString(fmt.Sprintf("Relevance:     %4.1f/10\n", scores.CompanyRelevance))
	sb.WriteString(fmt.Sprintf("Individuality: %4.1f/10\n", scores.Individuality))
	sb.WriteString(fmt.Sprintf("Overall:       %4.1f/10\n", scores.OverallScore))

	if len(scores.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(scores.Issues), 3)
		for i := 0; i < count; i++ {
			issue := scores.Issues[i]
			if len(issue) > 50 {
				issue = issue[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", issue))
		}
	}
	if len(scores.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(scores.Suggestions), 3)
		for i := 0; i < count; i++ {
			s := scores.Suggestions[i]
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("QUALITY SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunResult outputs the final outcome of a generation run.
func (p *Printer) PrintRunResult(result *types.RunResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Iterations: %d\n", result.Iterations))
	sb.WriteString(fmt.Sprintf("Score:      %.1f/10\n", result.Scores.OverallScore))
	if result.Degraded {
		sb.WriteString("Status:     ⚠ degraded (no valid letter)\n")
	} else {
		sb.WriteString("Status:     ✅ valid\n")
	}
	sb.WriteString(fmt.Sprintf("Words:      %d\n", result.Validation.Stats.WordCount))

	sb.WriteString("\nPer iteration:\n")
	for _, rec := range result.IterationLog {
		status := "valid"
		if !rec.Validation.IsValid {
			status = "invalid"
		}
		sb.WriteString(fmt.Sprintf("  #%d  %.1f/10  %s\n", rec.Iteration, rec.Scores.OverallScore, status))
	}

	p.printBox("RUN RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// joinCapped joins up to n items, noting how many were omitted.
func joinCapped(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s, +%d more", strings.Join(items[:n], ", "), len(items)-n)
}
