package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/reviewdesk/appraisalint/internal/model"
)

// Renderer writes review reports as JSON, Markdown, and a stdout summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.ReviewReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report: totals, then the
// violations grouped, then the consistent fields as a compact list.
func (r *Renderer) RenderMarkdown(report *model.ReviewReport, path string) error {
	var b strings.Builder

	b.WriteString("# Appraisal Review\n\n")
	if report.FormType != "" {
		fmt.Fprintf(&b, "Form type: %s\n\n", report.FormType)
	}
	fmt.Fprintf(&b, "Reviewed: %s\n\n", report.ReviewedAt.Format("2006-01-02 15:04 UTC"))

	t := report.Totals
	fmt.Fprintf(&b, "| Fields | Consistent | Violations | No opinion |\n")
	fmt.Fprintf(&b, "|--------|-----------|------------|------------|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n\n", t.Fields, t.Matches, t.Errors, t.NoOpinion)

	if t.Errors > 0 {
		b.WriteString("## Violations\n\n")
		for _, f := range report.Findings {
			if !f.Verdict.IsError() {
				continue
			}
			fmt.Fprintf(&b, "- **%s**: %s\n", strings.Join(f.Path, " / "), f.Verdict.Message)
		}
		b.WriteString("\n")
	}

	if t.Matches > 0 {
		b.WriteString("## Consistent fields\n\n")
		for _, f := range report.Findings {
			if f.Verdict.IsMatch() {
				fmt.Fprintf(&b, "- %s\n", strings.Join(f.Path, " / "))
			}
		}
		b.WriteString("\n")
	}

	if report.LLM != nil && report.LLM.Enabled {
		b.WriteString("## Narrative summary\n\n")
		fmt.Fprintf(&b, "_Generated by %s (%s); advisory only, does not affect verdicts._\n\n", report.LLM.Provider, report.LLM.Model)
		b.WriteString(report.LLM.SummaryMD)
		b.WriteString("\n\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by appraisalint. Findings are advisory; a human reviewer decides.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a one-screen overview to stdout.
func (r *Renderer) RenderSummary(report *model.ReviewReport) {
	t := report.Totals
	fmt.Printf("\nReview complete: %d fields, %d consistent, %d violations, %d no opinion\n",
		t.Fields, t.Matches, t.Errors, t.NoOpinion)

	if t.Errors == 0 {
		fmt.Println("No rule violations found.")
		return
	}

	fmt.Println("\nViolations:")
	shown := 0
	for _, f := range report.Findings {
		if !f.Verdict.IsError() {
			continue
		}
		shown++
		if shown > 10 {
			fmt.Printf("  ... and %d more (see the full report)\n", t.Errors-10)
			break
		}
		fmt.Printf("  ✗ %s: %s\n", strings.Join(f.Path, " / "), f.Verdict.Message)
	}
}
