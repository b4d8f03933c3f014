// Package llm generates an optional narrative summary of a review report.
// The summary is advisory prose only; verdicts are already final before any
// provider is called.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/reviewdesk/appraisalint/internal/model"
)

// Provider defines the interface for summary backends.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize generates a narrative summary of the review report.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible.
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for summarization.
type SummarizeRequest struct {
	// Report is the review report to summarize.
	Report model.ReviewReport

	// Prompt is an optional custom prompt (if empty, use default).
	Prompt string

	// Model is the specific model to use (provider-specific).
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// SummarizeResponse contains the summary output.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled).
	Provider string

	// Model name (provider-specific).
	Model string

	// APIKey for the provider.
	APIKey string

	// BaseURL for custom endpoints.
	BaseURL string

	// Timeout for API requests, in seconds.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}

// NewProvider creates a provider from configuration. An empty provider name
// disables summarization and returns (nil, nil).
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// BuildPrompt constructs the default summarization prompt: the totals plus
// every rule violation, with instructions to stay within the findings.
func BuildPrompt(report model.ReviewReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are summarizing an automated appraisal review. The review cross-checks field values inside one appraisal report for internal consistency - it never judges the appraised value itself.

RULES:
1. Only discuss the findings listed below. Do not speculate beyond them.
2. Group related findings (e.g. several adjustment issues on one comparable).
3. Keep it to 3-5 sentences of plain prose suitable for a review manager.

Review totals: %d fields evaluated, %d consistent, %d violations, %d no opinion.

Violations:
`, report.Totals.Fields, report.Totals.Matches, report.Totals.Errors, report.Totals.NoOpinion)

	count := 0
	for _, f := range report.Findings {
		if !f.Verdict.IsError() {
			continue
		}
		count++
		if count > 30 {
			fmt.Fprintf(&b, "... and %d more violations\n", report.Totals.Errors-30)
			break
		}
		fmt.Fprintf(&b, "- %s: %s\n", strings.Join(f.Path, " / "), f.Verdict.Message)
	}
	if count == 0 {
		b.WriteString("(none)\n")
	}

	return b.String()
}
