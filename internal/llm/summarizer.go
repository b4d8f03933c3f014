package llm

import (
	"context"
	"fmt"

	"github.com/reviewdesk/appraisalint/internal/model"
)

// Summarizer wraps a provider and degrades gracefully: a missing or
// unavailable provider never fails a review, it just leaves the summary
// out.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. An empty provider
// name yields a disabled summarizer, not an error.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the configured provider's name, or "".
func (s *Summarizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// GenerateSummary produces the narrative block for a review report. A nil
// return with nil error means summarization is disabled.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.ReviewReport) (*model.LLMSummary, error) {
	if s.provider == nil {
		return nil, nil
	}

	if !s.provider.IsAvailable(ctx) {
		return &model.LLMSummary{
			Enabled:  false,
			Provider: s.provider.Name(),
			Warnings: []string{fmt.Sprintf("LLM provider %q is not available; summary skipped", s.provider.Name())},
		}, nil
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return &model.LLMSummary{
			Enabled:  false,
			Provider: s.provider.Name(),
			Warnings: []string{fmt.Sprintf("summary generation failed: %v", err)},
		}, nil
	}

	summary := &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}
	if resp.TokensUsed > 0 {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("Tokens used: %d", resp.TokensUsed))
	}
	return summary, nil
}
