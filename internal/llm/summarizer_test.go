package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reviewdesk/appraisalint/internal/model"
)

type mockProvider struct {
	name      string
	available bool
	response  *SummarizeResponse
	err       error
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) IsAvailable(ctx context.Context) bool { return m.available }

func (m *mockProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func sampleReport() model.ReviewReport {
	return model.ReviewReport{
		Findings: []model.Finding{
			{
				Path:    model.FieldPath{"Tax Year"},
				Field:   "Tax Year",
				Verdict: model.Errorf("Tax Year (2020) should be the current or previous year."),
			},
			{
				Path:    model.FieldPath{"FEMA Special Flood Hazard Area"},
				Field:   "FEMA Special Flood Hazard Area",
				Verdict: model.Match(),
			},
		},
		Totals: model.Totals{Fields: 2, Matches: 1, Errors: 1},
	}
}

func TestNewSummarizer_Disabled(t *testing.T) {
	s, err := NewSummarizer(Config{})
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	if s.IsEnabled() {
		t.Error("summarizer with no provider reports enabled")
	}
	if s.ProviderName() != "" {
		t.Errorf("ProviderName = %q, want empty", s.ProviderName())
	}

	summary, err := s.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary != nil {
		t.Errorf("disabled summarizer produced a summary: %+v", summary)
	}
}

func TestNewSummarizer_UnknownProvider(t *testing.T) {
	if _, err := NewSummarizer(Config{Provider: "anthropic"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestGenerateSummary_Success(t *testing.T) {
	s := &Summarizer{
		provider: &mockProvider{
			name:      "openai",
			available: true,
			response: &SummarizeResponse{
				Summary:    "One tax year inconsistency was found.",
				Model:      "gpt-4o-mini",
				TokensUsed: 128,
			},
		},
	}

	summary, err := s.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if !summary.Enabled {
		t.Error("summary not marked enabled")
	}
	if summary.Provider != "openai" || summary.Model != "gpt-4o-mini" {
		t.Errorf("provider/model = %q/%q", summary.Provider, summary.Model)
	}
	if summary.SummaryMD != "One tax year inconsistency was found." {
		t.Errorf("SummaryMD = %q", summary.SummaryMD)
	}
	if len(summary.Warnings) != 1 || !strings.Contains(summary.Warnings[0], "128") {
		t.Errorf("token usage not recorded: %v", summary.Warnings)
	}
}

func TestGenerateSummary_ProviderUnavailable(t *testing.T) {
	s := &Summarizer{provider: &mockProvider{name: "openai", available: false}}

	summary, err := s.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary.Enabled {
		t.Error("summary marked enabled despite unavailable provider")
	}
	if len(summary.Warnings) == 0 || !strings.Contains(summary.Warnings[0], "not available") {
		t.Errorf("missing unavailability warning: %v", summary.Warnings)
	}
}

func TestGenerateSummary_ProviderError(t *testing.T) {
	s := &Summarizer{provider: &mockProvider{
		name:      "openai",
		available: true,
		err:       errors.New("rate limited"),
	}}

	summary, err := s.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("GenerateSummary should degrade, not fail: %v", err)
	}
	if summary.Enabled {
		t.Error("summary marked enabled despite provider error")
	}
	if len(summary.Warnings) == 0 || !strings.Contains(summary.Warnings[0], "rate limited") {
		t.Errorf("provider error not surfaced: %v", summary.Warnings)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleReport())

	if !strings.Contains(prompt, "2 fields evaluated") {
		t.Errorf("totals missing from prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Tax Year (2020) should be the current or previous year.") {
		t.Errorf("violation missing from prompt:\n%s", prompt)
	}
	if strings.Contains(prompt, "FEMA Special Flood Hazard Area") {
		t.Errorf("non-violation leaked into prompt:\n%s", prompt)
	}
}

func TestBuildPrompt_NoViolations(t *testing.T) {
	report := model.ReviewReport{Totals: model.Totals{Fields: 3, Matches: 3}}
	prompt := BuildPrompt(report)
	if !strings.Contains(prompt, "(none)") {
		t.Errorf("empty violation list not marked:\n%s", prompt)
	}
}
