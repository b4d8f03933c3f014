package model

import "time"

// ReviewReport is the complete result of reviewing one document snapshot:
// every populated field evaluated against the full rule catalogue.
type ReviewReport struct {
	FormType   string    `json:"form_type,omitempty"` // 1004, 1007, 1073
	ReviewedAt time.Time `json:"reviewed_at"`

	Findings []Finding `json:"findings"`
	Totals   Totals    `json:"totals"`

	LLM *LLMSummary `json:"llm,omitempty"` // Optional narrative summary (never affects verdicts)
}

// Finding is one evaluated field with its verdict and presentation.
type Finding struct {
	Path    FieldPath `json:"path"`
	Field   string    `json:"field"`
	Value   string    `json:"value"`
	Verdict Verdict   `json:"verdict"`
	Status  string    `json:"status,omitempty"`  // presentation style: match, error, caution
	Tooltip string    `json:"tooltip,omitempty"` // inline message for the reviewer
}

// Totals summarizes a review at a glance.
type Totals struct {
	Fields    int `json:"fields"`
	Matches   int `json:"matches"`
	Errors    int `json:"errors"`
	NoOpinion int `json:"no_opinion"`
}

// LLMSummary contains the optional LLM-generated narrative.
// It never affects verdicts and is clearly separated from them.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
