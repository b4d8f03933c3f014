package model

import "fmt"

// VerdictKind classifies the engine's opinion on a field value.
type VerdictKind string

const (
	// VerdictNoOpinion means no rule applied, or the data was insufficient
	// to judge. Never surfaced as an error.
	VerdictNoOpinion VerdictKind = "no_opinion"

	// VerdictMatch means at least one rule confirmed the value is
	// consistent and none found a violation.
	VerdictMatch VerdictKind = "match"

	// VerdictError means a rule detected a business-rule violation.
	// Advisory, never fatal.
	VerdictError VerdictKind = "error"
)

// Verdict is the engine's per-field output. Message is set only for errors.
type Verdict struct {
	Kind    VerdictKind `json:"kind"`
	Message string      `json:"message,omitempty"`
}

// NoOpinion returns the indeterminate verdict.
func NoOpinion() Verdict { return Verdict{Kind: VerdictNoOpinion} }

// Match returns the consistent verdict.
func Match() Verdict { return Verdict{Kind: VerdictMatch} }

// Errorf returns an error verdict with a formatted message.
func Errorf(format string, args ...any) Verdict {
	return Verdict{Kind: VerdictError, Message: fmt.Sprintf(format, args...)}
}

func (v Verdict) IsError() bool { return v.Kind == VerdictError }
func (v Verdict) IsMatch() bool { return v.Kind == VerdictMatch }
