package engine

import (
	"strings"

	"github.com/reviewdesk/appraisalint/internal/model"
)

// Style is the inline status a finding is rendered with.
type Style string

const (
	StyleNone    Style = ""
	StyleSuccess Style = "success"
	StyleFailure Style = "failure"
	StyleCaution Style = "caution"
)

// Presentation is the render-ready form of a verdict: a style plus the
// tooltip text shown next to the field.
type Presentation struct {
	Style   Style  `json:"style,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
}

const matchTooltip = "Validation successful!"

// Present maps a verdict to its presentation. It is a pure function of the
// verdict and the field's value; it runs no rule logic. The one value-based
// exception: a "Legal Nonconforming" zoning value renders with a caution
// style even when no rule held an opinion on it.
func Present(field, value string, v model.Verdict) Presentation {
	switch v.Kind {
	case model.VerdictError:
		return Presentation{Style: StyleFailure, Tooltip: v.Message}
	case model.VerdictMatch:
		return Presentation{Style: StyleSuccess, Tooltip: matchTooltip}
	default:
		if field == model.FieldZoningCompliance &&
			strings.HasPrefix(strings.TrimSpace(value), "Legal Nonconforming") {
			return Presentation{Style: StyleCaution}
		}
		return Presentation{}
	}
}
