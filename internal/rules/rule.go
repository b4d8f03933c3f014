// Package rules holds the field-consistency rule catalogue for appraisal
// review: pure functions that cross-check one candidate value against the
// rest of the document and report a match, a violation, or no opinion.
package rules

import (
	"fmt"
	"time"

	"github.com/reviewdesk/appraisalint/internal/document"
	"github.com/reviewdesk/appraisalint/internal/model"
)

// Family groups rules for fixed-order dispatch.
type Family string

const (
	FamilyGeneral         Family = "general"
	FamilySubjectSite     Family = "subject_site"
	FamilyNeighborhood    Family = "neighborhood"
	FamilyImprovements    Family = "improvements"
	FamilySalesComparison Family = "sales_comparison"
)

// Input is everything a rule may inspect: the edited field, its candidate
// value, the full document snapshot, the field's path, and the
// comparable/section context derived from that path.
type Input struct {
	Field   string
	Value   string
	Doc     model.Document
	Path    model.FieldPath
	CompKey string // Subject, COMPARABLE SALE #N, or "" when not a grid field
}

// Outcome is a rule's opinion. A nil *Outcome means the rule did not apply.
type Outcome struct {
	Error   bool
	Match   bool
	Message string
}

// Rule is one guarded, pure consistency check. The guard lives inside
// Check: a rule that does not apply to the input returns nil, never an
// error, so the registry stays open to extension without dispatcher
// changes.
type Rule struct {
	Name   string
	Family Family
	Check  func(Input) *Outcome
}

// timeNow is the clock used by year-sensitive rules (injectable for tests).
var timeNow = time.Now

func matched() *Outcome { return &Outcome{Match: true} }

func failf(format string, args ...any) *Outcome {
	return &Outcome{Error: true, Message: fmt.Sprintf(format, args...)}
}

// root reads a root-level field as a trimmed string.
func (in Input) root(field string) string {
	return trim(document.GetString(in.Doc, field))
}

// section reads a field from a named sub-section as a trimmed string.
func (in Input) section(sec, field string) string {
	return trim(document.GetString(in.Doc, sec, field))
}

// subject reads a field from the Subject sales-grid column.
func (in Input) subject(field string) string {
	return in.section(model.SectionSubject, field)
}

// comp reads a field from the comparable named by CompKey.
func (in Input) comp(field string) string {
	if in.CompKey == "" {
		return ""
	}
	return in.section(in.CompKey, field)
}

// hasSubject reports whether the Subject grid column exists; most grid
// rules need it as the comparison baseline.
func (in Input) hasSubject() bool {
	return document.Section(in.Doc, model.SectionSubject) != nil
}
