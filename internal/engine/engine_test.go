package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/reviewdesk/appraisalint/internal/model"
)

func evalPath(t *testing.T, e *Engine, doc model.Document, path ...string) model.Verdict {
	t.Helper()
	return e.EvaluatePath(doc, model.FieldPath(path))
}

func TestEvaluate_UnmatchedFieldsHoldNoOpinion(t *testing.T) {
	e := New()
	doc := model.Document{"Borrower": "Jane Doe"}

	v := e.Evaluate("Borrower", "Jane Doe", doc, model.FieldPath{"Borrower"})
	if v.Kind != model.VerdictNoOpinion {
		t.Fatalf("expected no opinion for unguarded field, got %+v", v)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := New()
	doc := model.Document{
		model.FieldFEMAHazardArea: "No",
		model.FieldFEMAFloodZone:  "B",
	}

	first := e.Evaluate(model.FieldFEMAHazardArea, "No", doc, model.FieldPath{model.FieldFEMAHazardArea})
	second := e.Evaluate(model.FieldFEMAHazardArea, "No", doc, model.FieldPath{model.FieldFEMAHazardArea})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("verdicts differ between evaluations: %+v vs %+v", first, second)
	}
	if !first.IsError() {
		t.Fatalf("expected an error verdict, got %+v", first)
	}
}

func TestEvaluate_FEMACrossCheck(t *testing.T) {
	e := New()
	cases := []struct {
		hazard, zone string
		wantErr      bool
	}{
		{"no", "X", false},
		{"no", "B", true},
		{"yes", "AE", false},
		{"yes", "X", true},
	}
	for _, c := range cases {
		doc := model.Document{
			model.FieldFEMAHazardArea: c.hazard,
			model.FieldFEMAFloodZone:  c.zone,
		}
		v := e.Evaluate(model.FieldFEMAHazardArea, c.hazard, doc, model.FieldPath{model.FieldFEMAHazardArea})
		if c.wantErr && !v.IsError() {
			t.Errorf("hazard=%q zone=%q: expected error, got %+v", c.hazard, c.zone, v)
		}
		if !c.wantErr && !v.IsMatch() {
			t.Errorf("hazard=%q zone=%q: expected match, got %+v", c.hazard, c.zone, v)
		}
	}
}

func TestEvaluate_NeighborhoodUsageTotal(t *testing.T) {
	e := New()
	mk := func(oneUnit, commercial string) model.Document {
		return model.Document{
			model.SectionNeighborhood: map[string]any{
				"One-Unit":   oneUnit,
				"Commercial": commercial,
			},
		}
	}

	v := evalPath(t, e, mk("90%", "10%"), model.SectionNeighborhood, "One-Unit")
	if !v.IsMatch() {
		t.Fatalf("expected match for a 100%% total, got %+v", v)
	}

	v = evalPath(t, e, mk("80%", "10%"), model.SectionNeighborhood, "One-Unit")
	if !v.IsError() {
		t.Fatalf("expected error for a 90%% total, got %+v", v)
	}
	if !strings.Contains(v.Message, "90") {
		t.Errorf("expected computed total in message, got %q", v.Message)
	}
}

func TestEvaluate_Proximity(t *testing.T) {
	e := New()
	doc := model.Document{
		model.SectionSubject: map[string]any{"Address": "123 Oak St"},
		"COMPARABLE SALE #1": map[string]any{model.FieldProximityToSubject: "0.8"},
	}

	v := e.Evaluate(model.FieldProximityToSubject, "0.8", doc,
		model.FieldPath{"COMPARABLE SALE #1", model.FieldProximityToSubject})
	if !v.IsMatch() {
		t.Fatalf("expected match for 0.8, got %+v", v)
	}

	v = e.Evaluate(model.FieldProximityToSubject, "1.5", doc,
		model.FieldPath{"COMPARABLE SALE #1", model.FieldProximityToSubject})
	if !v.IsError() || !strings.Contains(v.Message, "greater than 1.0") {
		t.Fatalf("expected error mentioning 'greater than 1.0', got %+v", v)
	}
}

func TestEvaluate_DateOfSaleWindow(t *testing.T) {
	e := New()
	mk := func(other string) model.Document {
		return model.Document{
			model.SectionSubject: map[string]any{},
			"COMPARABLE SALE #1": map[string]any{model.FieldDateOfSale: "s01/15/2026"},
			"COMPARABLE SALE #2": map[string]any{model.FieldDateOfSale: other},
		}
	}

	// 6 months apart
	v := evalPath(t, e, mk("s07/20/2025"), "COMPARABLE SALE #1", model.FieldDateOfSale)
	if !v.IsMatch() {
		t.Fatalf("expected match for dates 6 months apart, got %+v", v)
	}

	// 13 months apart
	v = evalPath(t, e, mk("s12/10/2024"), "COMPARABLE SALE #1", model.FieldDateOfSale)
	if !v.IsError() {
		t.Fatalf("expected error for dates 13 months apart, got %+v", v)
	}
	if !strings.Contains(v.Message, "COMPARABLE SALE #2") || !strings.Contains(v.Message, "s12/10/2024") {
		t.Errorf("expected the other comparable and its date in the message, got %q", v.Message)
	}
}

func TestEvaluate_GridScenario(t *testing.T) {
	e := New()
	doc := model.Document{
		model.SectionSubject: map[string]any{
			"Condition": "C3",
			"Bedrooms":  "3",
		},
		"COMPARABLE SALE #1": map[string]any{
			"Condition":            "C3",
			"Condition Adjustment": "$0",
			"Bedrooms":             "4",
			"Bedrooms Adjustment":  "-5000",
		},
	}

	v := evalPath(t, e, doc, "COMPARABLE SALE #1", "Condition Adjustment")
	if !v.IsMatch() {
		t.Fatalf("same condition with zero adjustment: expected match, got %+v", v)
	}

	v = evalPath(t, e, doc, "COMPARABLE SALE #1", "Bedrooms Adjustment")
	if !v.IsMatch() {
		t.Fatalf("more bedrooms with negative adjustment: expected match, got %+v", v)
	}
}

func TestEvaluate_FirstErrorWins(t *testing.T) {
	// The zoning value both fails compliance and would fail classification;
	// the earlier rule's message must survive.
	e := New()
	doc := model.Document{
		model.FieldZoningCompliance: "Illegal use",
	}
	v := e.Evaluate(model.FieldZoningCompliance, "Illegal use", doc, model.FieldPath{model.FieldZoningCompliance})
	if !v.IsError() || !strings.Contains(v.Message, "ESCALATE") {
		t.Fatalf("expected the escalation message to win, got %+v", v)
	}
}

func TestEvaluate_NeverMutatesDocument(t *testing.T) {
	e := New()
	doc := model.Document{
		model.FieldFEMAHazardArea: "No",
		model.FieldFEMAFloodZone:  "X",
		model.SectionSubject:      map[string]any{"Bedrooms": "3"},
	}
	snapshot := map[string]any{
		model.FieldFEMAHazardArea: "No",
		model.FieldFEMAFloodZone:  "X",
		model.SectionSubject:      map[string]any{"Bedrooms": "3"},
	}

	e.Evaluate(model.FieldFEMAHazardArea, "No", doc, model.FieldPath{model.FieldFEMAHazardArea})

	if !reflect.DeepEqual(map[string]any(doc), snapshot) {
		t.Fatal("evaluation mutated the document snapshot")
	}
}

func TestPresent(t *testing.T) {
	p := Present("Tax Year", "2026", model.Errorf("Tax Year (2027) cannot be in the future."))
	if p.Style != StyleFailure || p.Tooltip == "" {
		t.Errorf("error presentation wrong: %+v", p)
	}

	p = Present("Tax Year", "2026", model.Match())
	if p.Style != StyleSuccess || p.Tooltip != "Validation successful!" {
		t.Errorf("match presentation wrong: %+v", p)
	}

	p = Present("Borrower", "Jane Doe", model.NoOpinion())
	if p.Style != StyleNone || p.Tooltip != "" {
		t.Errorf("no-opinion presentation wrong: %+v", p)
	}

	// The one value-based exception
	p = Present(model.FieldZoningCompliance, "Legal Nonconforming (Grandfathered Use)", model.NoOpinion())
	if p.Style != StyleCaution {
		t.Errorf("expected caution style for Legal Nonconforming, got %+v", p)
	}
}
