package rules

import (
	"strings"
	"testing"
	"time"

	"github.com/reviewdesk/appraisalint/internal/model"
)

func TestZoningCompliance(t *testing.T) {
	doc := model.Document{}
	withAddendum := model.Document{model.FieldSupplementalAddendum: "The nonconforming use predates the current ordinance."}

	wantMatch(t, checkZoningCompliance(input(doc, "Legal", model.FieldZoningCompliance)))

	out := checkZoningCompliance(input(doc, "Illegal (describe)", model.FieldZoningCompliance))
	wantError(t, out)
	if !strings.Contains(out.Message, "ESCALATE") {
		t.Errorf("expected escalation message, got %q", out.Message)
	}

	wantError(t, checkZoningCompliance(input(doc, "Legal Nonconforming (Grandfathered Use)", model.FieldZoningCompliance)))
	wantNil(t, checkZoningCompliance(input(withAddendum, "Legal Nonconforming (Grandfathered Use)", model.FieldZoningCompliance)))

	wantError(t, checkZoningCompliance(input(doc, "No Zoning", model.FieldZoningCompliance)))
	wantNil(t, checkZoningCompliance(input(withAddendum, "No Zoning", model.FieldZoningCompliance)))

	wantError(t, checkZoningCompliance(input(doc, "Commercial", model.FieldZoningCompliance)))
	wantNil(t, checkZoningCompliance(input(doc, "", model.FieldZoningCompliance)))
}

func TestZoningClassification(t *testing.T) {
	doc := model.Document{}

	wantMatch(t, checkZoningClassification(input(doc, "R1 Single Family", model.FieldZoningClassification)))
	wantMatch(t, checkZoningClassification(input(doc, "Residence District", model.FieldZoningClassification)))
	wantError(t, checkZoningClassification(input(doc, "C2 Commercial", model.FieldZoningClassification)))
	wantNil(t, checkZoningClassification(input(doc, "", model.FieldZoningClassification)))
}

func TestFEMAHazardZone(t *testing.T) {
	mk := func(hazard, zone string) model.Document {
		return model.Document{
			model.FieldFEMAHazardArea: hazard,
			model.FieldFEMAFloodZone:  zone,
		}
	}

	wantMatch(t, checkFEMAHazardZone(input(mk("No", "X"), "No", model.FieldFEMAHazardArea)))
	wantMatch(t, checkFEMAHazardZone(input(mk("No", "X500"), "No", model.FieldFEMAHazardArea)))
	wantError(t, checkFEMAHazardZone(input(mk("No", "B"), "No", model.FieldFEMAHazardArea)))
	wantMatch(t, checkFEMAHazardZone(input(mk("Yes", "AE"), "Yes", model.FieldFEMAHazardArea)))
	wantMatch(t, checkFEMAHazardZone(input(mk("Yes", "A"), "Yes", model.FieldFEMAHazardArea)))
	wantError(t, checkFEMAHazardZone(input(mk("Yes", "X"), "Yes", model.FieldFEMAHazardArea)))
	wantNil(t, checkFEMAHazardZone(input(mk("No", ""), "No", model.FieldFEMAHazardArea)))
}

func TestHighestAndBestUse(t *testing.T) {
	doc := model.Document{}

	wantMatch(t, checkHighestAndBestUse(input(doc, "Yes", model.FieldHighestAndBestUse)))
	wantMatch(t, checkHighestAndBestUse(input(doc, "The present use is the highest and best use", model.FieldHighestAndBestUse)))
	wantError(t, checkHighestAndBestUse(input(doc, "No, see addendum", model.FieldHighestAndBestUse)))
	wantError(t, checkHighestAndBestUse(input(doc, "Maybe", model.FieldHighestAndBestUse)))
	wantNil(t, checkHighestAndBestUse(input(doc, "", model.FieldHighestAndBestUse)))
}

func TestFEMAFieldsRequired(t *testing.T) {
	withHazard := model.Document{model.FieldFEMAHazardArea: "No"}
	noHazard := model.Document{}

	wantError(t, checkFEMAFieldsRequired(input(withHazard, "", model.FieldFEMAMapNumber)))
	wantMatch(t, checkFEMAFieldsRequired(input(withHazard, "06037C1670F", model.FieldFEMAMapNumber)))
	wantNil(t, checkFEMAFieldsRequired(input(noHazard, "", model.FieldFEMAMapNumber)))
}

func TestViewConsistency(t *testing.T) {
	doc := model.Document{
		model.FieldView: "N;Res",
		model.SectionSubject: map[string]any{
			model.FieldView: "N; Res",
		},
	}
	wantMatch(t, checkViewConsistency(input(doc, "N;Res", model.FieldView)))

	doc[model.FieldView] = "B;Mtn"
	wantError(t, checkViewConsistency(input(doc, "B;Mtn", model.FieldView)))
}

func TestAreaSiteConsistency(t *testing.T) {
	doc := model.Document{
		model.FieldArea: "7,500 sf",
		model.SectionSubject: map[string]any{
			model.FieldSite: "7,500sf",
		},
	}
	wantMatch(t, checkAreaSiteConsistency(input(doc, "7,500 sf", model.FieldArea)))

	doc[model.FieldArea] = "9,000 sf"
	wantError(t, checkAreaSiteConsistency(input(doc, "9,000 sf", model.FieldArea)))

	// Grid-side edits trigger the same comparison
	wantError(t, checkAreaSiteConsistency(input(doc, "7,500sf", model.SectionSubject, model.FieldSite)))
}

func TestTaxYear(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	doc := model.Document{}

	wantNil(t, checkTaxYear(input(doc, "2026", model.FieldTaxYear)))
	wantNil(t, checkTaxYear(input(doc, "2025", model.FieldTaxYear)))
	wantError(t, checkTaxYear(input(doc, "2027", model.FieldTaxYear)))
	wantError(t, checkTaxYear(input(doc, "2023", model.FieldTaxYear)))
	wantError(t, checkTaxYear(input(doc, "n/a", model.FieldTaxYear)))
	wantNil(t, checkTaxYear(input(doc, "", model.FieldTaxYear)))
}

func TestRETaxes(t *testing.T) {
	doc := model.Document{}

	wantNil(t, checkRETaxes(input(doc, "8,542.10", model.FieldRETaxes)))
	wantError(t, checkRETaxes(input(doc, "123,456", model.FieldRETaxes)))
	wantNil(t, checkRETaxes(input(doc, "", model.FieldRETaxes)))
}

func TestPropertyRights(t *testing.T) {
	doc := model.Document{
		model.SectionSubject: map[string]any{
			model.FieldLeaseholdFeeSimple: "Fee Simple",
		},
	}

	wantMatch(t, checkPropertyRights(input(doc, "Fee Simple", model.FieldPropertyRights)))
	wantError(t, checkPropertyRights(input(doc, "Leasehold", model.FieldPropertyRights)))
	wantNil(t, checkPropertyRights(input(doc, "", model.FieldPropertyRights)))
}

func TestSiteUtilities(t *testing.T) {
	doc := model.Document{}

	wantMatch(t, checkSiteUtilities(input(doc, "Public", "Electricity")))
	wantError(t, checkSiteUtilities(input(doc, "", "Sanitary Sewer")))
	wantNil(t, checkSiteUtilities(input(doc, "", "Unrelated")))
}
