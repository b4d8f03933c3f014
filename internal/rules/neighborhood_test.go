package rules

import (
	"strings"
	"testing"

	"github.com/reviewdesk/appraisalint/internal/model"
)

func housingDoc(high, low, pred string) model.Document {
	return model.Document{
		model.SectionNeighborhood: map[string]any{
			model.FieldHousingPrice: map[string]any{
				"high": high,
				"low":  low,
				"pred": pred,
			},
		},
	}
}

func TestHousingPriceAndAge(t *testing.T) {
	wantMatch(t, checkHousingPriceAndAge(input(housingDoc("850", "400", "600"), "", model.SectionNeighborhood, model.FieldHousingPrice)))

	out := checkHousingPriceAndAge(input(housingDoc("500", "400", "600"), "", model.SectionNeighborhood, model.FieldHousingPrice))
	wantError(t, out)
	if !strings.Contains(out.Message, "High >= Predominant >= Low") {
		t.Errorf("unexpected message: %q", out.Message)
	}

	// Blank legs default to zero
	wantError(t, checkHousingPriceAndAge(input(housingDoc("", "400", "600"), "", model.SectionNeighborhood, model.FieldHousingPrice)))
	wantMatch(t, checkHousingPriceAndAge(input(housingDoc("900", "", ""), "", model.SectionNeighborhood, model.FieldHousingPrice)))

	// No neighborhood section: indeterminate
	wantNil(t, checkHousingPriceAndAge(input(model.Document{}, "", model.FieldHousingPrice)))
}

func TestNeighborhoodBoundaries(t *testing.T) {
	doc := model.Document{}

	wantMatch(t, checkNeighborhoodBoundaries(input(doc,
		"North: Main St; South: River Rd; East: Hwy 9; West: Park Ave",
		model.SectionNeighborhood, model.FieldNeighborhoodBoundaries)))

	out := checkNeighborhoodBoundaries(input(doc, "North: Main St; South: River Rd",
		model.SectionNeighborhood, model.FieldNeighborhoodBoundaries))
	wantError(t, out)
	if !strings.Contains(out.Message, "EAST") || !strings.Contains(out.Message, "WEST") {
		t.Errorf("expected missing directions in message, got %q", out.Message)
	}

	wantNil(t, checkNeighborhoodBoundaries(input(doc, "", model.SectionNeighborhood, model.FieldNeighborhoodBoundaries)))
}

func usageDoc(oneUnit, twoFour, multi, commercial, other string) model.Document {
	return model.Document{
		model.SectionNeighborhood: map[string]any{
			"One-Unit":     oneUnit,
			"2-4 Unit":     twoFour,
			"Multi-Family": multi,
			"Commercial":   commercial,
			"Other":        other,
		},
	}
}

func TestNeighborhoodUsageTotal(t *testing.T) {
	wantMatch(t, checkNeighborhoodUsageTotal(input(usageDoc("80%", "10%", "5%", "5%", ""), "80%", model.SectionNeighborhood, "One-Unit")))
	wantMatch(t, checkNeighborhoodUsageTotal(input(usageDoc("100", "", "", "", ""), "100", model.SectionNeighborhood, "One-Unit")))

	out := checkNeighborhoodUsageTotal(input(usageDoc("80%", "10%", "", "", ""), "80%", model.SectionNeighborhood, "One-Unit"))
	wantError(t, out)
	if !strings.Contains(out.Message, "90") {
		t.Errorf("expected computed total in message, got %q", out.Message)
	}

	// Nothing populated: no opinion
	wantNil(t, checkNeighborhoodUsageTotal(input(usageDoc("", "", "", "", ""), "", model.SectionNeighborhood, "One-Unit")))
}
