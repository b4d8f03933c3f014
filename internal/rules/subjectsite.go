package rules

import (
	"regexp"
	"strings"

	"github.com/reviewdesk/appraisalint/internal/model"
)

// Subject/Site family: zoning, FEMA, tax, utility and section-vs-grid
// consistency checks on the subject property.

const escalationMessage = "STOP REVIEW AND ESCALATE TO MANAGER/ CLIENT"

var (
	zoningClassTokens = regexp.MustCompile(`(?i)\b(R1|R2|Residence)\b`)
	highestBestYes    = regexp.MustCompile(`^(y|yes)\b|present use|as improved|as proposed`)
)

func checkZoningCompliance(in Input) *Outcome {
	if in.Field != model.FieldZoningCompliance {
		return nil
	}
	value := trim(in.Value)
	if strings.HasPrefix(value, "Illegal") {
		return failf(escalationMessage)
	}
	switch value {
	case "Legal":
		return matched()
	case "Legal Nonconforming (Grandfathered Use)", "No Zoning":
		if in.root(model.FieldSupplementalAddendum) == "" {
			return failf("Comments are required in 'Supplemental Addendum' when compliance is '%s'.", value)
		}
		// Valid with comments; the caution styling is handled downstream.
		return nil
	}
	if value != "" && !strings.HasPrefix(value, "Legal") && !strings.HasPrefix(value, "No Zoning") {
		return failf("Invalid Zoning Compliance value: '%s'.", value)
	}
	return nil
}

func checkZoningClassification(in Input) *Outcome {
	if in.Field != model.FieldZoningClassification {
		return nil
	}
	value := trim(in.Value)
	if value == "" {
		return nil
	}
	if zoningClassTokens.MatchString(value) {
		return matched()
	}
	return failf("Invalid Specific Zoning Classification: '%s'. Expected to contain R1, R2, or Residence.", value)
}

func checkFEMAHazardZone(in Input) *Outcome {
	if in.Field != model.FieldFEMAHazardArea && in.Field != model.FieldFEMAFloodZone {
		return nil
	}
	hazardArea := strings.ToLower(in.root(model.FieldFEMAHazardArea))
	floodZone := strings.ToUpper(in.root(model.FieldFEMAFloodZone))
	if hazardArea == "" || floodZone == "" {
		return nil
	}
	if hazardArea == "no" && floodZone != "X" && floodZone != "X500" {
		return failf("Hazard Area is 'No', so Flood Zone should be 'X' or 'X500'.")
	}
	if hazardArea == "yes" && floodZone != "A" && floodZone != "AE" {
		return failf("Hazard Area is 'Yes', so Flood Zone should be 'A' or 'AE'.")
	}
	return matched()
}

func checkHighestAndBestUse(in Input) *Outcome {
	if in.Field != model.FieldHighestAndBestUse {
		return nil
	}
	raw := trim(in.Value)
	if raw == "" {
		return nil
	}
	value := strings.ToLower(raw)
	if highestBestYes.MatchString(value) {
		return matched()
	}
	if strings.HasPrefix(value, "no") {
		return failf("Highest & Best Use is not the present use. Please explain in 'SUPPLEMENTAL ADDENDUM'.")
	}
	return failf("Value for 'Highest and Best Use' should be 'Yes' (or 'No' with explanation in 'SUPPLEMENTAL ADDENDUM').")
}

func checkFEMAFieldsRequired(in Input) *Outcome {
	switch in.Field {
	case model.FieldFEMAFloodZone, model.FieldFEMAMapNumber, model.FieldFEMAMapDate:
	default:
		return nil
	}
	hazardArea := in.root(model.FieldFEMAHazardArea)
	value := trim(in.Value)
	if hazardArea != "" && value == "" {
		return failf("'%s' cannot be empty when 'FEMA Special Flood Hazard Area' has a value.", in.Field)
	}
	if hazardArea != "" && value != "" {
		return matched()
	}
	return nil
}

func checkViewConsistency(in Input) *Outcome {
	if in.Field != model.FieldView || !in.hasSubject() {
		return nil
	}
	siteView := in.root(model.FieldView)
	gridView := in.subject(model.FieldView)
	if siteView == "" || gridView == "" {
		return nil
	}
	if stripSpace(siteView) != stripSpace(gridView) {
		return failf("View mismatch: Site section has '%s', but Sales Comparison has '%s'.", siteView, gridView)
	}
	return matched()
}

func checkAreaSiteConsistency(in Input) *Outcome {
	isSiteArea := in.Field == model.FieldArea && len(in.Path) == 1
	isGridSite := in.Field == model.FieldSite && len(in.Path) > 1 && in.Path[0] == model.SectionSubject
	if (!isSiteArea && !isGridSite) || !in.hasSubject() {
		return nil
	}
	siteArea := in.root(model.FieldArea)
	gridSite := in.subject(model.FieldSite)
	if siteArea == "" || gridSite == "" {
		return nil
	}
	if stripSpace(siteArea) != stripSpace(gridSite) {
		return failf("Area/Site mismatch: Site section has '%s', but Sales Comparison has '%s'.", siteArea, gridSite)
	}
	return matched()
}

func checkTaxYear(in Input) *Outcome {
	if in.Field != model.FieldTaxYear {
		return nil
	}
	value := trim(in.Value)
	if value == "" {
		return nil
	}
	taxYear, ok := parseLeadingInt(value)
	if !ok {
		return failf("Tax Year must be a valid year.")
	}
	currentYear := timeNow().Year()
	if taxYear > currentYear {
		return failf("Tax Year (%d) cannot be in the future.", taxYear)
	}
	if taxYear < currentYear-1 {
		return failf("Tax Year (%d) cannot be more than two years in the past.", taxYear)
	}
	return nil
}

func checkRETaxes(in Input) *Outcome {
	if in.Field != model.FieldRETaxes {
		return nil
	}
	value := trim(in.Value)
	if value == "" {
		return nil
	}
	integerPart := strings.ReplaceAll(strings.SplitN(value, ".", 2)[0], ",", "")
	if len(integerPart) > 5 {
		return failf("R.E. Taxes value cannot be more than 5 digits.")
	}
	return nil
}

func checkPropertyRights(in Input) *Outcome {
	if in.Field != model.FieldPropertyRights || !in.hasSubject() {
		return nil
	}
	rights := trim(in.Value)
	gridRights := in.subject(model.FieldLeaseholdFeeSimple)
	if rights == "" || gridRights == "" {
		return nil
	}
	if rights != gridRights {
		return failf("Property Rights mismatch: Subject section has '%s', but Sales Comparison has '%s'.", rights, gridRights)
	}
	return matched()
}

func checkSiteUtilities(in Input) *Outcome {
	utility := false
	for _, f := range model.SiteUtilityFields {
		if in.Field == f {
			utility = true
			break
		}
	}
	if !utility {
		return nil
	}
	if trim(in.Value) == "" {
		return failf("'%s' in the Site section cannot be blank.", in.Field)
	}
	return matched()
}
