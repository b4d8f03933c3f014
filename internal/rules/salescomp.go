package rules

import (
	"strings"

	"github.com/reviewdesk/appraisalint/internal/model"
)

// Sales-Comparison/Appraiser family: the paired feature-vs-adjustment
// contracts over the sales grid, plus the standalone grid checks and the
// appraiser/lender reconciliations.
//
// The shared shape: equal feature means the adjustment must be zero or
// absent; a comp inferior to the Subject calls for a positive adjustment; a
// comp superior to it calls for a negative one. The condition and quality
// numeric scales are inverted (lower number is better).

// gridPair reports whether the edit touches feature or its paired
// adjustment column and the inputs needed for a grid comparison exist.
func (in Input) gridPair(feature string) bool {
	if in.Field != feature && in.Field != model.AdjustmentField(feature) {
		return false
	}
	return in.CompKey != "" && in.hasSubject()
}

func checkSubjectAddress(in Input) *Outcome {
	if in.Field != model.FieldPropertyAddress && in.Field != model.FieldAddress {
		return nil
	}
	if !in.hasSubject() {
		return nil
	}
	if in.Field == model.FieldAddress && (len(in.Path) < 2 || in.Path[0] != model.SectionSubject) {
		return nil
	}
	mainAddress := in.root(model.FieldPropertyAddress)
	gridAddress := in.subject(model.FieldAddress)
	if mainAddress != "" && gridAddress != "" && mainAddress != gridAddress {
		return failf("Subject Address mismatch: Subject section has '%s', but Sales Comparison has '%s'.", mainAddress, gridAddress)
	}
	return matched()
}

func checkDesignStyleAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldDesignStyle) {
		return nil
	}
	subjectDesign := in.subject(model.FieldDesignStyle)
	compDesign := in.comp(model.FieldDesignStyle)
	adjustment := in.comp(model.AdjustmentField(model.FieldDesignStyle))

	if subjectDesign != "" && compDesign != "" {
		different := stripSpace(subjectDesign) != stripSpace(compDesign)
		if different && isZeroAdjustment(adjustment) {
			return failf("Design/Style mismatch (Subject: '%s', Comp: '%s'). An adjustment is required.", subjectDesign, compDesign)
		}
	}
	return matched()
}

func checkQualityAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldQualityOfConstruction) {
		return nil
	}
	subjectQoC := strings.ToUpper(in.subject(model.FieldQualityOfConstruction))
	compQoC := strings.ToUpper(in.comp(model.FieldQualityOfConstruction))
	if subjectQoC == "" || compQoC == "" {
		return nil
	}
	adjustment := adjustmentValue(in.comp(model.AdjustmentField(model.FieldQualityOfConstruction)))

	// C#/Q# formats; lower number is better quality.
	subjectNum, okSubject := digitsInt(subjectQoC)
	compNum, okComp := digitsInt(compQoC)
	if !okSubject || !okComp {
		return nil
	}

	switch {
	case subjectNum == compNum:
		if adjustment != 0 {
			return failf("Warning: Quality is the same (%s), but adjustment is not $0.", subjectQoC)
		}
	case subjectNum > compNum: // Subject is inferior
		if adjustment > 0 {
			return failf("Warning: Subject (%s) is inferior to Comp (%s), so a negative adjustment is expected.", subjectQoC, compQoC)
		}
	default: // Subject is superior
		if adjustment < 0 {
			return failf("Warning: Subject (%s) is superior to Comp (%s), so a positive adjustment is expected.", subjectQoC, compQoC)
		}
	}
	return matched()
}

func checkConditionAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldCondition) {
		return nil
	}
	subjectCondition := strings.ToUpper(in.subject(model.FieldCondition))
	compCondition := strings.ToUpper(in.comp(model.FieldCondition))
	if subjectCondition == "" || compCondition == "" {
		return nil
	}
	adjustment := adjustmentValue(in.comp(model.AdjustmentField(model.FieldCondition)))

	subjectNum, okSubject := digitsInt(subjectCondition)
	compNum, okComp := digitsInt(compCondition)
	if !okSubject || !okComp {
		return nil
	}

	switch {
	case subjectNum == compNum:
		if adjustment != 0 {
			return failf("Warning: Condition is the same (%s), but adjustment is not $0.", subjectCondition)
		}
	case subjectNum > compNum: // Subject is inferior
		if adjustment > 0 {
			return failf("Warning: Subject condition (%s) is inferior to Comp (%s), so a negative adjustment is expected.", subjectCondition, compCondition)
		}
	default:
		if adjustment < 0 {
			return failf("Warning: Subject condition (%s) is superior to Comp (%s), so a positive adjustment is expected.", subjectCondition, compCondition)
		}
	}
	return matched()
}

func checkBedroomsAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldBedrooms) {
		return nil
	}
	subjectBedrooms, okSubject := parseLeadingInt(orZero(in.subject(model.FieldBedrooms)))
	compBedrooms, okComp := parseLeadingInt(orZero(in.comp(model.FieldBedrooms)))
	if !okSubject || !okComp {
		return nil
	}
	adjustmentText := in.comp(model.AdjustmentField(model.FieldBedrooms))
	adjustment := adjustmentValue(adjustmentText)

	switch {
	case subjectBedrooms == compBedrooms:
		if adjustment != 0 && adjustmentText != "" {
			return failf("Warning: Bedroom count is the same (%d), but adjustment is not $0.", subjectBedrooms)
		}
	case compBedrooms < subjectBedrooms:
		if adjustment < 0 {
			return failf("Warning: Comp has fewer bedrooms (%d) than Subject (%d), but adjustment is missing or not positive.", compBedrooms, subjectBedrooms)
		}
	default:
		if adjustment > 0 {
			return failf("Warning: Comp has more bedrooms (%d) than Subject (%d), but adjustment is not negative.", compBedrooms, subjectBedrooms)
		}
	}
	return matched()
}

func checkBathsAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldBaths) {
		return nil
	}
	subjectBaths, okSubject := parseLeadingFloat(orZero(in.subject(model.FieldBaths)))
	compBaths, okComp := parseLeadingFloat(orZero(in.comp(model.FieldBaths)))
	if !okSubject || !okComp {
		return nil
	}
	adjustmentText := in.comp(model.AdjustmentField(model.FieldBaths))
	adjustment := adjustmentValue(adjustmentText)

	switch {
	case subjectBaths == compBaths:
		if adjustment != 0 && adjustmentText != "" {
			return failf("Warning: Bath count is the same (%v), but adjustment is not $0.", subjectBaths)
		}
	case compBaths < subjectBaths:
		if adjustment < 0 {
			return failf("Warning: Comp has fewer baths (%v) than Subject (%v), but adjustment is missing or not positive.", compBaths, subjectBaths)
		}
	}
	// A comp with more baths than the Subject is accepted either way.
	return matched()
}

func checkSiteAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldSite) {
		return nil
	}
	subjectText := in.subject(model.FieldSite)
	compText := in.comp(model.FieldSite)
	if subjectText == "" || compText == "" {
		return nil
	}
	subjectSite, okSubject := parseLooseFloat(subjectText)
	compSite, okComp := parseLooseFloat(compText)
	if !okSubject || !okComp {
		return nil
	}
	adjustment, adjustmentOK := parseLooseFloat(in.comp(model.AdjustmentField(model.FieldSite)))

	if compSite > subjectSite && (!adjustmentOK || adjustment > 0) {
		return failf("Warning: Comp site value (%s) is superior to Subject (%s), but adjustment is not negative.", compText, subjectText)
	}
	if compSite < subjectSite && (!adjustmentOK || adjustment < 0) {
		return failf("Warning: Comp site value (%s) is inferior to Subject (%s), but adjustment is not positive.", compText, subjectText)
	}
	return matched()
}

func checkGLAAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldGrossLivingArea) {
		return nil
	}
	subjectText := in.subject(model.FieldGrossLivingArea)
	compText := in.comp(model.FieldGrossLivingArea)
	if subjectText == "" || compText == "" {
		return nil
	}
	subjectGLA, okSubject := parseLooseFloat(subjectText)
	compGLA, okComp := parseLooseFloat(compText)
	if !okSubject || !okComp {
		return nil
	}
	adjustment, adjustmentOK := parseLooseFloat(in.comp(model.AdjustmentField(model.FieldGrossLivingArea)))

	if compGLA > subjectGLA && (!adjustmentOK || adjustment > 0) {
		return failf("Warning: Comp GLA (%s) is superior to Subject (%s), but adjustment is not negative.", compText, subjectText)
	}
	if compGLA < subjectGLA && (!adjustmentOK || adjustment < 0) {
		return failf("Warning: Comp GLA (%s) is inferior to Subject (%s), but adjustment is not positive.", compText, subjectText)
	}
	return matched()
}

func checkFunctionalUtilityAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldFunctionalUtility) {
		return nil
	}
	subjectFU := in.subject(model.FieldFunctionalUtility)
	compFU := in.comp(model.FieldFunctionalUtility)
	if subjectFU == "" || compFU == "" {
		return nil
	}
	adjustment := in.comp(model.AdjustmentField(model.FieldFunctionalUtility))

	if subjectFU == compFU {
		if !isZeroAdjustment(adjustment) {
			return failf("Warning: Functional Utility is the same (%s), but adjustment is not $0.", subjectFU)
		}
	} else if isZeroAdjustment(adjustment) {
		return failf("Warning: Functional Utility differs (Subject: '%s', Comp: '%s'), but no adjustment is made.", subjectFU, compFU)
	}
	return matched()
}

func checkEnergyItemsAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldEnergyEfficientItems) {
		return nil
	}
	subjectItems := in.subject(model.FieldEnergyEfficientItems)
	compItems := in.comp(model.FieldEnergyEfficientItems)
	if subjectItems == "" && compItems == "" {
		return nil
	}
	adjustment := in.comp(model.AdjustmentField(model.FieldEnergyEfficientItems))

	if subjectItems == compItems {
		if !isZeroAdjustment(adjustment) {
			return failf("Warning: Energy Efficient Items are the same, but adjustment is not $0.")
		}
	} else if isZeroAdjustment(adjustment) {
		return failf("Warning: Energy Efficient Items differ (Subject: '%s', Comp: '%s'), but no adjustment is made.", subjectItems, compItems)
	}
	return matched()
}

func checkPorchPatioDeckAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldPorchPatioDeck) {
		return nil
	}
	subjectItems := in.subject(model.FieldPorchPatioDeck)
	compItems := in.comp(model.FieldPorchPatioDeck)
	adjustment := in.comp(model.AdjustmentField(model.FieldPorchPatioDeck))
	if subjectItems == "" && compItems == "" && adjustment == "" {
		return nil
	}

	if subjectItems == compItems {
		if !isZeroAdjustment(adjustment) {
			return failf("Warning: Porch/Patio/Deck are the same, but adjustment is not $0.")
		}
	} else if isZeroAdjustment(adjustment) {
		return failf("Warning: Porch/Patio/Deck differ (Subject: '%s', Comp: '%s'), but no adjustment is made.", subjectItems, compItems)
	}
	return matched()
}

func checkHeatingCoolingAdjustment(in Input) *Outcome {
	if !in.gridPair(model.FieldHeatingCooling) {
		return nil
	}
	subjectHC := in.subject(model.FieldHeatingCooling)
	compHC := in.comp(model.FieldHeatingCooling)
	if subjectHC == "" || compHC == "" {
		return nil
	}
	adjustment := in.comp(model.AdjustmentField(model.FieldHeatingCooling))

	if subjectHC == compHC {
		if !isZeroAdjustment(adjustment) {
			return failf("Heating/Cooling is the same (%s), but an adjustment of '%s' is present.", compHC, adjustment)
		}
	} else if adjustment == "" {
		return failf("Heating/Cooling mismatch (Subject: '%s', Comp: '%s'). An adjustment is required.", subjectHC, compHC)
	}
	return matched()
}

func checkProximityToSubject(in Input) *Outcome {
	if in.Field != model.FieldProximityToSubject || in.CompKey == "" || !in.hasSubject() {
		return nil
	}
	proximityText := trim(in.Value)
	if proximityText == "" {
		return nil
	}
	proximity, ok := parseLeadingFloat(proximityText)
	if !ok {
		return nil
	}
	if proximity > 1 {
		return failf("Proximity to Subject (%s) should not be greater than 1.0 miles.", proximityText)
	}
	return matched()
}

func checkDateOfSale(in Input) *Outcome {
	if in.Field != model.FieldDateOfSale || in.CompKey == "" || in.CompKey == model.SectionSubject {
		return nil
	}
	compDateStr := trim(in.Value)
	if compDateStr == "" {
		return nil
	}
	compDate, ok := parseDate(compDateStr)
	if !ok {
		return nil
	}

	for _, key := range model.ComparableKeys(in.Doc) {
		if key == in.CompKey {
			continue
		}
		otherStr := in.section(key, model.FieldDateOfSale)
		if otherStr == "" {
			continue
		}
		otherDate, ok := parseDate(otherStr)
		if !ok {
			continue
		}
		diff := compDate.Sub(otherDate)
		if diff < 0 {
			diff = -diff
		}
		// 30.44 days: average month length.
		months := diff.Hours() / 24 / 30.44
		if months > 12 {
			return failf("Sale date is more than 12 months apart from %s (%s).", key, otherStr)
		}
	}
	return matched()
}

func checkDataSourceDOM(in Input) *Outcome {
	if in.Field != model.FieldDataSources || in.CompKey == "" || in.CompKey == model.SectionSubject {
		return nil
	}
	value := trim(in.Value)
	if value == "" {
		return nil
	}
	domIndex := strings.Index(strings.ToLower(value), "dom")
	if domIndex != -1 {
		rest := trim(value[domIndex+3:])
		rest = strings.Map(func(r rune) rune {
			if r == ':' || r == ' ' || r == '\t' || r == '\n' {
				return -1
			}
			return r
		}, rest)
		if rest == "" {
			return failf("Value for 'DOM' is missing in Data Source(s).")
		}
	}
	return matched()
}

func checkActualAgeAdjustment(in Input) *Outcome {
	if in.Field != model.AdjustmentField(model.FieldActualAge) {
		return nil
	}
	if in.CompKey == "" || in.CompKey == model.SectionSubject || !in.hasSubject() {
		return nil
	}
	subjectAgeStr := in.subject(model.FieldActualAge)
	compAgeStr := in.comp(model.FieldActualAge)
	adjustment := trim(in.Value)
	if subjectAgeStr == "" || compAgeStr == "" {
		return nil
	}

	subjectAge, okSubject := parseLeadingInt(subjectAgeStr)
	compAge, okComp := parseLeadingInt(compAgeStr)
	if !okSubject || !okComp {
		return nil
	}

	if subjectAge == compAge {
		if !isZeroAdjustment(adjustment) {
			return failf("Subject and Comp Actual Age are the same (%d), so no adjustment is needed.", subjectAge)
		}
	} else if isZeroAdjustment(adjustment) {
		return failf("Subject and Comp Actual Age are different, so an adjustment is required.")
	}
	return matched()
}

func checkLeaseholdFeeSimple(in Input) *Outcome {
	if in.Field != model.FieldLeaseholdFeeSimple {
		return nil
	}
	keys := append([]string{model.SectionSubject}, model.ComparableKeys(in.Doc)...)

	var values []string
	for _, key := range keys {
		v := in.section(key, model.FieldLeaseholdFeeSimple)
		if v == "" && key == model.SectionSubject {
			v = in.subject(model.FieldPropertyRights)
		}
		if v != "" {
			values = append(values, v)
		}
	}
	if len(values) < 2 {
		return nil
	}

	unique := map[string]struct{}{}
	for _, v := range values {
		unique[v] = struct{}{}
	}
	if len(unique) > 1 {
		return failf("Inconsistent 'Leasehold/Fee Simple' values found across Subject and Comparables.")
	}
	return matched()
}

// checkCompDesignStyle is a guarded placeholder: the comparison it should
// perform was never specified, so it deliberately holds no opinion.
func checkCompDesignStyle(in Input) *Outcome {
	if in.Field != model.FieldDesignStyle || in.CompKey == "" || in.CompKey == model.SectionSubject || !in.hasSubject() {
		return nil
	}
	return nil
}

func checkLenderAddress(in Input) *Outcome {
	if in.Field != model.FieldSubjectLenderAddress && in.Field != model.FieldAppraiserLenderAddress {
		return nil
	}
	subjectAddress := in.root(model.FieldSubjectLenderAddress)
	appraiserAddress := in.root(model.FieldAppraiserLenderAddress)
	if subjectAddress != "" && appraiserAddress != "" && subjectAddress != appraiserAddress {
		return failf("Lender Address mismatch: Subject section has '%s', but Appraiser section has '%s'.", subjectAddress, appraiserAddress)
	}
	return matched()
}

func checkLenderName(in Input) *Outcome {
	if in.Field != model.FieldSubjectLenderName {
		return nil
	}
	subjectName := trim(in.Value)
	appraiserName := in.root(model.FieldAppraiserLenderName)
	if subjectName != "" && appraiserName != "" && subjectName != appraiserName {
		return failf("Lender/Client mismatch: Subject section has '%s', but Appraiser section has '%s'.", subjectName, appraiserName)
	}
	return matched()
}
