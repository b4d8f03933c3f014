package rules

import (
	"math"
	"regexp"
	"strings"

	"github.com/reviewdesk/appraisalint/internal/model"
)

// Improvements family: construction-detail checks and improvements-section
// vs. sales-grid reconciliation.

var (
	conditionKeywords = []string{"avg", "good", "better", "best"}
	typeDetached      = regexp.MustCompile(`(?i)det`)
	typeAttached      = regexp.MustCompile(`(?i)att`)
	gridFinishedSF    = regexp.MustCompile(`(?i)(\d+)\s*sf\s*fin`)
	gridFinishedSFAlt = regexp.MustCompile(`(?i)(\d+)\s*sfin`)
)

func containsConditionKeyword(value string) bool {
	for _, kw := range conditionKeywords {
		if strings.Contains(value, kw) {
			return true
		}
	}
	return false
}

func checkFoundationWalls(in Input) *Outcome {
	if in.Field != model.FieldFoundationWalls {
		return nil
	}
	value := strings.ToLower(trim(in.Value))
	if value == "" {
		return nil
	}
	if containsConditionKeyword(value) {
		return matched()
	}
	return failf("Foundation Walls (Material/Condition) must include one of: 'avg', 'good', 'better', 'best'.")
}

func checkRoofSurface(in Input) *Outcome {
	if in.Field != model.FieldRoofSurface {
		return nil
	}
	value := strings.ToLower(trim(in.Value))
	if value == "" {
		return nil
	}
	if containsConditionKeyword(value) {
		return matched()
	}
	return failf("Roof Surface (Material/Condition) must include one of: 'avg', 'good', 'better', 'best'.")
}

func checkDesignStyleGrid(in Input) *Outcome {
	isImprovementField := len(in.Path) == 1 &&
		(in.Field == model.FieldType || in.Field == model.FieldStories || in.Field == model.FieldDesignStyle)
	isGridField := in.Field == model.FieldDesignStyle && len(in.Path) > 1 && in.Path[0] == model.SectionSubject
	if (!isImprovementField && !isGridField) || !in.hasSubject() {
		return nil
	}

	propType := in.root(model.FieldType)
	stories := in.root(model.FieldStories)
	design := in.root(model.FieldDesignStyle)
	if propType == "" || stories == "" || design == "" {
		return nil
	}

	typeAbbr := propType
	switch {
	case typeDetached.MatchString(propType):
		typeAbbr = "DT"
	case typeAttached.MatchString(propType):
		typeAbbr = "AT"
	}
	expected := typeAbbr + stories + ";" + design

	actual := in.subject(model.FieldDesignStyle)
	if actual == "" {
		return nil
	}
	if !strings.EqualFold(stripSpace(expected), stripSpace(actual)) {
		return failf("Design/Style mismatch. Improvements section implies '%s', but Sales Grid has '%s'.", expected, actual)
	}
	return matched()
}

func checkYearBuiltVsActualAge(in Input) *Outcome {
	isYearBuilt := in.Field == model.FieldYearBuilt && len(in.Path) == 1
	isActualAge := in.Field == model.FieldActualAge && len(in.Path) > 1 && in.Path[0] == model.SectionSubject
	if (!isYearBuilt && !isActualAge) || !in.hasSubject() {
		return nil
	}

	yearBuiltStr := in.root(model.FieldYearBuilt)
	actualAgeStr := in.subject(model.FieldActualAge)
	if yearBuiltStr == "" || actualAgeStr == "" {
		return nil
	}

	yearBuilt, okYear := parseLeadingInt(yearBuiltStr)
	actualAge, okAge := digitsInt(actualAgeStr)
	if !okYear || !okAge {
		return nil
	}

	calculated := timeNow().Year() - yearBuilt
	if abs(calculated-actualAge) > 1 {
		return failf("Age mismatch: Year Built (%d) implies an age of ~%d years, but Actual Age is %d.", yearBuilt, calculated, actualAge)
	}
	return matched()
}

func checkBasementFinished(in Input) *Outcome {
	relevant := strings.Contains(in.Field, model.FieldBasementArea) ||
		strings.Contains(in.Field, model.FieldBasementFinish) ||
		strings.Contains(in.Field, model.FieldBasementGrid)
	if !relevant {
		return nil
	}

	areaStr := in.root(model.FieldBasementArea)
	finishStr := in.root(model.FieldBasementFinish)
	gridValue := in.subject(model.FieldBasementGrid)
	if areaStr == "" || finishStr == "" || gridValue == "" {
		return nil
	}

	area, okArea := parseLooseFloat(areaStr)
	finishPercent, okFinish := parseLooseFloat(finishStr)
	if !okArea || !okFinish || area < 0 {
		return nil
	}

	m := gridFinishedSF.FindStringSubmatch(gridValue)
	if m == nil {
		m = gridFinishedSFAlt.FindStringSubmatch(gridValue)
	}
	if m == nil {
		return nil
	}
	gridFinished, ok := parseLeadingInt(m[1])
	if !ok {
		return nil
	}

	calculated := int(math.Round(area * finishPercent / 100))
	if abs(calculated-gridFinished) > 1 {
		return failf("Basement mismatch: Improvements section implies %dsf finished, but Sales Grid has %dsf.", calculated, gridFinished)
	}
	return matched()
}

func checkConditionDescription(in Input) *Outcome {
	if in.Field != model.FieldCondition || len(in.Path) < 2 || in.Path[0] != model.SectionSubject {
		return nil
	}
	condition := strings.ToLower(trim(in.Value))
	description := strings.ToLower(in.root(model.FieldConditionDescription))
	if condition == "" || description == "" {
		return nil
	}
	if !strings.Contains(description, condition) {
		return failf("The Subject's Condition ('%s') is not mentioned in the 'Describe the condition of the property' field.", in.Value)
	}
	return matched()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
