package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reviewdesk/appraisalint/internal/document"
	"github.com/reviewdesk/appraisalint/internal/model"
)

// Neighborhood family: land-use percentages, the one-unit housing
// high/low/pred triples, and boundary descriptions.

func checkHousingPriceAndAge(in Input) *Outcome {
	if in.Field != model.FieldHousingPrice && in.Field != model.FieldHousingAge {
		return nil
	}
	neighborhood := document.Section(in.Doc, model.SectionNeighborhood)
	if neighborhood == nil {
		return nil
	}
	triple, ok := neighborhood[in.Field].(map[string]any)
	if !ok {
		return nil
	}

	rawHigh, rawLow, rawPred := tripleValue(triple, "high"), tripleValue(triple, "low"), tripleValue(triple, "pred")
	high, okHigh := parseLooseFloat(orZero(rawHigh))
	low, okLow := parseLooseFloat(orZero(rawLow))
	pred, okPred := parseLooseFloat(orZero(rawPred))
	if !okHigh || !okLow || !okPred {
		return nil
	}

	if !(high >= pred && pred >= low) {
		name := "Age"
		if strings.Contains(in.Field, "price") {
			name = "Price"
		}
		return failf("%s values are inconsistent. Expected High >= Predominant >= Low. (High: %s, Pred: %s, Low: %s)", name, rawHigh, rawPred, rawLow)
	}
	return matched()
}

func checkNeighborhoodBoundaries(in Input) *Outcome {
	if in.Field != model.FieldNeighborhoodBoundaries {
		return nil
	}
	value := strings.ToLower(in.Value)
	if trim(value) == "" {
		return nil
	}
	var missing []string
	for _, direction := range []string{"north", "south", "east", "west"} {
		if !strings.Contains(value, direction) {
			missing = append(missing, strings.ToUpper(direction))
		}
	}
	if len(missing) > 0 {
		return failf("Neighborhood Boundaries is missing required directions: %s.", strings.Join(missing, ", "))
	}
	return matched()
}

func checkNeighborhoodUsageTotal(in Input) *Outcome {
	usage := false
	for _, f := range model.NeighborhoodUsageFields {
		if in.Field == f {
			usage = true
			break
		}
	}
	if !usage {
		return nil
	}
	neighborhood := document.Section(in.Doc, model.SectionNeighborhood)
	if neighborhood == nil {
		return nil
	}

	total := 0.0
	populated := false
	for _, f := range model.NeighborhoodUsageFields {
		raw, _ := neighborhood[f].(string)
		if raw != "" {
			populated = true
		}
		v, ok := parseLeadingFloat(trim(strings.Replace(orZero(raw), "%", "", 1)))
		if ok {
			total += v
		}
	}
	if !populated {
		return nil
	}
	if total != 100 {
		return failf("Neighborhood usage total is %s%%, not 100%%.", strconv.FormatFloat(total, 'f', -1, 64))
	}
	return matched()
}

// tripleValue reads one leg of a high/low/pred triple, tolerating numeric
// JSON leaves.
func tripleValue(triple map[string]any, key string) string {
	switch v := triple[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// orZero substitutes "0" for a blank numeric field.
func orZero(s string) string {
	if trim(s) == "" {
		return "0"
	}
	return s
}
