package rules

import (
	"strings"

	"github.com/reviewdesk/appraisalint/internal/document"
	"github.com/reviewdesk/appraisalint/internal/model"
)

// General family: cross-section requirements that do not belong to one form
// section (transaction type vs. contract data, financial-assistance
// pairing, fixed literal answers).

func checkPhysicalDeficiencies(in Input) *Outcome {
	if in.Field != model.FieldPhysicalDeficiencies {
		return nil
	}
	value := strings.ToLower(trim(in.Value))
	if value == "yes" {
		return matched()
	}
	if value != "" {
		return failf("Value must be 'Yes' for this field.")
	}
	return nil
}

func checkAssignmentType(in Input) *Outcome {
	if in.Field != model.FieldAssignmentType {
		return nil
	}
	assignmentType := strings.ToLower(trim(in.Value))
	switch assignmentType {
	case "purchase transaction":
		if contractSectionEmpty(in.Doc) {
			return failf("Assignment Type is 'Purchase Transaction' then the Contract Section should not be empty.")
		}
		return matched()
	case "refinance transaction":
		if !contractSectionEmpty(in.Doc) {
			return failf("Assignment Type is 'Refinance Transaction' then the Contract Section should be empty.")
		}
		return matched()
	default:
		return nil
	}
}

func checkContractFieldsMandatory(in Input) *Outcome {
	if len(in.Path) == 0 || in.Path[0] != model.SectionContract {
		return nil
	}
	assignmentType := strings.ToLower(in.root(model.FieldAssignmentType))
	if assignmentType != "purchase transaction" {
		return nil
	}
	if trim(in.Value) == "" {
		return failf("This field is mandatory when Assignment Type is 'Purchase Transaction'.")
	}
	return matched()
}

func checkFinancialAssistance(in Input) *Outcome {
	if in.Field != model.FieldFinancialAssistanceQ && in.Field != model.FieldFinancialAssistanceAmt {
		return nil
	}
	if document.Section(in.Doc, model.SectionContract) == nil {
		return nil
	}
	answer := strings.ToLower(in.section(model.SectionContract, model.FieldFinancialAssistanceQ))
	amountText := in.section(model.SectionContract, model.FieldFinancialAssistanceAmt)
	amount, amountOK := firstDecimal(amountText)

	switch answer {
	case "no":
		if amountText != "" && (!amountOK || amount > 0) {
			return failf("Financial assistance is 'No', but the amount is not '0'.")
		}
	case "yes":
		if amountText == "" || !amountOK || amount <= 0 {
			return failf("Financial assistance is 'Yes', but the amount is missing or not greater than 0.")
		}
	}
	if answer != "" && amountText != "" {
		return matched()
	}
	return nil
}

// contractSectionEmpty reports whether the CONTRACT section is absent or
// holds only blank values.
func contractSectionEmpty(doc model.Document) bool {
	contract := document.Section(doc, model.SectionContract)
	if contract == nil {
		return true
	}
	for _, v := range contract {
		if s, ok := v.(string); ok && s != "" {
			return false
		}
	}
	return true
}
