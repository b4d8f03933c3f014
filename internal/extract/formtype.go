package extract

import "fmt"

// FormTypes are the appraisal form revisions the extraction service
// understands.
var FormTypes = []string{"1004", "1007", "1073"}

// ValidateFormType rejects form types the service does not support.
func ValidateFormType(formType string) error {
	for _, ft := range FormTypes {
		if formType == ft {
			return nil
		}
	}
	return fmt.Errorf("unsupported form type %q (supported: 1004, 1007, 1073)", formType)
}
