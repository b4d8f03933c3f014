package model

// Literal field labels from the appraisal form. Rules compare against these
// constants instead of repeating the prompt text inline, so the catalogue
// stays declarative and the labels can change in one place.
const (
	FieldAssignmentType        = "Assignment Type"
	FieldPhysicalDeficiencies  = "Are there any physical deficiencies or adverse conditions that affect the livability, soundness, or structural integrity of the property? If Yes, describe"
	FieldFinancialAssistanceQ  = "Is there any financial assistance (loan charges, sale concessions, gift or downpayment assistance, etc.) to be paid by any party on behalf of the borrower?"
	FieldFinancialAssistanceAmt = "If Yes, report the total dollar amount and describe the items to be paid"

	FieldZoningCompliance      = "Zoning Compliance"
	FieldZoningClassification  = "Specific Zoning Classification"
	FieldHighestAndBestUse     = "Is the highest and best use of subject property as improved (or as proposed per plans and specifications) the present use?"
	FieldSupplementalAddendum  = "SUPPLEMENTAL ADDENDUM"
	FieldFEMAHazardArea        = "FEMA Special Flood Hazard Area"
	FieldFEMAFloodZone         = "FEMA Flood Zone"
	FieldFEMAMapNumber         = "FEMA Map #"
	FieldFEMAMapDate           = "FEMA Map Date"
	FieldView                  = "View"
	FieldArea                  = "Area"
	FieldSite                  = "Site"
	FieldTaxYear               = "Tax Year"
	FieldRETaxes               = "R.E. Taxes $"
	FieldPropertyRights        = "Property Rights Appraised"
	FieldLeaseholdFeeSimple    = "Leasehold/Fee Simple"
	FieldPropertyAddress       = "Property Address"
	FieldAddress               = "Address"
	FieldSubjectLenderAddress  = "Address (Lender/Client)"
	FieldSubjectLenderName     = "Lender/Client"
	FieldAppraiserLenderAddress = "Lender/Client Company Address"
	FieldAppraiserLenderName   = "Lender/Client Company Name"

	FieldNeighborhoodBoundaries = "Neighborhood Boundaries"
	FieldHousingPrice           = "one unit housing price(high,low,pred)"
	FieldHousingAge             = "one unit housing age(high,low,pred)"

	FieldFoundationWalls    = "Foundation Walls (Material/Condition)"
	FieldRoofSurface        = "Roof Surface (Material/Condition)"
	FieldType               = "Type"
	FieldStories            = "# of Stories"
	FieldDesignStyle        = "Design (Style)"
	FieldYearBuilt          = "Year Built"
	FieldActualAge          = "Actual Age"
	FieldBasementArea       = "Basement Area sq.ft."
	FieldBasementFinish     = "Basement Finish %"
	FieldBasementGrid       = "Basement & Finished"
	FieldConditionDescription = "Describe the condition of the property"

	FieldCondition             = "Condition"
	FieldQualityOfConstruction = "Quality of Construction"
	FieldBedrooms              = "Bedrooms"
	FieldBaths                 = "Baths"
	FieldGrossLivingArea       = "Gross Living Area"
	FieldFunctionalUtility     = "Functional Utility"
	FieldEnergyEfficientItems  = "Energy Efficient Items"
	FieldPorchPatioDeck        = "Porch/Patio/Deck"
	FieldHeatingCooling        = "Heating/Cooling"
	FieldProximityToSubject    = "Proximity to Subject"
	FieldDateOfSale            = "Date of Sale/Time"
	FieldDataSources           = "Data Source(s)"
)

// AdjustmentField returns the label of the signed-dollar adjustment column
// paired with a sales-grid feature field.
func AdjustmentField(feature string) string {
	return feature + " Adjustment"
}

// NeighborhoodUsageFields are the five land-use percentage fields that must
// sum to 100 when any is populated.
var NeighborhoodUsageFields = []string{"One-Unit", "2-4 Unit", "Multi-Family", "Commercial", "Other"}

// SiteUtilityFields are the Site-section utilities that must not be blank.
var SiteUtilityFields = []string{"Electricity", "Gas", "Water", "Sanitary Sewer", "Street", "Alley"}
