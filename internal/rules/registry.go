package rules

// Catalogue returns the full rule set in dispatch order. Order is part of
// the contract: families run General, Subject/Site, Neighborhood,
// Improvements, then Sales-Comparison/Appraiser, and within a family rules
// run in the order listed here. The first violating rule decides the
// verdict for an edit.
func Catalogue() []Rule {
	return []Rule{
		{Name: "physical_deficiencies", Family: FamilyGeneral, Check: checkPhysicalDeficiencies},
		{Name: "assignment_type", Family: FamilyGeneral, Check: checkAssignmentType},
		{Name: "contract_fields_mandatory", Family: FamilyGeneral, Check: checkContractFieldsMandatory},
		{Name: "financial_assistance", Family: FamilyGeneral, Check: checkFinancialAssistance},

		{Name: "zoning_compliance", Family: FamilySubjectSite, Check: checkZoningCompliance},
		{Name: "zoning_classification", Family: FamilySubjectSite, Check: checkZoningClassification},
		{Name: "fema_hazard_zone", Family: FamilySubjectSite, Check: checkFEMAHazardZone},
		{Name: "highest_and_best_use", Family: FamilySubjectSite, Check: checkHighestAndBestUse},
		{Name: "fema_fields_required", Family: FamilySubjectSite, Check: checkFEMAFieldsRequired},
		{Name: "view_consistency", Family: FamilySubjectSite, Check: checkViewConsistency},
		{Name: "area_site_consistency", Family: FamilySubjectSite, Check: checkAreaSiteConsistency},
		{Name: "tax_year", Family: FamilySubjectSite, Check: checkTaxYear},
		{Name: "re_taxes", Family: FamilySubjectSite, Check: checkRETaxes},
		{Name: "property_rights", Family: FamilySubjectSite, Check: checkPropertyRights},
		{Name: "site_utilities", Family: FamilySubjectSite, Check: checkSiteUtilities},

		{Name: "housing_price_and_age", Family: FamilyNeighborhood, Check: checkHousingPriceAndAge},
		{Name: "neighborhood_usage_total", Family: FamilyNeighborhood, Check: checkNeighborhoodUsageTotal},
		{Name: "neighborhood_boundaries", Family: FamilyNeighborhood, Check: checkNeighborhoodBoundaries},

		{Name: "foundation_walls", Family: FamilyImprovements, Check: checkFoundationWalls},
		{Name: "roof_surface", Family: FamilyImprovements, Check: checkRoofSurface},
		{Name: "design_style_grid", Family: FamilyImprovements, Check: checkDesignStyleGrid},
		{Name: "year_built_vs_actual_age", Family: FamilyImprovements, Check: checkYearBuiltVsActualAge},
		{Name: "basement_finished", Family: FamilyImprovements, Check: checkBasementFinished},
		{Name: "condition_description", Family: FamilyImprovements, Check: checkConditionDescription},

		{Name: "subject_address", Family: FamilySalesComparison, Check: checkSubjectAddress},
		{Name: "design_style_adjustment", Family: FamilySalesComparison, Check: checkDesignStyleAdjustment},
		{Name: "quality_adjustment", Family: FamilySalesComparison, Check: checkQualityAdjustment},
		{Name: "condition_adjustment", Family: FamilySalesComparison, Check: checkConditionAdjustment},
		{Name: "bedrooms_adjustment", Family: FamilySalesComparison, Check: checkBedroomsAdjustment},
		{Name: "baths_adjustment", Family: FamilySalesComparison, Check: checkBathsAdjustment},
		{Name: "site_adjustment", Family: FamilySalesComparison, Check: checkSiteAdjustment},
		{Name: "gla_adjustment", Family: FamilySalesComparison, Check: checkGLAAdjustment},
		{Name: "functional_utility_adjustment", Family: FamilySalesComparison, Check: checkFunctionalUtilityAdjustment},
		{Name: "energy_items_adjustment", Family: FamilySalesComparison, Check: checkEnergyItemsAdjustment},
		{Name: "porch_patio_deck_adjustment", Family: FamilySalesComparison, Check: checkPorchPatioDeckAdjustment},
		{Name: "heating_cooling_adjustment", Family: FamilySalesComparison, Check: checkHeatingCoolingAdjustment},
		{Name: "proximity_to_subject", Family: FamilySalesComparison, Check: checkProximityToSubject},
		{Name: "date_of_sale", Family: FamilySalesComparison, Check: checkDateOfSale},
		{Name: "data_source_dom", Family: FamilySalesComparison, Check: checkDataSourceDOM},
		{Name: "actual_age_adjustment", Family: FamilySalesComparison, Check: checkActualAgeAdjustment},
		{Name: "leasehold_fee_simple", Family: FamilySalesComparison, Check: checkLeaseholdFeeSimple},
		{Name: "comp_design_style", Family: FamilySalesComparison, Check: checkCompDesignStyle},
		{Name: "lender_address", Family: FamilySalesComparison, Check: checkLenderAddress},
		{Name: "lender_name", Family: FamilySalesComparison, Check: checkLenderName},
	}
}
