package model

import (
	"regexp"
	"sort"
)

// Document is the full in-memory state of an appraisal report: a tree of
// string-keyed mappings whose leaves are strings (occasionally a nested
// mapping of high/low/pred sub-fields). Top-level keys are either flat
// report fields, named sections (CONTRACT, NEIGHBORHOOD, ...) or sales-grid
// columns (Subject, COMPARABLE SALE #N).
type Document map[string]any

// FieldPath locates a leaf value in a Document: [field] for root fields,
// [section, field] for sectioned fields, [compKey, field] for grid fields.
type FieldPath []string

// Field returns the final path segment, the field id rules key off.
func (p FieldPath) Field() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Section keys for nested sub-sections of the document.
const (
	SectionSubject          = "Subject"
	SectionContract         = "CONTRACT"
	SectionNeighborhood     = "NEIGHBORHOOD"
	SectionMarketConditions = "MARKET_CONDITIONS"
	SectionImageAnalysis    = "IMAGE_ANALYSIS"
)

var comparableKeyPattern = regexp.MustCompile(`^COMPARABLE SALE #\d+$`)

// IsComparableKey reports whether key names one of the comparable-sale
// columns of the sales grid.
func IsComparableKey(key string) bool {
	return comparableKeyPattern.MatchString(key)
}

// ComparableKeyOf derives the comparable/section context a grid rule needs
// from a field path. It returns the first path segment when that segment is
// the Subject column or a comparable column, and "" otherwise.
func ComparableKeyOf(path FieldPath) string {
	if len(path) < 2 {
		return ""
	}
	if path[0] == SectionSubject || IsComparableKey(path[0]) {
		return path[0]
	}
	return ""
}

// ComparableKeys returns every comparable-sale key present in the document,
// in grid order.
func ComparableKeys(doc Document) []string {
	var keys []string
	for k := range doc {
		if IsComparableKey(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
