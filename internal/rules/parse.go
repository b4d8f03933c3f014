package rules

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Numeric parsing mirrors the lenient form-field conventions: strip
// currency/noise characters, then take the leading numeric run. Any parse
// failure makes the calling rule indeterminate, never an error.

var (
	numericNoise  = regexp.MustCompile(`[^0-9.\-]+`)
	leadingFloat  = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
	digitsOnly    = regexp.MustCompile(`[^0-9]`)
	signedDecimal = regexp.MustCompile(`-?\d+(\.\d+)?`)
)

func trim(s string) string { return strings.TrimSpace(s) }

// stripSpace removes all whitespace, for textual-match comparisons.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// parseLooseFloat strips everything but digits, '.' and '-', then parses
// the leading number ("$12,500" -> 12500, "29,665 sf" -> 29665).
func parseLooseFloat(s string) (float64, bool) {
	return parseLeadingFloat(numericNoise.ReplaceAllString(s, ""))
}

// parseLeadingFloat parses the leading numeric prefix of s ("0.8 miles"
// -> 0.8) without any stripping.
func parseLeadingFloat(s string) (float64, bool) {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseLeadingInt parses the leading integer prefix of s ("3 bed" -> 3).
func parseLeadingInt(s string) (int, bool) {
	f, ok := parseLeadingFloat(s)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// digitsInt extracts the digits of s and parses them ("C3" -> 3).
func digitsInt(s string) (int, bool) {
	d := digitsOnly.ReplaceAllString(s, "")
	if d == "" {
		return 0, false
	}
	n, err := strconv.Atoi(d)
	if err != nil {
		return 0, false
	}
	return n, true
}

// firstDecimal finds the first signed decimal anywhere in s ("about $2,500
// in closing" has none after the comma split; "2500.50 total" -> 2500.50).
func firstDecimal(s string) (float64, bool) {
	m := signedDecimal.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// adjustmentValue reads a signed-dollar adjustment, treating blank or
// unparsable text as zero, the way the grid does.
func adjustmentValue(s string) float64 {
	f, ok := parseLooseFloat(s)
	if !ok {
		return 0
	}
	return f
}

// isZeroAdjustment reports whether an adjustment cell is the "no
// adjustment" sentinel.
func isZeroAdjustment(s string) bool {
	return s == "" || s == "0" || s == "$0"
}

var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/2006",
	"1/2006",
	"01/02/06",
	"01/06",
}

// parseDate tries the date formats seen in extracted sale dates; failure
// leaves the rule indeterminate.
func parseDate(s string) (time.Time, bool) {
	s = trim(s)
	// Grid dates often carry a settled/contract prefix like "s06/24".
	s = strings.TrimLeft(s, "sc")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
