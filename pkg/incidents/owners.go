package incidents

import (
	"math"
	"strconv"
	"strings"
)

const (
	// ownerSeparator separates ranked owners in the owners_top3 column
	ownerSeparator = "|"

	// EmptyPlaceholder is rendered wherever a derived value is empty
	EmptyPlaceholder = "—"

	// ownerSummarySeparator joins owners in a one-line summary
	ownerSummarySeparator = " · "
)

// nullMarkers are the spellings spreadsheet and dataframe exports use for an
// empty cell, lower-cased. The list follows the pandas default na_values.
var nullMarkers = map[string]struct{}{
	"#n/a":     {},
	"#n/a n/a": {},
	"#na":      {},
	"-1.#ind":  {},
	"-1.#qnan": {},
	"-nan":     {},
	"1.#ind":   {},
	"1.#qnan":  {},
	"<na>":     {},
	"n/a":      {},
	"na":       {},
	"nan":      {},
	"nat":      {},
	"none":     {},
	"null":     {},
}

// isMissing reports whether a raw field carries no value at all.
func isMissing(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return true
	}
	_, ok := nullMarkers[strings.ToLower(trimmed)]
	return ok
}

// ParseOwners parses an ownership list of the form "name:pct|name:pct".
// Segments without a ":" are dropped. A percent that does not parse as a
// finite number is recorded as absent while the name is kept. The result
// preserves input order and is never nil.
func ParseOwners(raw string) []OwnerEntry {
	owners := make([]OwnerEntry, 0)
	if isMissing(raw) {
		return owners
	}

	for _, segment := range strings.Split(raw, ownerSeparator) {
		name, pctText, found := strings.Cut(segment, ":")
		if !found {
			continue
		}
		owners = append(owners, OwnerEntry{
			Name:    strings.TrimSpace(name),
			Percent: parsePercent(pctText),
		})
	}

	return owners
}

func parsePercent(text string) *float64 {
	pct, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return nil
	}
	return &pct
}

// FormatOwnerSummary renders owners on one line, e.g. "John 95% · Michael 2%".
// Percents are truncated to whole numbers; owners without a percent are shown
// by name only.
func FormatOwnerSummary(owners []OwnerEntry) string {
	if len(owners) == 0 {
		return EmptyPlaceholder
	}

	parts := make([]string, 0, len(owners))
	for _, owner := range owners {
		if owner.Percent == nil {
			parts = append(parts, owner.Name)
			continue
		}
		parts = append(parts, owner.Name+" "+formatPercent(*owner.Percent))
	}

	return strings.Join(parts, ownerSummarySeparator)
}

// formatPercent renders a share as a whole-number percentage.
func formatPercent(pct float64) string {
	return strconv.FormatInt(int64(math.Trunc(pct)), 10) + "%"
}

// ProgressFraction converts an owner's percent to a [0,1] progress value.
func ProgressFraction(pct float64) float64 {
	return math.Min(math.Max(pct/100.0, 0.0), 1.0)
}
