package incidents

import (
	"sort"
	"strings"
)

// SortByTimestamp returns a copy of records ordered newest first. Records
// whose timestamp is missing or unparseable come after every dated record and
// keep their original relative order.
func SortByTimestamp(records []Record) []Record {
	type keyed struct {
		record Record
		ts     int64
		valid  bool
	}

	items := make([]keyed, len(records))
	for i, record := range records {
		ts, ok := ParseTimestamp(record.Timestamp)
		items[i] = keyed{record: record, ts: ts.UnixNano(), valid: ok}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.valid != b.valid {
			return a.valid
		}
		if !a.valid {
			return false
		}
		return a.ts > b.ts
	})

	sorted := make([]Record, len(items))
	for i, item := range items {
		sorted[i] = item.record
	}
	return sorted
}

// Filter keeps the records matching both substrings, case-insensitively.
// repoSubstr is matched against Repo; errorSubstr is matched against
// ErrorName or ErrorMessage. An empty substring does not filter. Relative
// order is preserved and the result is never nil.
func Filter(records []Record, repoSubstr, errorSubstr string) []Record {
	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if repoSubstr != "" && !containsFold(record.Repo, repoSubstr) {
			continue
		}
		if errorSubstr != "" &&
			!containsFold(record.ErrorName, errorSubstr) &&
			!containsFold(record.ErrorMessage, errorSubstr) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// containsFold reports whether substr is within s ignoring case. A missing
// value never matches.
func containsFold(s, substr string) bool {
	if isMissing(s) {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Select returns the record at index, or false when index is out of range.
func Select(records []Record, index int) (Record, bool) {
	if index < 0 || index >= len(records) {
		return Record{}, false
	}
	return records[index], true
}
