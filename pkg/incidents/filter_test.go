package incidents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func repos(records []Record) []string {
	out := make([]string, len(records))
	for i, record := range records {
		out[i] = record.Repo
	}
	return out
}

func TestFilter(t *testing.T) {
	records := []Record{
		{Repo: "svc-a", ErrorName: "TypeError", ErrorMessage: "Cannot read properties of undefined"},
		{Repo: "svc-b", ErrorName: "ReferenceError", ErrorMessage: "token is not defined"},
		{Repo: "SVC-A", ErrorName: "RangeError", ErrorMessage: "Invalid array length"},
		{Repo: "", ErrorName: "TypeError", ErrorMessage: "x is not a function"},
	}

	tests := []struct {
		name        string
		repoSubstr  string
		errorSubstr string
		expected    []Record
	}{
		{
			name:     "no filters keeps everything",
			expected: records,
		},
		{
			name:       "repo filter is case-insensitive",
			repoSubstr: "svc-a",
			expected:   []Record{records[0], records[2]},
		},
		{
			name:       "empty repo never matches",
			repoSubstr: "svc",
			expected:   []Record{records[0], records[1], records[2]},
		},
		{
			name:        "error filter matches name",
			errorSubstr: "typeerror",
			expected:    []Record{records[0], records[3]},
		},
		{
			name:        "error filter matches message",
			errorSubstr: "TOKEN",
			expected:    []Record{records[1]},
		},
		{
			name:        "filters compose with and",
			repoSubstr:  "svc-a",
			errorSubstr: "range",
			expected:    []Record{records[2]},
		},
		{
			name:        "nothing matches",
			repoSubstr:  "payments",
			errorSubstr: "",
			expected:    []Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(records, tt.repoSubstr, tt.errorSubstr)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFilter_NullMarkerRepoNeverMatches(t *testing.T) {
	records := []Record{{Repo: "nan"}, {Repo: "nan-service"}}
	assert.Equal(t, []string{"nan-service"}, repos(Filter(records, "nan", "")))
}

func TestSortByTimestamp(t *testing.T) {
	records := []Record{
		{Timestamp: "", Repo: "none"},
		{Timestamp: "2024-01-02", Repo: "second"},
		{Timestamp: "bad", Repo: "bad"},
		{Timestamp: "2024-01-01", Repo: "first"},
	}

	sorted := SortByTimestamp(records)

	assert.Equal(t, []string{"second", "first", "none", "bad"}, repos(sorted))
	assert.Equal(t, "none", records[0].Repo, "Expected input slice to be left untouched")
}

func TestSortByTimestamp_MixedLayouts(t *testing.T) {
	records := []Record{
		{Timestamp: "2026-01-31T17:18:02Z", Repo: "a"},
		{Timestamp: "2026-01-31 17:22:41", Repo: "b"},
		{Timestamp: "2026-01-31T19:00:00+02:00", Repo: "c"},
		{Timestamp: "2026-01-31T17:18:02Z", Repo: "d"},
	}

	sorted := SortByTimestamp(records)

	// c is 17:00 UTC; a and d tie and keep their order.
	assert.Equal(t, []string{"b", "a", "d", "c"}, repos(sorted))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "rfc3339", raw: "2026-01-31T17:18:02Z", valid: true},
		{name: "fractional seconds", raw: "2026-01-31T18:50:25.548Z", valid: true},
		{name: "space separated", raw: "2026-01-31 17:18:02", valid: true},
		{name: "date only", raw: "2024-01-02", valid: true},
		{name: "empty", raw: "", valid: false},
		{name: "not a time", raw: "bad", valid: false},
		{name: "null marker", raw: "NaT", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseTimestamp(tt.raw)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestSelect(t *testing.T) {
	records := []Record{{Repo: "a"}, {Repo: "b"}}

	record, ok := Select(records, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", record.Repo)

	_, ok = Select(records, 2)
	assert.False(t, ok)

	_, ok = Select(records, -1)
	assert.False(t, ok)
}
