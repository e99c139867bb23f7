package incidents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		records  []Record
		expected Summary
	}{
		{
			name:     "no records",
			records:  nil,
			expected: Summary{Latest: "—"},
		},
		{
			name: "distinct repos and error types",
			records: []Record{
				{Timestamp: "2026-01-31T17:22:41Z", Repo: "svc-a", ErrorName: "TypeError"},
				{Timestamp: "2026-01-31T17:18:02Z", Repo: "svc-a", ErrorName: "ReferenceError"},
				{Timestamp: "", Repo: "", ErrorName: "TypeError"},
			},
			expected: Summary{Incidents: 3, ReposAffected: 1, ErrorTypes: 2, Latest: "2026-01-31T17:22:41Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Summarize(tt.records))
		})
	}
}

func TestLabel(t *testing.T) {
	record := Record{
		Timestamp:    "2026-01-31T17:18:02Z",
		Repo:         "ichack26/broken_app",
		ErrorName:    "TypeError",
		ErrorMessage: strings.Repeat("é", 70),
	}

	label := Label(record)

	assert.Equal(t, "2026-01-31T17:18:02Z — ichack26/broken_app — TypeError: "+strings.Repeat("é", 60), label)
}

func TestOwnerShares(t *testing.T) {
	shares := OwnerShares(ParseOwners("John:95|Michael:bad|Over:150"))

	require.Len(t, shares, 3)
	assert.Equal(t, "John — 95%", shares[0].Label)
	assert.InDelta(t, 0.95, shares[0].Progress, 1e-9)
	assert.Equal(t, "Michael", shares[1].Label)
	assert.Nil(t, shares[1].Percent)
	assert.Equal(t, 1.0, shares[2].Progress)
}

func TestBuildView(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	dataset := NewDataset("incidents.csv", records)

	tests := []struct {
		name          string
		query         Query
		expectedRows  int
		expectedIndex int
		expectedError string
	}{
		{
			name:          "default selects first row",
			query:         Query{},
			expectedRows:  2,
			expectedIndex: 0,
			expectedError: "ReferenceError",
		},
		{
			name:          "explicit selection",
			query:         Query{Selected: 1},
			expectedRows:  2,
			expectedIndex: 1,
			expectedError: "TypeError",
		},
		{
			name:          "out of range selection falls back",
			query:         Query{Selected: 9},
			expectedRows:  2,
			expectedIndex: 0,
			expectedError: "ReferenceError",
		},
		{
			name:          "error filter",
			query:         Query{Error: "undefined"},
			expectedRows:  1,
			expectedIndex: 0,
			expectedError: "TypeError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildView(dataset.Records, tt.query)

			assert.Len(t, view.Rows, tt.expectedRows)
			assert.Len(t, view.Labels, tt.expectedRows)
			assert.Equal(t, tt.expectedRows, view.Summary.Incidents)
			require.NotNil(t, view.Selected)
			assert.Equal(t, tt.expectedIndex, view.Selected.Index)
			assert.Equal(t, tt.expectedIndex, view.Query.Selected)
			assert.Equal(t, tt.expectedError, view.Selected.Record.ErrorName)
		})
	}
}

func TestBuildView_Detail(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	view := BuildView(SortByTimestamp(records), Query{Error: "TypeError"})
	require.NotNil(t, view.Selected)

	detail := view.Selected
	assert.Equal(t, "src/routes/api.js:17", detail.Location)
	require.Len(t, detail.Owners, 3)
	assert.Equal(t, "John", detail.Owners[0].Name)
	require.Len(t, detail.Commits, 3)
	assert.Equal(t, CommitEntry{SHA: "87123b7", Message: "install dot.env", Author: "Shawn"}, detail.Commits[0])
}

func TestBuildView_EmptyResult(t *testing.T) {
	view := BuildView([]Record{{Repo: "svc-a"}}, Query{Repo: "svc-z"})

	assert.Empty(t, view.Rows)
	assert.Nil(t, view.Selected)
	assert.Equal(t, "—", view.Summary.Latest)
}
