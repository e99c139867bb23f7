package incidents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `incident_id,timestamp,repo,file,line,error_name,error_message,top_frame,owners_top3,commit_list,slack_text
a3b2c1d0-1111-2222-3333-444455556666,2026-01-31T17:18:02Z,ichack26/broken_app,src/routes/api.js,17,TypeError,"Cannot read properties of undefined (reading 'id')","src/routes/api.js:17","John:95|Michael:2|Vincent:2","87123b7:install dot.env@Shawn;58eef9a:set up npm run test@Shawn;310342a:Add GitHub API integration@Angela","Crash Reason: TypeError reading 'id' at src/routes/api.js:17."
b4c3d2e1-aaaa-bbbb-cccc-ddddeeeeffff,2026-01-31T17:22:41Z,ichack26/broken_app,src/services/payments.js,25,ReferenceError,"token is not defined","src/services/payments.js:25","Angela:60|Shawn:25|Vincent:15","1e9a8da:add slack dependency@Vincent;cb4a606:add slack service@Angela","Crash Reason: ReferenceError token not defined in payments flow."
`

func TestReadCSV(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "a3b2c1d0-1111-2222-3333-444455556666", first.IncidentID)
	assert.Equal(t, "2026-01-31T17:18:02Z", first.Timestamp)
	assert.Equal(t, "ichack26/broken_app", first.Repo)
	assert.Equal(t, "src/routes/api.js", first.File)
	assert.Equal(t, "17", first.Line)
	assert.Equal(t, "TypeError", first.ErrorName)
	assert.Equal(t, "Cannot read properties of undefined (reading 'id')", first.ErrorMessage)
	assert.Equal(t, "src/routes/api.js:17", first.TopFrame)
	assert.Equal(t, "John:95|Michael:2|Vincent:2", first.OwnersRaw)
	assert.Contains(t, first.CommitListRaw, "310342a:Add GitHub API integration@Angela")
	assert.Equal(t, "Crash Reason: TypeError reading 'id' at src/routes/api.js:17.", first.SlackText)
}

func TestReadCSV_MissingColumnsDefaultToEmpty(t *testing.T) {
	input := "repo,error_name,extra\nsvc-a,TypeError,ignored\nsvc-b\n"

	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{Repo: "svc-a", ErrorName: "TypeError"}, records[0])
	assert.Equal(t, Record{Repo: "svc-b"}, records[1], "Expected short row padded with empty strings")
}

func TestReadCSV_HeaderNormalization(t *testing.T) {
	input := "\uFEFF repo , timestamp\nsvc-a,2024-01-01\n"

	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "svc-a", records[0].Repo)
	assert.Equal(t, "2024-01-01", records[0].Timestamp)
}

func TestReadCSV_Empty(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = ReadCSV(strings.NewReader("repo,timestamp\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNewDataset_SortsRecords(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	dataset := NewDataset("incidents.csv", records)

	assert.Equal(t, 2, dataset.Len())
	assert.Equal(t, "ReferenceError", dataset.Records[0].ErrorName, "Expected newest incident first")
	assert.Equal(t, "incidents.csv", dataset.Source)
	assert.False(t, dataset.LoadedAt.IsZero())
}
