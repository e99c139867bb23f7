// Package incidents turns rows of an incident CSV export into clean records.
// It owns the field-level parsers for ownership and commit lists, the
// timestamp ordering and the repo/error filters used by the dashboard.
package incidents

import "time"

// CSV column names recognized by the loader. Any of them may be absent from
// the file; absent columns are read as empty strings.
const (
	ColumnTimestamp    = "timestamp"
	ColumnRepo         = "repo"
	ColumnFile         = "file"
	ColumnLine         = "line"
	ColumnErrorName    = "error_name"
	ColumnErrorMessage = "error_message"
	ColumnTopFrame     = "top_frame"
	ColumnOwners       = "owners_top3"
	ColumnCommitList   = "commit_list"
	ColumnSlackText    = "slack_text"
	ColumnIncidentID   = "incident_id"
)

// Columns lists every recognized column in display order.
var Columns = []string{
	ColumnTimestamp,
	ColumnRepo,
	ColumnFile,
	ColumnLine,
	ColumnErrorName,
	ColumnErrorMessage,
	ColumnTopFrame,
	ColumnOwners,
	ColumnCommitList,
	ColumnSlackText,
	ColumnIncidentID,
}

// Record is a single incident row. Records are immutable once loaded.
type Record struct {
	// Timestamp is the raw timestamp text (e.g., "2026-01-31T17:18:02Z")
	Timestamp string `json:"timestamp"`

	// Repo is the repository the incident was raised in (e.g., "ichack26/broken_app")
	Repo string `json:"repo"`

	// File and Line locate the failing code
	File string `json:"file"`
	Line string `json:"line"`

	// ErrorName is the error class (e.g., "TypeError")
	ErrorName string `json:"error_name"`

	// ErrorMessage is the error text as reported
	ErrorMessage string `json:"error_message"`

	// TopFrame is the most relevant stack frame, when known
	TopFrame string `json:"top_frame,omitempty"`

	// OwnersRaw holds the "name:pct|name:pct" ownership list
	OwnersRaw string `json:"owners_top3"`

	// CommitListRaw holds the "sha:message@author;..." commit log
	CommitListRaw string `json:"commit_list"`

	// SlackText is the free-text summary posted for the incident
	SlackText string `json:"slack_text"`

	// IncidentID is the producer-assigned identifier
	IncidentID string `json:"incident_id"`
}

// OwnerEntry is one ranked owner of the code implicated in an incident.
type OwnerEntry struct {
	Name string `json:"name"`

	// Percent is nil when the share could not be parsed
	Percent *float64 `json:"percent"`
}

// CommitEntry is one candidate commit from an incident's commit list.
type CommitEntry struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	Author  string `json:"author"`
}

// Dataset is an immutable, timestamp-ordered set of records loaded from one
// source.
type Dataset struct {
	// Records are sorted newest first, undated records last
	Records []Record

	// Source describes where the records came from (path or key)
	Source string

	// LoadedAt is when the dataset was read
	LoadedAt time.Time
}

// NewDataset orders records by timestamp and wraps them in a Dataset.
func NewDataset(source string, records []Record) *Dataset {
	return &Dataset{
		Records:  SortByTimestamp(records),
		Source:   source,
		LoadedAt: time.Now(),
	}
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
