package incidents

import (
	"time"

	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
)

// IncidentRow is one row of the incidents table.
type IncidentRow struct {
	// Index is the row position in the filtered list, usable with the detail endpoint
	Index int `json:"index"`

	incidents.Record

	// OwnerSummary is the compact "name N% · name N%" rendering of the owners
	OwnerSummary string `json:"owner_summary"`
}

// ListResponse is returned by the incidents list endpoint.
type ListResponse struct {
	Repo      string        `json:"repo,omitempty"`
	Error     string        `json:"error,omitempty"`
	Count     int           `json:"count"`
	Source    string        `json:"source"`
	LoadedAt  time.Time     `json:"loaded_at"`
	Incidents []IncidentRow `json:"incidents"`
}

// CommitLink is a parsed commit with an optional GitHub lookup URL.
type CommitLink struct {
	incidents.CommitEntry
	ShortSHA  string `json:"short_sha"`
	DetailURL string `json:"detail_url,omitempty"`
}

// DetailResponse is returned by the incident detail endpoint.
type DetailResponse struct {
	Index    int                    `json:"index"`
	Label    string                 `json:"label"`
	Record   incidents.Record       `json:"record"`
	Location string                 `json:"location"`
	Owners   []incidents.OwnerShare `json:"owners"`
	Commits  []CommitLink           `json:"commits"`
	Total    int                    `json:"total"`
}
