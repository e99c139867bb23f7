package incidents

import "fmt"

// labelMessageLimit caps the error message shown in a selector label.
const labelMessageLimit = 60

// Query is the operator's current input: two filters and a selection.
type Query struct {
	Repo     string
	Error    string
	Selected int
}

// Summary holds the headline figures over a filtered record set.
type Summary struct {
	Incidents     int    `json:"incidents"`
	ReposAffected int    `json:"repos_affected"`
	ErrorTypes    int    `json:"error_types"`
	Latest        string `json:"latest"`
}

// OwnerShare is an owner prepared for display with a clamped progress value.
type OwnerShare struct {
	OwnerEntry
	Progress float64 `json:"progress"`
	Label    string  `json:"label"`
}

// Detail is everything shown for one selected incident.
type Detail struct {
	Index    int           `json:"index"`
	Label    string        `json:"label"`
	Record   Record        `json:"record"`
	Location string        `json:"location"`
	Owners   []OwnerShare  `json:"owners"`
	Commits  []CommitEntry `json:"commits"`
}

// View is the result of running a Query over a dataset.
type View struct {
	Query    Query
	Rows     []Record
	Labels   []string
	Summary  Summary
	Selected *Detail
}

// Summarize computes the headline figures. Latest is the timestamp of the
// first record, which is the newest one when records are sorted.
func Summarize(records []Record) Summary {
	repos := make(map[string]struct{})
	errorTypes := make(map[string]struct{})
	for _, record := range records {
		if !isMissing(record.Repo) {
			repos[record.Repo] = struct{}{}
		}
		if !isMissing(record.ErrorName) {
			errorTypes[record.ErrorName] = struct{}{}
		}
	}

	latest := EmptyPlaceholder
	if len(records) > 0 {
		latest = records[0].Timestamp
	}

	return Summary{
		Incidents:     len(records),
		ReposAffected: len(repos),
		ErrorTypes:    len(errorTypes),
		Latest:        latest,
	}
}

// Label renders the one-line selector text for a record. The error message
// is cut to 60 runes.
func Label(record Record) string {
	message := []rune(record.ErrorMessage)
	if len(message) > labelMessageLimit {
		message = message[:labelMessageLimit]
	}
	return fmt.Sprintf("%s — %s — %s: %s", record.Timestamp, record.Repo, record.ErrorName, string(message))
}

// Location renders "file:line" for a record.
func Location(record Record) string {
	return record.File + ":" + record.Line
}

// OwnerShares prepares parsed owners for display.
func OwnerShares(owners []OwnerEntry) []OwnerShare {
	shares := make([]OwnerShare, 0, len(owners))
	for _, owner := range owners {
		share := OwnerShare{OwnerEntry: owner, Label: owner.Name}
		if owner.Percent != nil {
			share.Progress = ProgressFraction(*owner.Percent)
			share.Label = owner.Name + " — " + formatPercent(*owner.Percent)
		}
		shares = append(shares, share)
	}
	return shares
}

// Describe builds the detail for one record. Owners and commits are parsed
// from the raw fields on every call.
func Describe(index int, record Record) *Detail {
	return &Detail{
		Index:    index,
		Label:    Label(record),
		Record:   record,
		Location: Location(record),
		Owners:   OwnerShares(ParseOwners(record.OwnersRaw)),
		Commits:  ParseCommits(record.CommitListRaw),
	}
}

// BuildView filters the (already sorted) records and resolves the selected
// incident. An out-of-range selection falls back to the first row; Selected
// is nil only when no rows match.
func BuildView(records []Record, query Query) *View {
	rows := Filter(records, query.Repo, query.Error)

	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = Label(row)
	}

	view := &View{
		Query:   query,
		Rows:    rows,
		Labels:  labels,
		Summary: Summarize(rows),
	}

	if len(rows) == 0 {
		return view
	}

	selected := query.Selected
	if _, ok := Select(rows, selected); !ok {
		selected = 0
	}
	view.Query.Selected = selected
	view.Selected = Describe(selected, rows[selected])

	return view
}
