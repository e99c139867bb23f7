package incidents

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order when parsing the timestamp column.
// Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseTimestamp parses an incident timestamp. The boolean is false when the
// value is missing or in no recognized layout.
func ParseTimestamp(raw string) (time.Time, bool) {
	if isMissing(raw) {
		return time.Time{}, false
	}

	value := strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}
