package incidents

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\uFEFF"

// ReadCSV reads incident rows from r. The first row is the header. Recognized
// columns may appear in any order or not at all; absent columns and short
// rows read as empty strings and unknown columns are ignored. An empty input
// yields no records.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := columnIndex(header)

	records := make([]Record, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", len(records)+2, err)
		}
		records = append(records, recordFromRow(row, index))
	}

	return records, nil
}

// columnIndex maps recognized column names to their position in header.
// When a name repeats, the first occurrence wins.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	return index
}

func recordFromRow(row []string, index map[string]int) Record {
	field := func(column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	return Record{
		Timestamp:     field(ColumnTimestamp),
		Repo:          field(ColumnRepo),
		File:          field(ColumnFile),
		Line:          field(ColumnLine),
		ErrorName:     field(ColumnErrorName),
		ErrorMessage:  field(ColumnErrorMessage),
		TopFrame:      field(ColumnTopFrame),
		OwnersRaw:     field(ColumnOwners),
		CommitListRaw: field(ColumnCommitList),
		SlackText:     field(ColumnSlackText),
		IncidentID:    field(ColumnIncidentID),
	}
}
