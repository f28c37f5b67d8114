// Package batch reads the input CSV and drives card generation across a
// worker pool before handing the finished deck to the apkg writer.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one input line: the Mandarin text plus an optional meaning
// override from the second column.
type Row struct {
	Hanzi    string
	Override string
}

// ReadCSV loads all rows from the input file. There is no header line and
// rows may have any number of columns. Columns past the second are
// ignored, blank rows are dropped.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return parseRows(f)
}

func parseRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse input CSV: %w", err)
		}

		row := Row{}
		if len(record) > 0 {
			row.Hanzi = strings.TrimSpace(record[0])
		}
		if len(record) > 1 {
			row.Override = strings.TrimSpace(record[1])
		}
		if row.Hanzi == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
