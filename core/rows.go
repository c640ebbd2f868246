package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/usagelab/telesnap/schema"
)

// ErrNoHeader is returned when the export has no header row to derive
// column names from. This is a catastrophic parse failure.
var ErrNoHeader = errors.New("csv export has no header row")

// ParsedRows is the ordered output of the row parser: the header names as
// they appeared, plus one RawRow per data line.
type ParsedRows struct {
	Headers []string
	Rows    []schema.RawRow
}

// ParseRows reads the raw CSV export into header-keyed rows. Rows with a
// different field count than the header are kept and mapped positionally
// up to the shorter of the two; surplus header columns stay absent for
// that row. Only an unreadable stream or a missing header row is fatal.
func ParseRows(r io.Reader) (*ParsedRows, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are a per-row anomaly, not fatal
	cr.LazyQuotes = true

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	parsed := &ParsedRows{Headers: headers}
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		row := make(schema.RawRow, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				row[h] = fields[i]
			}
		}
		parsed.Rows = append(parsed.Rows, row)
	}
	return parsed, nil
}
