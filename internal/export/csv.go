// Package export renders record collections as CSV downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jszwec/csvutil"
)

// MIMEType is the content type of every export.
const MIMEType = "text/csv"

// File is a rendered export ready to be downloaded.
type File struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mimeType"`
	Content  string `json:"content"`
	Rows     int    `json:"rows"`
}

// CSV encodes rows, a slice of structs with `csv` tags, as a header line
// followed by one line per row. Fields containing commas, quotes, or line
// breaks are quoted per RFC 4180. An empty slice still yields the header.
func CSV[T any](rows []T) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	enc := csvutil.NewEncoder(w)

	if len(rows) == 0 {
		var zero T
		if err := enc.EncodeHeader(zero); err != nil {
			return nil, fmt.Errorf("encode header: %w", err)
		}
	}
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return nil, fmt.Errorf("encode row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns "<entity>_export_<YYYY-MM-DD>.csv" for the day of now.
func Filename(entity string, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.csv", entity, now.Format(time.DateOnly))
}

// Render maps records to rows with project and packages them as a File.
func Render[R, T any](entity string, now time.Time, records []R, project func(R) T) (File, error) {
	rows := make([]T, 0, len(records))
	for _, r := range records {
		rows = append(rows, project(r))
	}
	data, err := CSV(rows)
	if err != nil {
		return File{}, fmt.Errorf("export %s: %w", entity, err)
	}
	return File{
		Filename: Filename(entity, now),
		MIMEType: MIMEType,
		Content:  string(data),
		Rows:     len(rows),
	}, nil
}

// Amount formats a monetary or measured value without exponent notation.
func Amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Header returns the column names declared by T's csv tags.
func Header[T any]() ([]string, error) {
	var zero T
	return csvutil.Header(zero, "csv")
}
