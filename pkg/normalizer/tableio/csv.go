// Package tableio adapts delimited-text and workbook files to the row
// source and sink shapes the normalizer consumes.
package tableio

import (
	"encoding/csv"
	"io"
	"os"
)

// CSVSource reads rows from a CSV file. Rows may be ragged; the export's
// trailing empty columns are often trimmed.
type CSVSource struct {
	f *os.File
	r *csv.Reader
}

// OpenCSV opens a CSV file for row-at-a-time reading.
func OpenCSV(path string) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return &CSVSource{f: f, r: r}, nil
}

// Read returns the next row, or io.EOF after the last one.
func (s *CSVSource) Read() ([]string, error) {
	return s.r.Read()
}

// Close releases the underlying file.
func (s *CSVSource) Close() error {
	return s.f.Close()
}

// CSVSink writes rows to a CSV file.
type CSVSink struct {
	f *os.File
	w *csv.Writer
}

// CreateCSV creates (or truncates) a CSV file for row-at-a-time writing.
func CreateCSV(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &CSVSink{f: f, w: csv.NewWriter(f)}, nil
}

// Write appends one row.
func (s *CSVSink) Write(row []string) error {
	return s.w.Write(row)
}

// Close flushes buffered rows and releases the underlying file.
func (s *CSVSink) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

// SliceSource yields rows from an in-memory table, such as a loaded
// workbook sheet.
type SliceSource struct {
	rows [][]string
	next int
}

// NewSliceSource wraps rows in a RowSource-shaped reader.
func NewSliceSource(rows [][]string) *SliceSource {
	return &SliceSource{rows: rows}
}

// Read returns the next row, or io.EOF after the last one.
func (s *SliceSource) Read() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.next]
	s.next++
	return row, nil
}
