package normalizer

import (
	"errors"
	"fmt"
	"io"

	"surveynorm/pkg/normalizer/layout"
	"surveynorm/pkg/normalizer/models"
)

// RowSource yields input rows in order. Read returns io.EOF after the last
// row. *csv.Reader satisfies RowSource.
type RowSource interface {
	Read() ([]string, error)
}

// RowSink receives output rows in order. *csv.Writer satisfies RowSink.
type RowSink interface {
	Write(row []string) error
}

// Normalizer drives the row transformation: the first two rows of a stream
// become the two-level output header, every later row is dispatched to its
// survey type's layout reader and reshaped.
type Normalizer struct {
	registry      *layout.Registry
	surveyTypeCol int
}

// New builds a Normalizer from opts.
func New(opts Options) (*Normalizer, error) {
	col, err := layout.ColumnIndex(opts.SurveyTypeColumn)
	if err != nil {
		return nil, fmt.Errorf("survey-type column: %w", err)
	}
	registry := opts.Registry
	if registry == nil {
		registry = layout.DefaultRegistry()
	}
	return &Normalizer{registry: registry, surveyTypeCol: col}, nil
}

// Run streams rows from src to dst until src is exhausted. Rows are
// transformed and written one at a time; nothing is retained between rows.
// The first row-level failure aborts the run.
func (n *Normalizer) Run(src RowSource, dst RowSink) error {
	for i := 0; ; i++ {
		row, err := src.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &RowError{Row: i, Err: err}
		}
		out, err := n.TransformRow(i, row)
		if err != nil {
			return err
		}
		if err := dst.Write(out); err != nil {
			return &RowError{Row: i, Err: err}
		}
	}
}

// TransformRow maps the input row at the given stream index to its output
// row. Rows 0 and 1 produce the two header rows; all later rows are data.
func (n *Normalizer) TransformRow(index int, row []string) ([]string, error) {
	switch index {
	case 0:
		return n.firstHeader(index, row)
	case 1:
		return n.secondHeader(index, row)
	default:
		return n.dataRow(index, row)
	}
}

// outputWidth is the number of cells appended after the leading columns.
const outputWidth = 3*len(models.DivisionFields) + len(models.WholeSchoolFields)

// leading copies the pass-through columns, A through the survey-type column
// inclusive. The boundary is the same for header and data rows.
func (n *Normalizer) leading(index int, row []string) ([]string, error) {
	if len(row) <= n.surveyTypeCol {
		return nil, &RowError{Row: index, Err: fmt.Errorf("%w: %d cells, survey-type column is %d", layout.ErrRowTooShort, len(row), n.surveyTypeCol)}
	}
	out := make([]string, 0, n.surveyTypeCol+1+outputWidth)
	return append(out, row[:n.surveyTypeCol+1]...), nil
}

// firstHeader labels each appended column block with its section: the
// division name nine times per division, then "whole" five times.
func (n *Normalizer) firstHeader(index int, row []string) ([]string, error) {
	out, err := n.leading(index, row)
	if err != nil {
		return nil, err
	}
	for _, d := range models.Divisions {
		for range models.DivisionFields {
			out = append(out, string(d))
		}
	}
	for range models.WholeSchoolFields {
		out = append(out, models.WholeSchoolLabel)
	}
	return out, nil
}

// secondHeader labels each appended column with its field name: the nine
// canonical division fields once per division, then the five whole-school
// fields.
func (n *Normalizer) secondHeader(index int, row []string) ([]string, error) {
	out, err := n.leading(index, row)
	if err != nil {
		return nil, err
	}
	for range models.Divisions {
		out = append(out, models.DivisionFields[:]...)
	}
	return append(out, models.WholeSchoolFields[:]...), nil
}

func (n *Normalizer) dataRow(index int, row []string) ([]string, error) {
	out, err := n.leading(index, row)
	if err != nil {
		return nil, err
	}
	reader, err := n.registry.Lookup(row[n.surveyTypeCol])
	if err != nil {
		return nil, &RowError{Row: index, Err: err}
	}
	answers, err := reader.ReadRow(row)
	if err != nil {
		return nil, &RowError{Row: index, Err: err}
	}
	for _, division := range answers.Divisions {
		out = append(out, division.Values()...)
	}
	return append(out, answers.WholeSchool.Values()...), nil
}

// Normalize transforms rows already held in memory, such as a sheet loaded
// from a workbook. For streams, use Run.
func Normalize(rows [][]string, opts Options) ([][]string, error) {
	n, err := New(opts)
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(rows))
	for i, row := range rows {
		transformed, err := n.TransformRow(i, row)
		if err != nil {
			return nil, err
		}
		out = append(out, transformed)
	}
	return out, nil
}
