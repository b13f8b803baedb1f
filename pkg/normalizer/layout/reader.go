package layout

import (
	"fmt"
	"slices"

	"surveynorm/pkg/normalizer/models"
)

// categoricalPerDivision is how many of a division's nine fields come from
// the categorical column range; the remaining two are strengths and
// weaknesses.
const categoricalPerDivision = len(models.DivisionFields) - 2

// openPerBucket is how many open-ended answers (strengths, weaknesses) each
// division and the shared whole-school bucket receives.
const openPerBucket = 2

// Reader decodes one raw row into per-division and whole-school answers.
// Divisions absent from the reader's layout come back as all-empty records.
type Reader interface {
	ReadRow(row []string) (models.RowAnswers, error)

	// MaxColumn returns the highest zero-based column index the layout
	// touches.
	MaxColumn() int
}

// SingleDivisionSpec configures a layout where the respondent answered
// questions about exactly one division. Column references are spreadsheet
// labels; they are resolved once by NewSingleDivision.
type SingleDivisionSpec struct {
	Division models.Division
	// First and Last bound the categorical answer columns, inclusive.
	First string
	Last  string
	// Strengths and Weaknesses are the division's open-ended columns.
	Strengths  string
	Weaknesses string
	// WholeSchool lists the five whole-school columns in record order.
	// They may fall inside the categorical range, in which case the range
	// walk skips them.
	WholeSchool []string
}

type singleDivision struct {
	division  models.Division
	divIndex  int
	fieldCols []int // nine source columns, canonical field order
	wholeCols []int // five source columns, canonical field order
	maxColumn int
}

// NewSingleDivision resolves a single-division spec into an explicit
// column table: the categorical range in column order, minus the
// whole-school columns inside it, then strengths and weaknesses. The spec
// must yield exactly nine division fields and five whole-school fields.
func NewSingleDivision(spec SingleDivisionSpec) (Reader, error) {
	divIndex := spec.Division.Index()
	if divIndex < 0 {
		return nil, fmt.Errorf("single-division layout: unknown division %q", spec.Division)
	}

	first, err := ColumnIndex(spec.First)
	if err != nil {
		return nil, err
	}
	last, err := ColumnIndex(spec.Last)
	if err != nil {
		return nil, err
	}
	if first > last {
		return nil, fmt.Errorf("single-division layout %s: range %s..%s is reversed", spec.Division, spec.First, spec.Last)
	}
	strengths, err := ColumnIndex(spec.Strengths)
	if err != nil {
		return nil, err
	}
	weaknesses, err := ColumnIndex(spec.Weaknesses)
	if err != nil {
		return nil, err
	}
	wholeCols, err := columnIndexes(spec.WholeSchool)
	if err != nil {
		return nil, err
	}
	if len(wholeCols) != len(models.WholeSchoolFields) {
		return nil, fmt.Errorf("single-division layout %s: %d whole-school columns, want %d",
			spec.Division, len(wholeCols), len(models.WholeSchoolFields))
	}

	fieldCols := make([]int, 0, len(models.DivisionFields))
	for col := first; col <= last; col++ {
		if slices.Contains(wholeCols, col) {
			continue
		}
		fieldCols = append(fieldCols, col)
	}
	fieldCols = append(fieldCols, strengths, weaknesses)
	if len(fieldCols) != len(models.DivisionFields) {
		return nil, fmt.Errorf("single-division layout %s: range %s..%s yields %d fields, want %d",
			spec.Division, spec.First, spec.Last, len(fieldCols), len(models.DivisionFields))
	}

	return &singleDivision{
		division:  spec.Division,
		divIndex:  divIndex,
		fieldCols: fieldCols,
		wholeCols: wholeCols,
		maxColumn: slices.Max(append(append([]int{}, fieldCols...), wholeCols...)),
	}, nil
}

func (r *singleDivision) MaxColumn() int { return r.maxColumn }

func (r *singleDivision) ReadRow(row []string) (models.RowAnswers, error) {
	if len(row) <= r.maxColumn {
		return models.RowAnswers{}, fmt.Errorf("%w: %d cells, layout needs column %d", ErrRowTooShort, len(row), r.maxColumn)
	}

	division, err := models.NewDivisionAnswers(r.division, gather(row, r.fieldCols))
	if err != nil {
		return models.RowAnswers{}, err
	}
	whole, err := models.NewWholeSchoolAnswers(gather(row, r.wholeCols))
	if err != nil {
		return models.RowAnswers{}, err
	}

	var out models.RowAnswers
	out.Divisions[r.divIndex] = division
	out.WholeSchool = whole
	return out, nil
}

// MultiDivisionSpec configures a layout where the respondent answered
// questions about two or three divisions. Categorical columns interleave
// the divisions at a fixed stride; open-ended columns interleave the
// divisions plus a shared whole-school bucket.
type MultiDivisionSpec struct {
	// Divisions are the addressed divisions in interleave order.
	Divisions []models.Division
	// CategoricalFirst and CategoricalLast bound the interleaved
	// categorical columns, inclusive.
	CategoricalFirst string
	CategoricalLast  string
	// OpenFirst and OpenLast bound the interleaved open-ended columns,
	// inclusive.
	OpenFirst string
	OpenLast  string
	// WholeSchool lists the whole-school-only columns appended after the
	// shared bucket's strengths and weaknesses.
	WholeSchool []string
}

type multiDivision struct {
	divisions  []models.Division
	divIndexes []int
	fieldCols  [][]int // per configured division, nine columns in canonical order
	wholeCols  []int   // five columns, canonical field order
	maxColumn  int
}

// NewMultiDivision resolves a multi-division spec into explicit per-division
// column tables. Categorical columns deal round-robin across the divisions
// in interleave order: range offset i belongs to division i mod n.
// Open-ended columns deal the same way across n+1 buckets, the extra bucket
// collecting the whole-school strengths and weaknesses. The ranges must
// deal exactly seven categorical fields to every division and two
// open-ended answers to every bucket.
func NewMultiDivision(spec MultiDivisionSpec) (Reader, error) {
	n := len(spec.Divisions)
	if n < 2 || n > len(models.Divisions) {
		return nil, fmt.Errorf("multi-division layout: %d divisions, want 2 or 3", n)
	}
	divIndexes := make([]int, n)
	for i, d := range spec.Divisions {
		idx := d.Index()
		if idx < 0 {
			return nil, fmt.Errorf("multi-division layout: unknown division %q", d)
		}
		for _, prev := range spec.Divisions[:i] {
			if prev == d {
				return nil, fmt.Errorf("multi-division layout: division %s listed twice", d)
			}
		}
		divIndexes[i] = idx
	}

	catFirst, err := ColumnIndex(spec.CategoricalFirst)
	if err != nil {
		return nil, err
	}
	catLast, err := ColumnIndex(spec.CategoricalLast)
	if err != nil {
		return nil, err
	}
	openFirst, err := ColumnIndex(spec.OpenFirst)
	if err != nil {
		return nil, err
	}
	openLast, err := ColumnIndex(spec.OpenLast)
	if err != nil {
		return nil, err
	}
	wholeOnly, err := columnIndexes(spec.WholeSchool)
	if err != nil {
		return nil, err
	}

	if got := catLast - catFirst + 1; got != n*categoricalPerDivision {
		return nil, fmt.Errorf("multi-division layout %v: categorical range %s..%s has %d columns, want %d",
			spec.Divisions, spec.CategoricalFirst, spec.CategoricalLast, got, n*categoricalPerDivision)
	}
	buckets := n + 1
	if got := openLast - openFirst + 1; got != buckets*openPerBucket {
		return nil, fmt.Errorf("multi-division layout %v: open range %s..%s has %d columns, want %d",
			spec.Divisions, spec.OpenFirst, spec.OpenLast, got, buckets*openPerBucket)
	}
	if got := openPerBucket + len(wholeOnly); got != len(models.WholeSchoolFields) {
		return nil, fmt.Errorf("multi-division layout %v: %d whole-school fields, want %d",
			spec.Divisions, got, len(models.WholeSchoolFields))
	}

	fieldCols := make([][]int, n)
	for i := range spec.Divisions {
		cols := make([]int, 0, len(models.DivisionFields))
		for col := catFirst + i; col <= catLast; col += n {
			cols = append(cols, col)
		}
		// The division's strengths and weaknesses sit one bucket stride
		// apart in the open range.
		cols = append(cols, openFirst+i, openFirst+i+buckets)
		fieldCols[i] = cols
	}

	wholeCols := make([]int, 0, len(models.WholeSchoolFields))
	wholeCols = append(wholeCols, openFirst+n, openFirst+n+buckets)
	wholeCols = append(wholeCols, wholeOnly...)

	flat := append([]int{}, wholeCols...)
	for _, cols := range fieldCols {
		flat = append(flat, cols...)
	}

	return &multiDivision{
		divisions:  spec.Divisions,
		divIndexes: divIndexes,
		fieldCols:  fieldCols,
		wholeCols:  wholeCols,
		maxColumn:  slices.Max(flat),
	}, nil
}

func (r *multiDivision) MaxColumn() int { return r.maxColumn }

func (r *multiDivision) ReadRow(row []string) (models.RowAnswers, error) {
	if len(row) <= r.maxColumn {
		return models.RowAnswers{}, fmt.Errorf("%w: %d cells, layout needs column %d", ErrRowTooShort, len(row), r.maxColumn)
	}

	var out models.RowAnswers
	for i, d := range r.divisions {
		division, err := models.NewDivisionAnswers(d, gather(row, r.fieldCols[i]))
		if err != nil {
			return models.RowAnswers{}, err
		}
		out.Divisions[r.divIndexes[i]] = division
	}
	whole, err := models.NewWholeSchoolAnswers(gather(row, r.wholeCols))
	if err != nil {
		return models.RowAnswers{}, err
	}
	out.WholeSchool = whole
	return out, nil
}

// gather picks the cells at cols, in order.
func gather(row []string, cols []int) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = row[col]
	}
	return out
}
