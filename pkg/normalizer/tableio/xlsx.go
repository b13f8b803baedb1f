package tableio

import (
	"github.com/xuri/excelize/v2"
)

// ReadXLSX loads the first sheet of a workbook as rows of strings.
// GetRows drops trailing blank cells, so every row is padded back to the
// sheet's widest row; a respondent who left the last answers blank must
// not come out shorter than the header rows.
func ReadXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return rows, nil
}

// XLSXSink collects rows and writes them to a single-sheet workbook on
// Close. Workbooks cannot be appended to row by row the way CSV files can,
// so the whole output table is buffered.
type XLSXSink struct {
	path string
	rows [][]string
}

// CreateXLSX returns a sink that will write a workbook at path when closed.
func CreateXLSX(path string) *XLSXSink {
	return &XLSXSink{path: path}
}

// Write appends one row. The row is copied; callers may reuse the slice.
func (s *XLSXSink) Write(row []string) error {
	buf := make([]string, len(row))
	copy(buf, row)
	s.rows = append(s.rows, buf)
	return nil
}

// Close writes the buffered rows to the workbook.
func (s *XLSXSink) Close() error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(s.path)
}
