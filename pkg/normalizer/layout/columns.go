// Package layout decodes raw survey-export rows. Each survey type has its
// own column arrangement; a layout reader maps that arrangement onto the
// canonical per-division and whole-school answer records.
package layout

import (
	"fmt"
	"strings"
)

// ColumnIndex converts a spreadsheet-style column label ("A", "Z", "AA")
// into a zero-based column index. Labels are bijective base-26: letters
// carry the values 1 through 26 and there is no zero digit, which is why
// "AA" follows "Z". Labels are case-insensitive.
//
// All column references in layout configuration go through this function,
// converted once when the layout is built.
func ColumnIndex(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: empty label", ErrBadColumnLabel)
	}
	val := 0
	for _, c := range strings.ToUpper(label) {
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrBadColumnLabel, label)
		}
		val = val*26 + int(c-'A') + 1
	}
	// The label is a 1-based numeral; column indices are 0-based.
	return val - 1, nil
}

// columnIndexes converts a list of labels in one pass.
func columnIndexes(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, label := range labels {
		idx, err := ColumnIndex(label)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}
