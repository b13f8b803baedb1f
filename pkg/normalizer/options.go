// Package normalizer reshapes a heterogeneous survey export into a table
// where every row carries the same answer columns: nine per division for
// grammar, middle, and high, then five whole-school columns, after the
// export's own leading columns.
package normalizer

import "surveynorm/pkg/normalizer/layout"

// Options configures a Normalizer.
type Options struct {
	// SurveyTypeColumn is the spreadsheet label of the column holding the
	// survey-type literal. The leading columns copied through verbatim run
	// from column A through this column inclusive.
	SurveyTypeColumn string

	// Registry maps survey-type literals to layout readers. If nil, the
	// seven default layouts are used.
	Registry *layout.Registry
}

// DefaultOptions returns the options matching the known survey export:
// survey type in column K, default layout registry.
func DefaultOptions() Options {
	return Options{SurveyTypeColumn: "K"}
}
