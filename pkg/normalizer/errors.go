package normalizer

import "fmt"

// RowError reports a failure while processing a single input row. Any row
// failure aborts the whole run: continuing past a mis-mapped row would emit
// a corrupted schema.
type RowError struct {
	Row int // zero-based row index in the input stream
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
