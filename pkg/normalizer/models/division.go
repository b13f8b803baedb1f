// Package models defines the answer records a normalized survey row is
// assembled from.
package models

// Division identifies one of the three school divisions a respondent may
// report on.
type Division string

const (
	Grammar Division = "grammar"
	Middle  Division = "middle"
	High    Division = "high"
)

// Divisions lists the three divisions in output column order.
var Divisions = [3]Division{Grammar, Middle, High}

// Index returns the division's position in output order, or -1 if d is not
// one of the three known divisions.
func (d Division) Index() int {
	for i, known := range Divisions {
		if d == known {
			return i
		}
	}
	return -1
}
