package models

import "fmt"

// DivisionFields names the per-division answer fields in canonical output
// order. Every layout produces exactly these nine values for each division
// it addresses, regardless of where they sit in the raw row.
var DivisionFields = [9]string{
	"education",
	"growth",
	"virtues",
	"character_growth",
	"teacher_communication",
	"leadership_communication",
	"welcoming",
	"strengths",
	"weaknesses",
}

// WholeSchoolFields names the whole-school answer fields in canonical output
// order.
var WholeSchoolFields = [5]string{
	"strengths",
	"weaknesses",
	"tenure",
	"iep_etc",
	"minority",
}

// WholeSchoolLabel is the first-header label above the whole-school block.
const WholeSchoolLabel = "whole"

// DivisionAnswers holds one division's answers. The zero value is the
// all-empty record emitted for divisions the respondent did not address.
type DivisionAnswers struct {
	Division                Division
	Education               string
	Growth                  string
	Virtues                 string
	CharacterGrowth         string
	TeacherCommunication    string
	LeadershipCommunication string
	Welcoming               string
	Strengths               string
	Weaknesses              string
}

// NewDivisionAnswers builds a DivisionAnswers from the nine field values in
// canonical order.
func NewDivisionAnswers(d Division, values []string) (DivisionAnswers, error) {
	if len(values) != len(DivisionFields) {
		return DivisionAnswers{}, fmt.Errorf("division %s: got %d answer fields, want %d", d, len(values), len(DivisionFields))
	}
	return DivisionAnswers{
		Division:                d,
		Education:               values[0],
		Growth:                  values[1],
		Virtues:                 values[2],
		CharacterGrowth:         values[3],
		TeacherCommunication:    values[4],
		LeadershipCommunication: values[5],
		Welcoming:               values[6],
		Strengths:               values[7],
		Weaknesses:              values[8],
	}, nil
}

// Values returns the nine answer fields in canonical order.
func (a DivisionAnswers) Values() []string {
	return []string{
		a.Education,
		a.Growth,
		a.Virtues,
		a.CharacterGrowth,
		a.TeacherCommunication,
		a.LeadershipCommunication,
		a.Welcoming,
		a.Strengths,
		a.Weaknesses,
	}
}

// WholeSchoolAnswers holds the five answers given once per respondent
// regardless of which divisions they addressed.
type WholeSchoolAnswers struct {
	Strengths  string
	Weaknesses string
	Tenure     string
	IEPEtc     string
	Minority   string
}

// NewWholeSchoolAnswers builds a WholeSchoolAnswers from the five field
// values in canonical order.
func NewWholeSchoolAnswers(values []string) (WholeSchoolAnswers, error) {
	if len(values) != len(WholeSchoolFields) {
		return WholeSchoolAnswers{}, fmt.Errorf("whole school: got %d answer fields, want %d", len(values), len(WholeSchoolFields))
	}
	return WholeSchoolAnswers{
		Strengths:  values[0],
		Weaknesses: values[1],
		Tenure:     values[2],
		IEPEtc:     values[3],
		Minority:   values[4],
	}, nil
}

// Values returns the five answer fields in canonical order.
func (a WholeSchoolAnswers) Values() []string {
	return []string{a.Strengths, a.Weaknesses, a.Tenure, a.IEPEtc, a.Minority}
}

// RowAnswers is the reshaped form of one raw data row: one record per
// division in output order plus the whole-school record.
type RowAnswers struct {
	Divisions   [3]DivisionAnswers
	WholeSchool WholeSchoolAnswers
}
