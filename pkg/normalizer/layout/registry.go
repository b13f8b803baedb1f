package layout

import (
	"fmt"
	"sort"

	"surveynorm/pkg/normalizer/models"
)

// Survey-type literals as they appear in the export's survey-type column.
// Lookup is exact match only; anything else is ErrUnknownSurveyType.
const (
	SurveyGrammarOnly       = "Grammar School only (K-6)"
	SurveyMiddleOnly        = "Middle School only (7-8)"
	SurveyHighOnly          = "High School only (9-12)"
	SurveyGrammarMiddle     = "Grammar and Middle School only (K-6 and 7-8)"
	SurveyGrammarHigh       = "Grammar and High School only (K-6 and 9-12)"
	SurveyGrammarMiddleHigh = "Grammar, Middle, and High School (K-6, 7-8, and 9-12)"
	SurveyMiddleHigh        = "Middle and High School only (7-8 and 9-12)"
)

// Registry maps survey-type literals to layout readers. Built once before
// processing; never mutated afterwards.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register associates a survey-type literal with a reader, replacing any
// previous association.
func (r *Registry) Register(surveyType string, reader Reader) {
	r.readers[surveyType] = reader
}

// Lookup returns the reader for a survey-type literal. The error wraps
// ErrUnknownSurveyType when the literal matches no registered layout.
func (r *Registry) Lookup(surveyType string) (Reader, error) {
	reader, ok := r.readers[surveyType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSurveyType, surveyType)
	}
	return reader, nil
}

// SurveyTypes returns the registered survey-type literals, sorted.
func (r *Registry) SurveyTypes() []string {
	types := make([]string, 0, len(r.readers))
	for t := range r.readers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DefaultRegistry returns the registry of the seven known survey layouts:
// one single-division layout per division, plus the three 2-combinations
// and the 3-combination. Columns ED, EE, and EF hold the whole-school
// tenure, IEP, and minority answers in every layout.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(SurveyGrammarOnly, mustReader(NewSingleDivision(SingleDivisionSpec{
		Division:    models.Grammar,
		First:       "L",
		Last:        "R",
		Strengths:   "S",
		Weaknesses:  "U",
		WholeSchool: []string{"T", "V", "ED", "EE", "EF"},
	})))
	reg.Register(SurveyMiddleOnly, mustReader(NewSingleDivision(SingleDivisionSpec{
		Division:    models.Middle,
		First:       "CN",
		Last:        "CT",
		Strengths:   "CU",
		Weaknesses:  "CW",
		WholeSchool: []string{"CV", "CX", "ED", "EE", "EF"},
	})))
	reg.Register(SurveyHighOnly, mustReader(NewSingleDivision(SingleDivisionSpec{
		Division:    models.High,
		First:       "DS",
		Last:        "DY",
		Strengths:   "DZ",
		Weaknesses:  "EB",
		WholeSchool: []string{"EA", "EC", "ED", "EE", "EF"},
	})))
	reg.Register(SurveyGrammarMiddle, mustReader(NewMultiDivision(MultiDivisionSpec{
		Divisions:        []models.Division{models.Grammar, models.Middle},
		CategoricalFirst: "W",
		CategoricalLast:  "AJ",
		OpenFirst:        "AK",
		OpenLast:         "AP",
		WholeSchool:      []string{"ED", "EE", "EF"},
	})))
	reg.Register(SurveyGrammarHigh, mustReader(NewMultiDivision(MultiDivisionSpec{
		Divisions:        []models.Division{models.Grammar, models.High},
		CategoricalFirst: "AQ",
		CategoricalLast:  "BD",
		OpenFirst:        "BE",
		OpenLast:         "BJ",
		WholeSchool:      []string{"ED", "EE", "EF"},
	})))
	reg.Register(SurveyGrammarMiddleHigh, mustReader(NewMultiDivision(MultiDivisionSpec{
		Divisions:        []models.Division{models.Grammar, models.Middle, models.High},
		CategoricalFirst: "BK",
		CategoricalLast:  "CE",
		OpenFirst:        "CF",
		OpenLast:         "CM",
		WholeSchool:      []string{"ED", "EE", "EF"},
	})))
	reg.Register(SurveyMiddleHigh, mustReader(NewMultiDivision(MultiDivisionSpec{
		Divisions:        []models.Division{models.Middle, models.High},
		CategoricalFirst: "CY",
		CategoricalLast:  "DL",
		OpenFirst:        "DM",
		OpenLast:         "DR",
		WholeSchool:      []string{"ED", "EE", "EF"},
	})))
	return reg
}

// mustReader panics on a reader construction error. The default layout
// table is static, so an error here is a configuration bug.
func mustReader(r Reader, err error) Reader {
	if err != nil {
		panic(err)
	}
	return r
}
