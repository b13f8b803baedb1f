package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivisionIndex(t *testing.T) {
	assert.Equal(t, 0, Grammar.Index())
	assert.Equal(t, 1, Middle.Index())
	assert.Equal(t, 2, High.Index())
	assert.Equal(t, -1, Division("elementary").Index())
	assert.Equal(t, -1, Division("").Index())
}

func TestDivisionAnswersRoundTrip(t *testing.T) {
	values := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}

	answers, err := NewDivisionAnswers(Grammar, values)
	require.NoError(t, err)
	assert.Equal(t, Grammar, answers.Division)
	assert.Equal(t, values, answers.Values())
}

func TestNewDivisionAnswersRejectsWrongCount(t *testing.T) {
	_, err := NewDivisionAnswers(Grammar, []string{"a", "b"})
	assert.Error(t, err)

	_, err = NewDivisionAnswers(Grammar, make([]string, 10))
	assert.Error(t, err)
}

func TestWholeSchoolAnswersRoundTrip(t *testing.T) {
	values := []string{"s", "w", "t", "i", "m"}

	answers, err := NewWholeSchoolAnswers(values)
	require.NoError(t, err)
	assert.Equal(t, values, answers.Values())
}

func TestNewWholeSchoolAnswersRejectsWrongCount(t *testing.T) {
	_, err := NewWholeSchoolAnswers([]string{"s", "w"})
	assert.Error(t, err)
}

func TestZeroDivisionAnswersIsAllEmpty(t *testing.T) {
	var zero DivisionAnswers
	assert.Empty(t, zero.Division)
	for _, v := range zero.Values() {
		assert.Empty(t, v)
	}
}
