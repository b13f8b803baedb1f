package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"A", 0},
		{"B", 1},
		{"K", 10},
		{"Z", 25},
		{"AA", 26},
		{"AB", 27},
		{"AZ", 51},
		{"BA", 52},
		{"ZZ", 701},
		{"AAA", 702},
		{"ED", 133},
		{"EF", 135},
	}

	for _, tt := range tests {
		got, err := ColumnIndex(tt.label)
		require.NoError(t, err, "ColumnIndex(%q)", tt.label)
		assert.Equal(t, tt.expected, got, "ColumnIndex(%q)", tt.label)
	}
}

func TestColumnIndexCaseInsensitive(t *testing.T) {
	upper, err := ColumnIndex("AA")
	require.NoError(t, err)
	lower, err := ColumnIndex("aa")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestColumnIndexStrictlyIncreasing(t *testing.T) {
	// Labels in spreadsheet order must map to strictly increasing indices.
	ordered := []string{"A", "B", "Y", "Z", "AA", "AB", "AZ", "BA", "ZY", "ZZ", "AAA"}

	prev := -1
	for _, label := range ordered {
		got, err := ColumnIndex(label)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "ColumnIndex(%q)", label)
		prev = got
	}
}

func TestColumnIndexRejectsBadLabels(t *testing.T) {
	for _, label := range []string{"", "A1", "1", "A-B", "É", " A"} {
		_, err := ColumnIndex(label)
		assert.ErrorIs(t, err, ErrBadColumnLabel, "ColumnIndex(%q)", label)
	}
}
