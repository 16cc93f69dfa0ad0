package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewTable_Widths(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		rows     [][]string
		expected []int
	}{
		{
			name:     "Header sets the floor",
			columns:  []string{"identifier", "x"},
			rows:     [][]string{{"1", "2"}},
			expected: []int{10, 1},
		},
		{
			name:     "Widest cell wins",
			columns:  []string{"a"},
			rows:     [][]string{{"short"}, {"a longer value"}},
			expected: []int{14},
		},
		{
			name:     "Multi-line cells measure per line",
			columns:  []string{"a"},
			rows:     [][]string{{"tiny\nconsiderably longer"}},
			expected: []int{19},
		},
		{
			name:     "Width capped at 30",
			columns:  []string{"a"},
			rows:     [][]string{{strings.Repeat("x", 80)}},
			expected: []int{30},
		},
		{
			name:     "Empty column still measurable",
			columns:  []string{""},
			rows:     [][]string{{""}},
			expected: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable("test", tt.columns, tt.rows)
			require.Equal(t, tt.expected, table.ColumnWidths(), "derived widths should match")
		})
	}
}

func Test_NewTable_RaggedRows(t *testing.T) {
	table := NewTable("test", []string{"a", "b", "c"}, [][]string{
		{"1"},
		{"1", "2", "3", "4"},
	})

	require.Equal(t, []string{"1", "", ""}, table.CellsOfRow(0), "short rows are padded")
	require.Equal(t, []string{"1", "2", "3"}, table.CellsOfRow(1), "long rows are truncated")
}

func Test_Table_Labels(t *testing.T) {
	table := NewTable("test", []string{"a"}, [][]string{{"1"}, {"2"}, {"3"}})

	require.Equal(t, "0", table.RowLabel(0), "labels default to row numbers")
	require.Equal(t, "2", table.RowLabel(2))

	require.NoError(t, table.SetLabels([]string{"x", "y", "z"}))
	require.Equal(t, "y", table.RowLabel(1), "explicit labels override row numbers")

	err := table.SetLabels([]string{"too", "few"})
	require.ErrorIs(t, err, ErrShapeMismatch, "label count must match row count")
}

func Test_Table_Accessors(t *testing.T) {
	table := NewTable("accounts.csv", []string{"id", "name"}, [][]string{{"1", "ada"}})

	require.Equal(t, "accounts.csv", table.Name())
	require.Equal(t, 1, table.RowCount())
	require.Equal(t, []string{"id", "name"}, table.ColumnNames())
	require.Equal(t, []string{"1", "ada"}, table.CellsOfRow(0))
}
