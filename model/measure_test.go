package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MeasureCellHeight(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected int
	}{
		{
			name:     "Empty text",
			text:     "",
			width:    10,
			expected: 1,
		},
		{
			name:     "Single short line",
			text:     "hello",
			width:    10,
			expected: 1,
		},
		{
			name:     "Embedded line breaks",
			text:     "a\nb\nc",
			width:    10,
			expected: 3,
		},
		{
			name:     "Soft wrap",
			text:     strings.Repeat("x", 25),
			width:    10,
			expected: 3,
		},
		{
			name:     "Exact fit does not wrap",
			text:     strings.Repeat("x", 10),
			width:    10,
			expected: 1,
		},
		{
			name:     "Blank segments count as lines",
			text:     "a\n\nb",
			width:    10,
			expected: 3,
		},
		{
			name:     "Mixed breaks and wrapping",
			text:     strings.Repeat("y", 12) + "\nz",
			width:    10,
			expected: 3,
		},
		{
			name:     "Wide runes wrap by display width",
			text:     "日本語",
			width:    4,
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			height, err := MeasureCellHeight(tt.text, tt.width)
			require.NoError(t, err, "MeasureCellHeight() should not fail")
			require.Equal(t, tt.expected, height, "height should match")
		})
	}
}

func Test_MeasureCellHeight_InvalidWidth(t *testing.T) {
	for _, width := range []int{0, -1} {
		_, err := MeasureCellHeight("text", width)
		require.ErrorIs(t, err, ErrInvalidWidth, "width %d should be rejected", width)
	}
}

func Test_WrapCell(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{
			name:     "Empty text is one blank line",
			text:     "",
			width:    5,
			expected: []string{""},
		},
		{
			name:     "Breaks preserved",
			text:     "a\nb",
			width:    5,
			expected: []string{"a", "b"},
		},
		{
			name:     "Soft wrap splits at width",
			text:     "abcdefgh",
			width:    3,
			expected: []string{"abc", "def", "gh"},
		},
		{
			name:     "Wide rune does not straddle the boundary",
			text:     "a日本",
			width:    3,
			expected: []string{"a日", "本"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := WrapCell(tt.text, tt.width)
			require.NoError(t, err, "WrapCell() should not fail")
			require.Equal(t, tt.expected, lines, "wrapped lines should match")
		})
	}

	_, err := WrapCell("text", 0)
	require.ErrorIs(t, err, ErrInvalidWidth, "zero width should be rejected")
}

func Test_WrapCell_AgreesWithMeasure(t *testing.T) {
	samples := []string{
		"",
		"short",
		"a\nb\nc",
		strings.Repeat("x", 25),
		strings.Repeat("word ", 20),
		"日本語のテキスト\nwith ascii",
		"trailing newline\n",
	}

	for _, text := range samples {
		for _, width := range []int{1, 2, 5, 10, 30} {
			lines, err := WrapCell(text, width)
			require.NoError(t, err)
			height, err := MeasureCellHeight(text, width)
			require.NoError(t, err)
			require.Equal(t, height, len(lines),
				"WrapCell and MeasureCellHeight disagree for %q at width %d", text, width)
		}
	}
}

func Test_ResolveRowHeight(t *testing.T) {
	tests := []struct {
		name     string
		cells    []string
		widths   []int
		expected int
	}{
		{
			name:     "Empty row",
			cells:    []string{},
			widths:   []int{},
			expected: 1,
		},
		{
			name:     "All empty cells",
			cells:    []string{"", "", ""},
			widths:   []int{5, 5, 5},
			expected: 1,
		},
		{
			name:     "Max over cells",
			cells:    []string{"one", "a\nb\nc", "wrapwrapwrap"},
			widths:   []int{10, 10, 5},
			expected: 3,
		},
		{
			name:     "Single tall cell dominates",
			cells:    []string{"x", strings.Repeat("y", 31)},
			widths:   []int{1, 10},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			height, err := ResolveRowHeight(tt.cells, tt.widths)
			require.NoError(t, err, "ResolveRowHeight() should not fail")
			require.Equal(t, tt.expected, height, "row height should match")
		})
	}
}

func Test_ResolveRowHeight_Errors(t *testing.T) {
	_, err := ResolveRowHeight([]string{"a", "b"}, []int{5})
	require.ErrorIs(t, err, ErrShapeMismatch, "cell/width count mismatch should be rejected")

	_, err = ResolveRowHeight([]string{"a"}, []int{0})
	require.ErrorIs(t, err, ErrInvalidWidth, "zero width should propagate")
}
