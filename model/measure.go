package model

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MeasureCellHeight returns the number of terminal lines the cell text
// occupies when soft-wrapped to the given display width. Embedded line breaks
// split the text first; each segment then contributes one line per width's
// worth of display columns, with a minimum of one line even for empty text.
func MeasureCellHeight(text string, width int) (int, error) {
	if width < 1 {
		return 0, ErrInvalidWidth
	}

	height := 0
	for _, segment := range strings.Split(text, "\n") {
		height += segmentHeight(segment, width)
	}
	return height, nil
}

// WrapCell returns the wrapped display lines of the cell text at the given
// width. len(WrapCell(t, w)) always equals MeasureCellHeight(t, w); both walk
// segments the same way so wide runes cannot put them out of step.
func WrapCell(text string, width int) ([]string, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}

	var lines []string
	for _, segment := range strings.Split(text, "\n") {
		lines = append(lines, wrapSegment(segment, width)...)
	}
	return lines, nil
}

// ResolveRowHeight returns the rendered height of a row: the maximum cell
// height over all columns, or 1 for a row with no columns.
func ResolveRowHeight(cells []string, widths []int) (int, error) {
	if len(cells) != len(widths) {
		return 0, ErrShapeMismatch
	}

	height := 1
	for i := range cells {
		h, err := MeasureCellHeight(cells[i], widths[i])
		if err != nil {
			return 0, err
		}
		if h > height {
			height = h
		}
	}
	return height, nil
}

// segmentHeight counts wrapped lines without building them. It mirrors
// wrapSegment exactly: runes accumulate until the next one would exceed the
// width, and a rune wider than the whole line still occupies a line on its own.
func segmentHeight(segment string, width int) int {
	lines := 1
	used := 0
	for _, r := range segment {
		w := runewidth.RuneWidth(r)
		if used > 0 && used+w > width {
			lines++
			used = 0
		}
		used += w
	}
	return lines
}

func wrapSegment(segment string, width int) []string {
	lines := make([]string, 0, 1)
	var line strings.Builder
	used := 0
	for _, r := range segment {
		w := runewidth.RuneWidth(r)
		if used > 0 && used+w > width {
			lines = append(lines, line.String())
			line.Reset()
			used = 0
		}
		line.WriteRune(r)
		used += w
	}
	return append(lines, line.String())
}
