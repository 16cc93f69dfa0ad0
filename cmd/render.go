package cmd

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/datapeek/datapeek/model"
)

// columnGap separates adjacent columns in the rendered grid.
const columnGap = "  "

// renderTableLines lays out a visible window as fixed-width text lines: one
// header line, then Height lines per row. Cells wrap inside their column
// width, shorter cells pad with blanks so every row occupies exactly its
// resolved height. Columns before columnOffset are skipped; each finished
// line is clipped to maxWidth (0 disables clipping).
func renderTableLines(ds model.Dataset, rows []model.VisibleRow, columnOffset, maxWidth int) ([]string, error) {
	names := ds.ColumnNames()
	widths := ds.ColumnWidths()
	if columnOffset < 0 {
		columnOffset = 0
	}
	if columnOffset > len(names) {
		columnOffset = len(names)
	}
	names = names[columnOffset:]
	widths = widths[columnOffset:]

	lines := make([]string, 0, len(rows)+1)

	header := make([]string, len(names))
	for j, name := range names {
		header[j] = runewidth.FillRight(runewidth.Truncate(name, widths[j], "…"), widths[j])
	}
	lines = append(lines, clipLine(strings.Join(header, columnGap), maxWidth))

	for _, row := range rows {
		wrapped := make([][]string, len(names))
		for j := range names {
			cell, err := model.WrapCell(row.Cells[columnOffset+j], widths[j])
			if err != nil {
				return nil, err
			}
			wrapped[j] = cell
		}
		for line := 0; line < row.Height; line++ {
			parts := make([]string, len(names))
			for j := range names {
				segment := ""
				if line < len(wrapped[j]) {
					segment = wrapped[j][line]
				}
				parts[j] = runewidth.FillRight(segment, widths[j])
			}
			lines = append(lines, clipLine(strings.Join(parts, columnGap), maxWidth))
		}
	}

	return lines, nil
}

func clipLine(line string, maxWidth int) string {
	if maxWidth <= 0 {
		return line
	}
	return runewidth.Truncate(line, maxWidth, "")
}

// windowTSV flattens a visible window into tab-separated text for the
// clipboard. Line breaks inside cells become spaces so each dataset row
// stays on one TSV line.
func windowTSV(ds model.Dataset, rows []model.VisibleRow) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(ds.ColumnNames(), "\t"))
	sb.WriteString("\n")
	for _, row := range rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = strings.ReplaceAll(cell, "\n", " ")
		}
		sb.WriteString(strings.Join(cells, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}
