package model

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxColumnWidth caps content-derived column widths so a single long cell
// cannot push every other column off screen; it wraps instead.
const maxColumnWidth = 30

// Dataset is read-only tabular data addressable by contiguous row ranges.
// Implementations must return stable column widths for the lifetime of a
// render session; the viewport recomputes row heights from them on every call.
type Dataset interface {
	// RowCount returns the number of rows.
	RowCount() int
	// CellsOfRow returns the display-ready cell values of row i, one per column.
	CellsOfRow(i int) []string
	// ColumnNames returns the display names of the columns.
	ColumnNames() []string
	// ColumnWidths returns the allotted display width of each column (≥ 1).
	ColumnWidths() []int
	// RowLabel returns the index-panel label of row i.
	RowLabel(i int) string
}

// Table is an in-memory Dataset. Column widths are derived from content when
// the table is built: the widest unwrapped display line among the header and
// all cells of the column, capped at maxColumnWidth.
type Table struct {
	name    string
	columns []string
	rows    [][]string
	labels  []string
	widths  []int
}

// NewTable builds a Table over the given header and cell grid. Ragged rows are
// padded with empty cells to the header width.
func NewTable(name string, columns []string, rows [][]string) *Table {
	t := &Table{
		name:    name,
		columns: columns,
		rows:    make([][]string, len(rows)),
	}

	for i, row := range rows {
		if len(row) == len(columns) {
			t.rows[i] = row
			continue
		}
		padded := make([]string, len(columns))
		copy(padded, row)
		t.rows[i] = padded
	}

	t.widths = deriveWidths(columns, t.rows)
	return t
}

// SetLabels attaches row labels; without them labels default to row numbers.
func (t *Table) SetLabels(labels []string) error {
	if len(labels) != len(t.rows) {
		return ErrShapeMismatch
	}
	t.labels = labels
	return nil
}

// Name returns the dataset name (usually the source file name).
func (t *Table) Name() string { return t.name }

func (t *Table) RowCount() int { return len(t.rows) }

func (t *Table) CellsOfRow(i int) []string { return t.rows[i] }

func (t *Table) ColumnNames() []string { return t.columns }

func (t *Table) ColumnWidths() []int { return t.widths }

func (t *Table) RowLabel(i int) string {
	if t.labels != nil {
		return t.labels[i]
	}
	return strconv.Itoa(i)
}

// deriveWidths measures the widest display line per column. Widths never drop
// below 1 so height measurement stays well-defined for empty columns.
func deriveWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for j, name := range columns {
		widths[j] = widestLine(name)
	}
	for _, row := range rows {
		for j, cell := range row {
			if w := widestLine(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}
	for j, w := range widths {
		if w > maxColumnWidth {
			widths[j] = maxColumnWidth
		} else if w < 1 {
			widths[j] = 1
		}
	}
	return widths
}

func widestLine(text string) int {
	widest := 0
	for _, line := range strings.Split(text, "\n") {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// DatasetInfo is the transport form of dataset-level metadata.
type DatasetInfo struct {
	Name       string `json:"name"`
	NumRows    int    `json:"numRows"`
	NumColumns int    `json:"numColumns"`
}

// ColumnInfo is the transport form of a column descriptor.
type ColumnInfo struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
}
