package model

// VisibleRow is one row of the current viewport window, with its resolved
// rendered height.
type VisibleRow struct {
	Index  int
	Cells  []string
	Height int
}

// Viewport selects the maximal contiguous row range of a Dataset that fits a
// line budget. Row heights are recomputed from scratch on every call, so the
// window stays correct when column widths or content change between calls; the
// cost per call is bounded by the terminal's line budget, not the dataset size.
//
// The only state carried between calls is the top row and the horizontal
// column offset. All out-of-range navigation is clamped, never an error.
type Viewport struct {
	ds             Dataset
	topRow         int
	availableLines int
	columnOffset   int
}

// NewViewport creates a viewport over ds positioned at the first row.
func NewViewport(ds Dataset, availableLines int) *Viewport {
	v := &Viewport{ds: ds}
	v.SetAvailableLines(availableLines)
	return v
}

// SetAvailableLines updates the line budget. Values below 1 are clamped to 1.
// The top row does not move; the next VisibleRange picks up the new budget.
func (v *Viewport) SetAvailableLines(n int) {
	if n < 1 {
		n = 1
	}
	v.availableLines = n
}

// TopRow returns the index of the first visible row.
func (v *Viewport) TopRow() int { return v.topRow }

// ColumnOffset returns the number of leading columns skipped by the renderer.
func (v *Viewport) ColumnOffset() int { return v.columnOffset }

// ShiftColumns moves the horizontal column offset by delta, clamped to the
// dataset's column range. Column offsets are column-granular and independent
// of row heights.
func (v *Viewport) ShiftColumns(delta int) {
	numCols := len(v.ds.ColumnNames())
	v.columnOffset += delta
	if v.columnOffset > numCols-1 {
		v.columnOffset = numCols - 1
	}
	if v.columnOffset < 0 {
		v.columnOffset = 0
	}
}

// VisibleRange returns the row range [start, end) that fits the line budget,
// starting at the top row. The range's total height never exceeds the budget
// except when even the first row alone is taller than the budget, in which
// case that single row is returned anyway so a non-empty dataset always shows
// at least one row.
func (v *Viewport) VisibleRange() (int, int, error) {
	n := v.ds.RowCount()
	if n == 0 {
		return 0, 0, nil
	}
	v.clampTopRow()

	end, err := v.fillForward(v.topRow)
	if err != nil {
		return 0, 0, err
	}
	return v.topRow, end, nil
}

// VisibleRows resolves the visible range into row records ready for rendering.
func (v *Viewport) VisibleRows() ([]VisibleRow, error) {
	start, end, err := v.VisibleRange()
	if err != nil {
		return nil, err
	}

	rows := make([]VisibleRow, 0, end-start)
	widths := v.ds.ColumnWidths()
	for i := start; i < end; i++ {
		cells := v.ds.CellsOfRow(i)
		height, err := ResolveRowHeight(cells, widths)
		if err != nil {
			return nil, err
		}
		rows = append(rows, VisibleRow{Index: i, Cells: cells, Height: height})
	}
	return rows, nil
}

// IndexLines returns the row labels of the current window, padded so the
// label panel's row boundaries coincide with the main panel's. The result is
// aligned 1:1 with VisibleRows.
func (v *Viewport) IndexLines() ([]string, error) {
	rows, err := v.VisibleRows()
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(rows))
	heights := make([]int, len(rows))
	for i, row := range rows {
		labels[i] = v.ds.RowLabel(row.Index)
		heights[i] = row.Height
	}
	return AlignLabels(labels, heights, true)
}

// PageForward advances the top row to the first row after the current window.
// At the end of the dataset it is a no-op.
func (v *Viewport) PageForward() error {
	_, end, err := v.VisibleRange()
	if err != nil {
		return err
	}
	if end < v.ds.RowCount() {
		v.topRow = end
	}
	return nil
}

// PageBackward re-runs the greedy fill in reverse from the row above the
// current top, so paging back lands on the boundary a forward page would have
// produced. If widths or content changed since the forward page the grid can
// drift; that is accepted best-effort behavior.
func (v *Viewport) PageBackward() error {
	n := v.ds.RowCount()
	if n == 0 || v.topRow == 0 {
		return nil
	}
	v.clampTopRow()

	widths := v.ds.ColumnWidths()
	used := 0
	start := v.topRow
	for i := v.topRow - 1; i >= 0; i-- {
		h, err := ResolveRowHeight(v.ds.CellsOfRow(i), widths)
		if err != nil {
			return err
		}
		if used+h > v.availableLines {
			if start == v.topRow {
				// Mirror of the forward overflow rule: always move at
				// least one row, even if it alone exceeds the budget.
				start = i
			}
			break
		}
		used += h
		start = i
	}
	v.topRow = start
	return nil
}

// ScrollToRow sets the top row directly, clamped to the dataset bounds.
func (v *Viewport) ScrollToRow(r int) {
	v.topRow = r
	v.clampTopRow()
}

// fillForward greedily accumulates rows from top while their total height
// stays within the budget. The candidate slice is bounded by the optimistic
// one-line-per-row estimate, so no more rows are measured than could fit.
func (v *Viewport) fillForward(top int) (int, error) {
	n := v.ds.RowCount()
	limit := top + v.availableLines
	if limit > n {
		limit = n
	}

	widths := v.ds.ColumnWidths()
	used := 0
	end := top
	for i := top; i < limit; i++ {
		h, err := ResolveRowHeight(v.ds.CellsOfRow(i), widths)
		if err != nil {
			return 0, err
		}
		if used+h > v.availableLines {
			if i == top {
				end = i + 1
			}
			break
		}
		used += h
		end = i + 1
	}
	return end, nil
}

func (v *Viewport) clampTopRow() {
	n := v.ds.RowCount()
	if n == 0 {
		v.topRow = 0
		return
	}
	if v.topRow > n-1 {
		v.topRow = n - 1
	}
	if v.topRow < 0 {
		v.topRow = 0
	}
}
