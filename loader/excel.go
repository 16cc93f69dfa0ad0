package loader

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/datapeek/datapeek/model"
)

// loadExcel reads the first sheet of an xlsx workbook, treating the first row
// as the header.
func loadExcel(path string) (*model.Table, error) {
	fh, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer func() { _ = fh.Close() }()

	sheet := fh.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheets in %s", filepath.Base(path))
	}

	rows, err := fh.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return model.NewTable(filepath.Base(path), nil, nil), nil
	}

	// GetRows drops trailing empty cells, so data rows can be wider than the
	// header when header cells are blank. Size columns to the widest row.
	columns := rows[0]
	for _, row := range rows[1:] {
		for len(columns) < len(row) {
			columns = append(columns, fmt.Sprintf("column_%d", len(columns)))
		}
	}

	return model.NewTable(filepath.Base(path), columns, rows[1:]), nil
}
