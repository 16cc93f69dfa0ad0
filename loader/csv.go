package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apache/arrow-go/v18/arrow/csv"

	"github.com/datapeek/datapeek/model"
)

// loadCSV reads a CSV file with type inference. Quoted fields may contain
// embedded line breaks; those survive into the cells and drive multi-line
// rendering. Nulls (empty fields) become empty cells.
func loadCSV(path string) (*model.Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = fh.Close() }()

	rdr := csv.NewInferringReader(fh,
		csv.WithHeader(true),
		csv.WithChunk(1024),
		csv.WithNullReader(true, ""),
	)
	defer rdr.Release()

	var columns []string
	var rows [][]string
	for rdr.Next() {
		rec := rdr.Record()
		if columns == nil {
			for _, field := range rec.Schema().Fields() {
				columns = append(columns, field.Name)
			}
		}
		numRows := int(rec.NumRows())
		numCols := int(rec.NumCols())
		for i := 0; i < numRows; i++ {
			row := make([]string, numCols)
			for j := 0; j < numCols; j++ {
				col := rec.Column(j)
				if col.IsNull(i) {
					continue
				}
				row[j] = col.ValueStr(i)
			}
			rows = append(rows, row)
		}
	}
	if err := rdr.Err(); err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	if columns == nil {
		// Header-only or empty file; fall back to the inferred schema if any.
		if schema := rdr.Schema(); schema != nil {
			for _, field := range schema.Fields() {
				columns = append(columns, field.Name)
			}
		}
	}

	return model.NewTable(filepath.Base(path), columns, rows), nil
}
