package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	pio "github.com/hangxie/parquet-tools/io"

	"github.com/datapeek/datapeek/model"
)

// parquetBatchSize bounds how many rows are decoded per read call.
const parquetBatchSize = 1000

// loadParquet reads a parquet file into display-ready string cells. Column
// order comes from the footer schema's leaf elements; row values are decoded
// through a JSON round trip so nested values render as compact JSON and
// integers keep their exact formatting.
func loadParquet(uri string, readOpt pio.ReadOption) (*model.Table, error) {
	pr, err := pio.NewParquetFileReader(uri, readOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = pr.PFile.Close() }()

	var columns []string
	for _, elem := range pr.Footer.Schema {
		if elem.IsSetType() {
			columns = append(columns, elem.Name)
		}
	}

	numRows := int(pr.GetNumRows())
	rows := make([][]string, 0, numRows)
	for len(rows) < numRows {
		batch := parquetBatchSize
		if remaining := numRows - len(rows); remaining < batch {
			batch = remaining
		}
		raw, err := pr.ReadByNumber(batch)
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
		if len(raw) == 0 {
			break
		}
		for _, rowValue := range raw {
			cells, err := parquetRowCells(rowValue, columns)
			if err != nil {
				return nil, err
			}
			rows = append(rows, cells)
		}
	}

	return model.NewTable(filepath.Base(uri), columns, rows), nil
}

// parquetRowCells flattens one decoded row struct into cells ordered by the
// footer columns. Field names are matched case-insensitively because the
// reader capitalizes them for export.
func parquetRowCells(rowValue any, columns []string) ([]string, error) {
	encoded, err := json.Marshal(rowValue)
	if err != nil {
		return nil, fmt.Errorf("failed to decode parquet row: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()
	fields := map[string]any{}
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to decode parquet row: %w", err)
	}

	folded := make(map[string]any, len(fields))
	for k, v := range fields {
		folded[strings.ToLower(k)] = v
	}

	cells := make([]string, len(columns))
	for j, name := range columns {
		value, ok := fields[name]
		if !ok {
			value = folded[strings.ToLower(name)]
		}
		cells[j] = formatParquetValue(value)
	}
	return cells, nil
}

func formatParquetValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return fmt.Sprintf("%v", v)
	default:
		// Nested lists/maps/structs render as compact JSON.
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
