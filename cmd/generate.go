package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/datapeek/datapeek/model"
)

// GenerateCmd is a kong command for generate
type GenerateCmd struct {
	Output     string `arg:"" predictor:"file" help:"Path of the CSV file to write."`
	Rows       int    `default:"300" help:"Number of rows."`
	Cols       int    `default:"10" help:"Number of columns."`
	IndexDepth int    `default:"1" help:"Hierarchical index levels; 1 keeps plain row numbers."`
	Seed       uint64 `default:"0" help:"Random seed; 0 picks one."`
}

// Run does actual generate job
func (g GenerateCmd) Run() error {
	var table *model.Table
	var err error
	if g.IndexDepth >= 2 {
		table, err = model.MixedTableWithIndex(g.Rows, g.Cols, g.IndexDepth, g.Seed)
		if err != nil {
			return err
		}
	} else {
		table = model.MixedTable(g.Rows, g.Cols, g.Seed)
	}

	fh, err := os.Create(g.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", g.Output, err)
	}
	defer func() { _ = fh.Close() }()

	w := csv.NewWriter(fh)

	header := table.ColumnNames()
	if g.IndexDepth >= 2 {
		header = append([]string{"index"}, header...)
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < table.RowCount(); i++ {
		row := table.CellsOfRow(i)
		if g.IndexDepth >= 2 {
			row = append([]string{table.RowLabel(i)}, row...)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	fmt.Printf("Wrote %d rows x %d columns to %s\n", table.RowCount(), len(table.ColumnNames()), g.Output)
	return nil
}
