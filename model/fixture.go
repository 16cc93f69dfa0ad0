package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// Fixture generation for exercising the renderer: mixed-type columns with two
// leading multi-line string columns, mirroring the kind of dataset that makes
// row heights uneven. Deterministic for a given seed.

type columnMaker func(f *gofakeit.Faker, numRows int) (string, []string)

// MixedTable generates a numRows x numCols table. The first two columns hold
// multi-line strings (up to 2 and 3 lines); the rest cycle through int, float
// and single-line string columns.
func MixedTable(numRows, numCols int, seed uint64) *Table {
	if numCols < 2 {
		numCols = 2
	}
	f := gofakeit.New(seed)

	columns := []string{"str_smol", "str_large"}
	cells := [][]string{
		multiLineColumn(f, numRows, 2),
		multiLineColumn(f, numRows, 3),
	}

	makers := []columnMaker{intColumn, floatColumn, stringColumn}
	for colNum := 2; colNum < numCols; colNum++ {
		name, values := makers[(colNum-2)%len(makers)](f, numRows)
		columns = append(columns, fmt.Sprintf("%s_%d", name, colNum))
		cells = append(cells, values)
	}

	rows := make([][]string, numRows)
	for i := range rows {
		row := make([]string, len(columns))
		for j := range columns {
			row[j] = cells[j][i]
		}
		rows[i] = row
	}
	return NewTable("fixture", columns, rows)
}

// MixedTableWithIndex is MixedTable with a synthesized hierarchical row index
// of the given depth attached as row labels.
func MixedTableWithIndex(numRows, numCols, depth int, seed uint64) (*Table, error) {
	table := MixedTable(numRows, numCols, seed)

	index, err := BuildHierarchicalIndex(numRows, depth)
	if err != nil {
		return nil, err
	}
	flat := make([]string, numRows)
	for i := range flat {
		flat[i] = strconv.Itoa(i)
	}
	labels, err := index.Labels(flat)
	if err != nil {
		return nil, err
	}
	if err := table.SetLabels(labels); err != nil {
		return nil, err
	}
	return table, nil
}

func multiLineColumn(f *gofakeit.Faker, numRows, maxLines int) []string {
	values := make([]string, numRows)
	for i := range values {
		numLines := f.Number(1, maxLines)
		lines := make([]string, numLines)
		for l := range lines {
			lines[l] = f.Name()
		}
		values[i] = strings.Join(lines, "\n")
	}
	return values
}

func intColumn(f *gofakeit.Faker, numRows int) (string, []string) {
	ranges := []struct {
		name string
		max  int
	}{
		{"smol_ints", 100},
		{"large_ints", 1000},
		{"larger_ints", 1000000},
	}
	r := ranges[f.Number(0, len(ranges)-1)]

	values := make([]string, numRows)
	for i := range values {
		values[i] = strconv.Itoa(f.Number(0, r.max))
	}
	return r.name, values
}

func floatColumn(f *gofakeit.Faker, numRows int) (string, []string) {
	magnitudes := []struct {
		name string
		max  float64
	}{
		{"smol_floats", 100},
		{"large_floats", 1000},
		{"larger_floats", 1000000},
	}
	m := magnitudes[f.Number(0, len(magnitudes)-1)]

	values := make([]string, numRows)
	for i := range values {
		values[i] = strconv.FormatFloat(f.Float64Range(0, m.max), 'f', 3, 64)
	}
	return m.name, values
}

func stringColumn(f *gofakeit.Faker, numRows int) (string, []string) {
	providers := []struct {
		name string
		fn   func() string
	}{
		{"name", f.Name},
		{"favourite_colour", f.SafeColor},
		{"phone_number", f.PhoneFormatted},
		{"city", f.City},
	}
	p := providers[f.Number(0, len(providers)-1)]

	values := make([]string, numRows)
	for i := range values {
		values[i] = p.fn()
	}
	return p.name, values
}
