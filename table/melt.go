package table

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sartorproj/gosmooth/timeseries"
)

// Melt reshapes the table from wide to long form. The id columns are
// preserved as row keys; every other column becomes one output row per
// input row, holding the column's label under varName and its cell under
// valueName. Every cell of a melted column must parse as a number.
func (t *Table) Melt(idColumns []string, varName, valueName string) (*Table, error) {
	idIdx := make([]int, len(idColumns))
	isID := make(map[int]bool, len(idColumns))
	for i, name := range idColumns {
		idx, err := t.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		idIdx[i] = idx
		isID[idx] = true
	}

	var valueIdx []int
	for i := range t.Headers {
		if !isID[i] {
			valueIdx = append(valueIdx, i)
		}
	}
	if len(valueIdx) == 0 {
		return nil, fmt.Errorf("no columns left to melt")
	}

	headers := make([]string, 0, len(idColumns)+2)
	headers = append(headers, idColumns...)
	headers = append(headers, varName, valueName)

	rows := make([][]string, 0, len(t.Rows)*len(valueIdx))
	for r, row := range t.Rows {
		for _, v := range valueIdx {
			if _, err := strconv.ParseFloat(row[v], 64); err != nil {
				return nil, fmt.Errorf("row %d, column %q: %q is not numeric",
					r, t.Headers[v], row[v])
			}
			out := make([]string, 0, len(headers))
			for _, id := range idIdx {
				out = append(out, row[id])
			}
			out = append(out, t.Headers[v], row[v])
			rows = append(rows, out)
		}
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// Floats parses the named column as float64 values.
func (t *Table) Floats(column string) ([]float64, error) {
	cells, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %q is not numeric", i, cell)
		}
		out[i] = v
	}
	return out, nil
}

// ParseDates parses the named column with the given reference layout,
// e.g. "Jan-02-2006" for month-day-year labels. Any cell that does not
// match the layout is an error.
func (t *Table) ParseDates(column, layout string) ([]time.Time, error) {
	cells, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(cells))
	for i, cell := range cells {
		ts, err := time.Parse(layout, cell)
		if err != nil {
			return nil, fmt.Errorf("row %d: %q does not match layout %q", i, cell, layout)
		}
		out[i] = ts
	}
	return out, nil
}

// Series builds a time series from a long-form table, parsing dateColumn
// with the given layout and valueColumn as numbers. Rows keep their table
// order.
func (t *Table) Series(dateColumn, valueColumn, layout string) (*timeseries.Series, error) {
	dates, err := t.ParseDates(dateColumn, layout)
	if err != nil {
		return nil, err
	}
	values, err := t.Floats(valueColumn)
	if err != nil {
		return nil, err
	}
	return timeseries.NewWithTimestamps(dates, values)
}
