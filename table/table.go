// Package table provides tabular data cleaning, reshaping, and date parsing
// for wide-format business data.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is an in-memory table of string cells with named columns. Cleaning
// operations transform it in place; reshaping produces a new table.
type Table struct {
	Headers []string
	Rows    [][]string
}

// New creates a table, checking that every row matches the header width.
func New(headers []string, rows [][]string) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(headers))
		}
	}
	return &Table{Headers: headers, Rows: rows}, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, h := range t.Headers {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no column named %q", name)
}

// Column returns a copy of the named column's cells.
func (t *Table) Column(name string) ([]string, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	headers := make([]string, len(t.Headers))
	copy(headers, t.Headers)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		copy(rows[i], row)
	}
	return &Table{Headers: headers, Rows: rows}
}

// LoadCSV loads a table from a CSV file with a header row.
func LoadCSV(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV reads a table from an io.Reader of CSV data with a header row.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}

	return New(header, rows)
}

// WriteCSV writes the table as CSV.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the table to a CSV file.
func (t *Table) SaveCSV(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return t.WriteCSV(file)
}
