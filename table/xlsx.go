package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX loads a table from the named sheet of an XLSX workbook. The
// first row is the header; shorter rows are padded with empty cells since
// XLSX omits trailing blanks.
func LoadXLSX(filename, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return fromXLSX(f, sheet)
}

func fromXLSX(f *excelize.File, sheet string) (*Table, error) {
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	headers := raw[0]
	rows := make([][]string, 0, len(raw)-1)
	for _, r := range raw[1:] {
		row := make([]string, len(headers))
		copy(row, r)
		rows = append(rows, row)
	}

	return New(headers, rows)
}

// SaveXLSX writes the table to a single-sheet XLSX workbook.
func (t *Table) SaveXLSX(filename, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	}

	if err := writeRow(f, sheet, 1, t.Headers); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(filename)
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheet, cell, &values)
}
