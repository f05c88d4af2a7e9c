package table

import (
	"fmt"
	"strings"
	"unicode"
)

// ExtractAfter keeps only the text after the first occurrence of sep in
// every cell of the named column: "113 - Shaws" with sep " - " becomes
// "Shaws". A cell without the separator is an error.
func (t *Table) ExtractAfter(column, sep string) error {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return err
	}
	for i, row := range t.Rows {
		_, after, found := strings.Cut(row[idx], sep)
		if !found {
			return fmt.Errorf("row %d: %q does not contain %q", i, row[idx], sep)
		}
		row[idx] = after
	}
	return nil
}

// StripLeadingCode removes a leading numeric code and the single space that
// follows it from every cell of the named column: "5 Sauces" becomes
// "Sauces". A cell without that shape is an error.
func (t *Table) StripLeadingCode(column string) error {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return err
	}
	for i, row := range t.Rows {
		cell := row[idx]
		j := 0
		for j < len(cell) && unicode.IsDigit(rune(cell[j])) {
			j++
		}
		if j == 0 || j >= len(cell) || cell[j] != ' ' {
			return fmt.Errorf("row %d: %q has no leading numeric code", i, cell)
		}
		row[idx] = cell[j+1:]
	}
	return nil
}

// SplitColumn splits every cell of the named column on sep into exactly
// len(names) tokens and replaces the column with one new column per
// non-empty name, in token order. Tokens named "" are discarded:
//
//	t.SplitColumn("product", " - ", []string{"", "size", "description"})
//
// turns "WX1X - 9 gal - Jelly" into size "9 gal" and description "Jelly".
// A cell with a different number of tokens is an error.
func (t *Table) SplitColumn(column, sep string, names []string) error {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return err
	}

	kept := make([]int, 0, len(names))
	keptNames := make([]string, 0, len(names))
	for tok, name := range names {
		if name != "" {
			kept = append(kept, tok)
			keptNames = append(keptNames, name)
		}
	}
	if len(kept) == 0 {
		return fmt.Errorf("split of %q keeps no tokens", column)
	}

	newRows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		tokens := strings.Split(row[idx], sep)
		if len(tokens) != len(names) {
			return fmt.Errorf("row %d: %q splits into %d tokens, expected %d",
				i, row[idx], len(tokens), len(names))
		}
		newRow := make([]string, 0, len(row)-1+len(kept))
		newRow = append(newRow, row[:idx]...)
		for _, tok := range kept {
			newRow = append(newRow, tokens[tok])
		}
		newRow = append(newRow, row[idx+1:]...)
		newRows[i] = newRow
	}

	newHeaders := make([]string, 0, len(t.Headers)-1+len(kept))
	newHeaders = append(newHeaders, t.Headers[:idx]...)
	newHeaders = append(newHeaders, keptNames...)
	newHeaders = append(newHeaders, t.Headers[idx+1:]...)

	t.Headers = newHeaders
	t.Rows = newRows
	return nil
}
