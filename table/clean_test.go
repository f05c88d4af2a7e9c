package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAfter(t *testing.T) {
	tbl := bookingsTable(t)
	require.NoError(t, tbl.ExtractAfter("customer", " - "))

	col, err := tbl.Column("customer")
	require.NoError(t, err)
	assert.Equal(t, []string{"Shaws", "Kroger"}, col)
}

func TestExtractAfterMissingSeparator(t *testing.T) {
	tbl, err := New([]string{"customer"}, [][]string{{"Shaws"}})
	require.NoError(t, err)
	assert.Error(t, tbl.ExtractAfter("customer", " - "))
}

func TestStripLeadingCode(t *testing.T) {
	tbl := bookingsTable(t)
	require.NoError(t, tbl.StripLeadingCode("business_unit"))

	col, err := tbl.Column("business_unit")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sauces", "Condiments"}, col)
}

func TestStripLeadingCodeMalformed(t *testing.T) {
	for _, cell := range []string{"Sauces", "5Sauces", "5"} {
		tbl, err := New([]string{"bu"}, [][]string{{cell}})
		require.NoError(t, err)
		assert.Error(t, tbl.StripLeadingCode("bu"), "cell %q", cell)
	}
}

func TestSplitColumn(t *testing.T) {
	tbl := bookingsTable(t)
	require.NoError(t, tbl.SplitColumn("product", " - ", []string{"", "size", "description"}))

	assert.Equal(t,
		[]string{"customer", "size", "description", "business_unit", "Jan-01-2010", "Feb-01-2010"},
		tbl.Headers)

	size, err := tbl.Column("size")
	require.NoError(t, err)
	assert.Equal(t, []string{"9 gal", "4 oz"}, size)

	desc, err := tbl.Column("description")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jelly", "Mustard"}, desc)
}

func TestSplitColumnWrongTokenCount(t *testing.T) {
	tbl, err := New([]string{"product"}, [][]string{{"WX1X - Jelly"}})
	require.NoError(t, err)
	assert.Error(t, tbl.SplitColumn("product", " - ", []string{"", "size", "description"}))
}

func TestSplitColumnKeepsNothing(t *testing.T) {
	tbl := bookingsTable(t)
	assert.Error(t, tbl.SplitColumn("product", " - ", []string{"", "", ""}))
}

func TestCleaningPipeline(t *testing.T) {
	// The full walkthrough: extract, strip, split, then melt and parse dates
	tbl := bookingsTable(t)
	require.NoError(t, tbl.ExtractAfter("customer", " - "))
	require.NoError(t, tbl.StripLeadingCode("business_unit"))
	require.NoError(t, tbl.SplitColumn("product", " - ", []string{"", "size", "description"}))

	long, err := tbl.Melt(
		[]string{"customer", "size", "description", "business_unit"},
		"month", "bookings")
	require.NoError(t, err)

	// 2 rows x 2 month columns
	assert.Equal(t, 4, long.NumRows())
	assert.Equal(t,
		[]string{"customer", "size", "description", "business_unit", "month", "bookings"},
		long.Headers)
	assert.Equal(t,
		[]string{"Shaws", "9 gal", "Jelly", "Sauces", "Jan-01-2010", "100"},
		long.Rows[0])

	dates, err := long.ParseDates("month", "Jan-02-2006")
	require.NoError(t, err)
	assert.Equal(t, 2010, dates[0].Year())
	assert.Equal(t, 1, dates[0].Day())

	values, err := long.Floats("bookings")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 110.5, 95, 87}, values)
}
