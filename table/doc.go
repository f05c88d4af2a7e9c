// Package table provides tabular data cleaning, reshaping, and date parsing
// for wide-format business data.
//
// The Table type holds string cells with named columns, loaded from CSV or
// XLSX. Cleaning operations fix embedded codes in text fields; Melt
// reshapes one-column-per-month data into long form; ParseDates turns
// textual month labels into calendar dates. All operations are single-pass
// and fail-stop: the first malformed cell aborts with an error, there are
// no partial results.
//
// A typical cleaning pass over a bookings table:
//
//	t, err := table.LoadCSV("bookings.csv")
//	t.ExtractAfter("customer", " - ")           // "113 - Shaws" -> "Shaws"
//	t.StripLeadingCode("business_unit")          // "5 Sauces" -> "Sauces"
//	t.SplitColumn("product", " - ",
//	    []string{"", "size", "description"})     // keep size + description
//
//	long, err := t.Melt(
//	    []string{"customer", "size", "description", "business_unit"},
//	    "month", "bookings")
//	dates, err := long.ParseDates("month", "Jan-02-2006")
package table
