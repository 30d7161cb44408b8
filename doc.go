// Package txf converts the text of a brokerage capital gains statement (the
// 1099-B of an equity award account, as extracted from the PDF by pdftotext)
// into tax software exchange records.
//
// The core is the [Extractor]: a small state machine that walks the statement
// lines, recognizes the start of each trade entry by its CUSIP and rebuilds
// one [TradeRecord] from the three to five lines the entry was wrapped on.
//
// The records can then be written in several formats:
//   - TXF, the Tax Exchange Format understood by tax preparation software.
//   - CSV, one row per trade, for spreadsheets and manual review.
//   - XLSX, the same rows in an Excel workbook.
//
// Running [Totals] of proceeds, cost basis and wash sale disallowed amounts are
// kept along the way so that they can be checked against the summary printed on
// the statement.
//
// This package serves as the foundational logic for the `eac2txf` command-line
// tool.
package txf
