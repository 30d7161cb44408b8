package renderer

import "github.com/etnz/txf"

// Summary is the data of the summary report.
// Amounts keep their exact decimal types, so that they already render as money.
type Summary struct {
	// Source is the name of the statement file.
	Source string
	// Records is the number of trade records.
	Records int
	// FirstSale and LastSale are the range of sale dates, empty if unknown.
	FirstSale string
	LastSale  string
	// Totals of all the records.
	Totals txf.Totals
	// Symbols holds the per symbol breakdown, sorted by symbol.
	Symbols []*txf.SymbolSummary
}

// NewSummary creates the report data of s.
func NewSummary(source string, s *txf.Summary) *Summary {
	return &Summary{
		Source:    source,
		Records:   s.Records,
		FirstSale: s.FirstSale.String(),
		LastSale:  s.LastSale.String(),
		Totals:    s.Totals,
		Symbols:   s.Symbols(),
	}
}
