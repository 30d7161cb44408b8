package txf

import (
	"slices"
	"strings"

	"github.com/etnz/txf/date"
	"github.com/pkg/errors"
)

// SymbolSummary aggregates the records of one symbol.
type SymbolSummary struct {
	Symbol   string
	Records  int
	Quantity Quantity
	Washes   int // number of records with a wash sale adjustment
	Totals   Totals
}

// Summary aggregates trade records for reconciliation with the summary page of
// the statement. It is a RecordWriter, records are added with WriteRecord.
type Summary struct {
	Records   int
	Totals    Totals
	FirstSale date.Date // zero if no sale date could be read
	LastSale  date.Date

	bySymbol map[string]*SymbolSummary
}

// NewSummary returns an empty summary.
func NewSummary() *Summary {
	return &Summary{
		Totals:   NewTotals(),
		bySymbol: make(map[string]*SymbolSummary),
	}
}

// WriteRecord adds r to the summary.
func (s *Summary) WriteRecord(r TradeRecord) error {
	totals, symTotals := s.Totals, NewTotals()
	sym, ok := s.bySymbol[r.Symbol]
	if ok {
		symTotals = sym.Totals
	}
	if err := totals.Add(r); err != nil {
		return errors.Wrapf(err, "cannot summarize record of line %d", r.Line)
	}
	if err := symTotals.Add(r); err != nil {
		return errors.Wrapf(err, "cannot summarize record of line %d", r.Line)
	}
	if !ok {
		sym = &SymbolSummary{Symbol: r.Symbol, Quantity: Q(0)}
		s.bySymbol[r.Symbol] = sym
	}
	s.Totals = totals
	sym.Totals = symTotals
	sym.Records++
	sym.Quantity = sym.Quantity.Add(r.Quantity)
	if r.HasWash() {
		sym.Washes++
	}
	s.Records++

	// sale dates are informative only, they are not part of the records checks.
	if sold, err := date.Parse(r.Sold); err == nil {
		if s.FirstSale.IsZero() || sold.Before(s.FirstSale) {
			s.FirstSale = sold
		}
		if s.LastSale.IsZero() || sold.After(s.LastSale) {
			s.LastSale = sold
		}
	}
	return nil
}

// Close does nothing, it makes Summary a RecordWriter.
func (s *Summary) Close() error { return nil }

// Symbols returns the per symbol summaries, sorted by symbol.
func (s *Summary) Symbols() []*SymbolSummary {
	list := make([]*SymbolSummary, 0, len(s.bySymbol))
	for _, sym := range s.bySymbol {
		list = append(list, sym)
	}
	slices.SortFunc(list, func(a, b *SymbolSummary) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})
	return list
}
