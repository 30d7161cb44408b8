package txf

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Totals accumulates the amounts of trade records.
type Totals struct {
	Proceeds Money
	Basis    Money
	Wash     Money
}

// NewTotals returns empty totals in USD.
func NewTotals() Totals {
	zero := M(decimal.Zero, USD)
	return Totals{Proceeds: zero, Basis: zero, Wash: zero}
}

// Add adds r's proceeds, cost basis and wash disallowed amount (if any) to t.
//
// t is left unchanged if one of the amounts is invalid.
func (t *Totals) Add(r TradeRecord) error {
	proceeds, err := r.Proceeds.Decimal()
	if err != nil {
		return errors.Wrap(err, "proceeds")
	}
	basis, err := r.CostBasis.Decimal()
	if err != nil {
		return errors.Wrap(err, "cost basis")
	}
	wash, err := r.WashDisallowed.Decimal()
	if err != nil {
		return errors.Wrap(err, "wash sale disallowed")
	}
	t.Proceeds = t.Proceeds.Add(M(proceeds, USD))
	t.Basis = t.Basis.Add(M(basis, USD))
	t.Wash = t.Wash.Add(M(wash, USD))
	return nil
}

// Equal reports whether t and u hold the same amounts.
func (t Totals) Equal(u Totals) bool {
	return t.Proceeds.Equal(u.Proceeds) && t.Basis.Equal(u.Basis) && t.Wash.Equal(u.Wash)
}
