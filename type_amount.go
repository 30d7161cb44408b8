package txf

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Amount is a monetary amount kept as the decimal string that will be written
// in the outputs.
//
// The empty Amount means "no amount", it is worth zero.
type Amount string

var amountCleaner = strings.NewReplacer(`"`, "", ",", "")

// NormalizeAmount strips quote characters and thousands separators from s.
//
// NormalizeAmount is idempotent.
func NormalizeAmount(s string) Amount {
	return Amount(amountCleaner.Replace(s))
}

// IsEmpty reports whether there is no amount.
func (a Amount) IsEmpty() bool { return a == "" }

// Decimal returns the numeric value of a.
//
// Wash sale amounts are printed between angle brackets ("<92.56>"), they are
// ignored, as are quotes and thousands separators.
func (a Amount) Decimal() (decimal.Decimal, error) {
	if a.IsEmpty() {
		return decimal.Zero, nil
	}
	s := string(NormalizeAmount(string(a)))
	s = strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid amount %q", string(a))
	}
	return d, nil
}

// validateStrict checks that a is a plain non-negative decimal.
//
// Angle brackets denote a negative value on the statement, they are rejected.
func (a Amount) validateStrict() error {
	d, err := decimal.NewFromString(string(a))
	if err != nil {
		return errors.Wrapf(err, "invalid amount %q", string(a))
	}
	if d.IsNegative() {
		return errors.Errorf("negative amount %q", string(a))
	}
	return nil
}

// validate checks that a is a valid non-negative amount, in angle brackets or not.
func (a Amount) validate() error {
	d, err := a.Decimal()
	if err != nil {
		return err
	}
	if d.IsNegative() {
		return errors.Errorf("negative amount %q", string(a))
	}
	return nil
}
