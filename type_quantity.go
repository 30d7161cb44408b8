package txf

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Quantity is a number of shares.
type Quantity struct {
	value decimal.Decimal
}

// Q returns a Quantity from a numeric value.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Quantity{value: v}
	case float64:
		return Quantity{value: decimal.NewFromFloat(v)}
	case int:
		return Quantity{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Quantity{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParseQuantity parses a share count as printed on the statement ("2", "10.5", "1,000").
func ParseQuantity(s string) (Quantity, error) {
	v, err := decimal.NewFromString(string(NormalizeAmount(s)))
	if err != nil {
		return Quantity{}, errors.Wrapf(err, "invalid quantity %q", s)
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) Decimal() decimal.Decimal    { return q.value }
func (q Quantity) InexactFloat64() float64     { return q.value.InexactFloat64() }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }

// String returns the shortest decimal representation ("2", not "2.0").
func (q Quantity) String() string { return q.value.String() }
