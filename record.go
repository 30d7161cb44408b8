package txf

import "strings"

// Identifier prefixes of the CUSIPs of the Alphabet share classes reported on
// the statement (38259P for Google Inc., 02079K for Alphabet Inc.).
var identifierPrefixes = []string{"3825", "0207"}

// symbols is the allow-list of tickers. They denote the same underlying security
// across the 2014 split and the 2015 reorganization.
var symbols = map[string]bool{
	"GOOG":  true,
	"GOOGL": true,
}

const (
	nonCoveredMarker = "X"     // non covered security flag at the end of the acquisition line
	grossMarker      = "GROSS" // marks proceeds reported gross of commissions
	washMarker       = "W"     // tabular flag of a wash sale adjustment
)

// isIdentifier reports whether line opens a trade entry.
func isIdentifier(line string) bool {
	for _, p := range identifierPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// IsSymbol reports whether symbol is one of the supported tickers.
func IsSymbol(symbol string) bool { return symbols[symbol] }

// TradeRecord is one realized sale event of the statement.
type TradeRecord struct {
	CUSIP    string   // identifier line that opened the entry
	Line     int      // 1-based line number of the identifier line
	Symbol   string   // GOOG or GOOGL
	Quantity Quantity // shares sold, > 0

	// Dates are kept as printed (MM/DD/YYYY), the outputs use that same layout.
	Acquired string
	Sold     string

	CostBasis Amount
	Proceeds  Amount
	// WashDisallowed is the literal wash sale disallowed amount, empty if none.
	WashDisallowed Amount
}

// Description returns the "<quantity> <symbol>" description of the sale.
func (r TradeRecord) Description() string { return r.Quantity.String() + " " + r.Symbol }

// HasWash reports whether a wash sale adjustment applies to r.
func (r TradeRecord) HasWash() bool { return !r.WashDisallowed.IsEmpty() }
