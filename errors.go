package txf

import "fmt"

// ErrorKind classifies structural parse errors.
type ErrorKind int

const (
	MalformedQuantity    ErrorKind = iota + 1 // not "<number> SHARES OF <symbol>"
	InvalidQuantity                           // quantity is not strictly positive
	UnknownSymbol                             // symbol is not in the allow-list
	MalformedAcquisition                      // not "<date> <proceeds> <basis> <marker>"
	UnexpectedMarker                          // non covered security marker is not "X"
	InvalidAmount                             // proceeds, basis or wash amount is not a non-negative number
	Truncated                                 // the entry is cut by the end of the text
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedQuantity:
		return "malformed quantity line"
	case InvalidQuantity:
		return "invalid quantity"
	case UnknownSymbol:
		return "unsupported symbol"
	case MalformedAcquisition:
		return "malformed acquisition line"
	case UnexpectedMarker:
		return "expected non covered security marker " + nonCoveredMarker
	case InvalidAmount:
		return "invalid amount"
	case Truncated:
		return "truncated entry"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError reports a line that does not match the statement layout.
//
// It is always fatal for the entry being parsed: format violations come from an
// extraction defect or an unsupported statement layout and need a human review.
type ParseError struct {
	Kind ErrorKind
	Line int    // 1-based line number
	Text string // offending line content
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing input line %d: %v: %s", e.Line, e.Kind, e.Text)
}
