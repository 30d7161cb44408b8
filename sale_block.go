package txf

import "strings"

// readSaleBlock reads the sale block starting at line i.
//
// pdftotext renders the sale block in two layouts:
//
//	11/28/2012 GROSS          sale date and gross marker on the same line
//
//	11/28/2012                sale date alone,
//	<92.56>                   an optional wash sale disallowed amount,
//	GROSS                     and the gross marker.
//
// It returns the sale date, the wash sale disallowed amount (empty if there is
// none) and the index of the first line after the block. The line following a
// wash amount is assumed to be the gross marker and is skipped unchecked.
func readSaleBlock(lines Lines, i int) (sold string, wash Amount, next int, err error) {
	if i >= len(lines) {
		return "", "", i, newParseError(Truncated, lines, len(lines)-1)
	}
	if fields := strings.Fields(lines[i]); len(fields) > 1 {
		return fields[0], "", i + 1, nil
	}
	sold = lines[i]
	if i+1 >= len(lines) {
		return "", "", i, newParseError(Truncated, lines, i)
	}
	if lines[i+1] == grossMarker {
		return sold, "", i + 2, nil
	}
	wash = Amount(lines[i+1])
	if err := wash.validate(); err != nil {
		return "", "", i, newParseError(InvalidAmount, lines, i+1)
	}
	return sold, wash, i + 3, nil
}

// newParseError returns a ParseError of kind for the line at index i (0-based).
func newParseError(kind ErrorKind, lines Lines, i int) *ParseError {
	return &ParseError{Kind: kind, Line: i + 1, Text: lines.At(i)}
}
