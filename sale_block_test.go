package txf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSaleBlock(t *testing.T) {
	tests := []struct {
		name  string
		lines Lines
		sold  string
		wash  Amount
		next  int
	}{
		{"date and gross on one line", Lines{"11/28/2012 GROSS"}, "11/28/2012", "", 1},
		{"wash on the same line is ignored", Lines{"11/28/2012 Gross <92.56>"}, "11/28/2012", "", 1},
		{"gross on its own line", Lines{"11/28/2012", "GROSS", "next"}, "11/28/2012", "", 2},
		{"wash then gross", Lines{"11/28/2012", "<92.56>", "GROSS", "next"}, "11/28/2012", "<92.56>", 3},
		{"wash at the end of the text", Lines{"11/28/2012", "<92.56>"}, "11/28/2012", "<92.56>", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sold, wash, next, err := readSaleBlock(tt.lines, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.sold, sold)
			assert.Equal(t, tt.wash, wash)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestReadSaleBlockErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines Lines
		at    int
		kind  ErrorKind
		line  int
	}{
		{"date without gross", Lines{"x", "11/28/2012"}, 1, Truncated, 2},
		{"past the end", Lines{"x"}, 1, Truncated, 1},
		{"invalid wash", Lines{"11/28/2012", "Gross proceeds", "GROSS"}, 0, InvalidAmount, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := readSaleBlock(tt.lines, tt.at)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "want a *ParseError got %v", err)
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}
