package renderer

import (
	"testing"

	"github.com/etnz/txf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummary(t *testing.T) {
	lines := txf.Lines{
		"38259P508",
		"2 SHARES OF GOOG",
		"09/19/2012 1,352.17 1,565.62 X",
		"11/28/2012 GROSS",
		"02079K305",
		"3 SHARES OF GOOGL",
		"01/02/2015 900.00 1000.00 X",
		"02/01/2015",
		"<92.56>",
		"GROSS",
	}
	s := txf.NewSummary()
	_, err := txf.Convert(lines, txf.ConvertOptions{}, s)
	require.NoError(t, err)

	md := RenderSummary(NewSummary("2015.pdf", s))

	assert.Contains(t, md, "# Capital Gains Summary of 2015.pdf")
	assert.Contains(t, md, "2 trade records, sold from 11/28/2012 to 02/01/2015.")
	assert.Contains(t, md, "| Proceeds | $2,252.17 |")
	assert.Contains(t, md, "| Basis | $2,565.62 |")
	assert.Contains(t, md, "| Wash | $92.56 |")
	assert.Contains(t, md, "| GOOG | 1 | 2 | $1,352.17 | $1,565.62 | $0.00 | 0 |")
	assert.Contains(t, md, "| GOOGL | 1 | 3 | $900.00 | $1,000.00 | $92.56 | 1 |")
	assert.NotContains(t, md, "error")
}

func TestRenderEmptySummary(t *testing.T) {
	md := RenderSummary(NewSummary("", txf.NewSummary()))

	assert.Contains(t, md, "0 trade records.")
	assert.Contains(t, md, "| Proceeds | $0.00 |")
	assert.NotContains(t, md, "Per Symbol")
}
