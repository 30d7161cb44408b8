package txf

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// tableHeader is the header row of the tabular formats.
var tableHeader = []string{"Symbol", "Quantity", "Date Acquired", "Date Sold", "Cost Basis", "Sales Proceeds", "Wash", "Adjustment"}

// tableRow returns r as a row of the tabular formats.
func tableRow(r TradeRecord) []string {
	wash := ""
	if r.HasWash() {
		wash = washMarker
	}
	return []string{
		r.Symbol,
		r.Quantity.String(),
		r.Acquired,
		r.Sold,
		string(r.CostBasis),
		string(r.Proceeds),
		wash,
		string(r.WashDisallowed),
	}
}

// CSVWriter writes trade records as CSV rows.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter writes the header row to w and returns a writer for the records.
// Rows end with "\n", like the TXF output.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	c := &CSVWriter{w: csv.NewWriter(w)}
	if err := c.w.Write(tableHeader); err != nil {
		return nil, errors.Wrap(err, "cannot write CSV header")
	}
	return c, nil
}

// WriteRecord writes r as a row.
func (c *CSVWriter) WriteRecord(r TradeRecord) error {
	return errors.Wrapf(c.w.Write(tableRow(r)), "cannot write CSV row of line %d", r.Line)
}

// Close flushes the buffered rows.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	return errors.Wrap(c.w.Error(), "cannot flush CSV rows")
}
