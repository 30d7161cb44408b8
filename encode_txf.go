package txf

import (
	"bufio"
	"fmt"
	"io"

	"github.com/etnz/txf/date"
	"github.com/pkg/errors"
)

// this file writes records in the Tax Exchange Format, version 042.
//
// A TXF file is a sequence of records. Each record is a list of fields, one per
// line, made of a one character tag immediately followed by its value, and is
// terminated by a line containing only "^".

const (
	txfVersion = "042"
	// TXF reference number of "Short/Long term gain or loss, covered/non covered" detailed records.
	txfRefNumber = "715"
)

// DefaultAttribution is the program name written in the TXF header.
const DefaultAttribution = "eac2txf"

// RecordWriter is implemented by every output format.
type RecordWriter interface {
	WriteRecord(r TradeRecord) error
	// Close flushes what is left to write. It does not close the underlying writer.
	Close() error
}

// TXFHeader holds the fields of the TXF header record.
type TXFHeader struct {
	Attribution string    // name of the program that generated the file
	Date        date.Date // generation date, today if zero
}

// txfField is one line of a TXF record.
type txfField struct {
	tag   byte
	value string
}

type txfRecord []txfField

func (r txfRecord) add(tag byte, value string) txfRecord { return append(r, txfField{tag, value}) }

func (r txfRecord) writeTo(w io.Writer) error {
	for _, f := range r {
		if _, err := fmt.Fprintf(w, "%c%s\n", f.tag, f.value); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "^\n")
	return err
}

// TXFWriter writes trade records as TXF detailed records.
type TXFWriter struct {
	w *bufio.Writer
}

// NewTXFWriter writes the TXF header to w and returns a writer for the records.
func NewTXFWriter(w io.Writer, h TXFHeader) (*TXFWriter, error) {
	if h.Attribution == "" {
		h.Attribution = DefaultAttribution
	}
	if h.Date.IsZero() {
		h.Date = date.Today()
	}
	t := &TXFWriter{w: bufio.NewWriter(w)}
	header := txfRecord{}.
		add('V', txfVersion).
		add('A', h.Attribution).
		add('D', h.Date.String())
	if err := header.writeTo(t.w); err != nil {
		return nil, errors.Wrap(err, "cannot write TXF header")
	}
	return t, nil
}

// WriteRecord writes r as a detailed record.
func (t *TXFWriter) WriteRecord(r TradeRecord) error {
	rec := txfRecord{}.
		add('T', "D").          // detailed record
		add('N', txfRefNumber). // reference number
		add('C', "1").          // copy number
		add('L', "1").          // line number
		add('P', r.Description()).
		add('D', r.Acquired).
		add('D', r.Sold).
		add('$', string(r.CostBasis)).
		add('$', string(r.Proceeds)).
		add('$', string(r.WashDisallowed))
	if err := rec.writeTo(t.w); err != nil {
		return errors.Wrapf(err, "cannot write TXF record of line %d", r.Line)
	}
	return nil
}

// Close flushes the buffered records.
func (t *TXFWriter) Close() error {
	return errors.Wrap(t.w.Flush(), "cannot flush TXF records")
}
