package txf

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// XLSXSheet is the name of the worksheet holding the trade records.
const XLSXSheet = "Trades"

// XLSXWriter writes trade records in an Excel workbook, one row per record,
// with the same columns as the CSV format.
//
// The workbook is kept in memory and saved on Close.
type XLSXWriter struct {
	path string
	f    *excelize.File
	row  int
}

// NewXLSXWriter returns a writer of a new workbook saved at path.
func NewXLSXWriter(path string) (*XLSXWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", XLSXSheet); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "cannot create XLSX sheet")
	}
	x := &XLSXWriter{path: path, f: f}
	header := make([]any, len(tableHeader))
	for i, h := range tableHeader {
		header[i] = h
	}
	if err := x.writeRow(header); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "cannot write XLSX header")
	}
	return x, nil
}

func (x *XLSXWriter) writeRow(values []any) error {
	x.row++
	cell, err := excelize.CoordinatesToCellName(1, x.row)
	if err != nil {
		return err
	}
	return x.f.SetSheetRow(XLSXSheet, cell, &values)
}

// WriteRecord writes r as a row. Quantity and amounts are written as numbers,
// except the wash amount which is kept as printed.
func (x *XLSXWriter) WriteRecord(r TradeRecord) error {
	basis, err := r.CostBasis.Decimal()
	if err != nil {
		return errors.Wrapf(err, "cannot write XLSX row of line %d", r.Line)
	}
	proceeds, err := r.Proceeds.Decimal()
	if err != nil {
		return errors.Wrapf(err, "cannot write XLSX row of line %d", r.Line)
	}
	row := tableRow(r)
	values := []any{
		row[0],
		r.Quantity.InexactFloat64(),
		row[2],
		row[3],
		basis.InexactFloat64(),
		proceeds.InexactFloat64(),
		row[6],
		row[7],
	}
	return errors.Wrapf(x.writeRow(values), "cannot write XLSX row of line %d", r.Line)
}

// Close saves the workbook.
func (x *XLSXWriter) Close() error {
	err := x.f.SaveAs(x.path)
	if cerr := x.f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "cannot save workbook %q", x.path)
}
