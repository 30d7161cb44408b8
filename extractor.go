package txf

import (
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// entryMinLines is the minimum number of lines of a trade entry:
// identifier, quantity, acquisition and sale lines.
const entryMinLines = 4

// state of the Extractor.
type state int

const (
	scanning             state = iota // looking for an identifier line
	parseQuantityLine                 // "<number> SHARES OF <symbol>"
	parseAcquisitionLine              // "<date> <proceeds> <basis> X"
	parseSaleBlock                    // sale date, optional wash amount, gross marker
	done                              // terminal
)

func (s state) String() string {
	switch s {
	case scanning:
		return "scanning"
	case parseQuantityLine:
		return "quantity"
	case parseAcquisitionLine:
		return "acquisition"
	case parseSaleBlock:
		return "sale"
	case done:
		return "done"
	}
	return "unknown"
}

// step consumes lines at the cursor and returns the next state.
type step func(e *Extractor) (state, error)

// transitions is the transition table of the Extractor.
var transitions = map[state]step{
	scanning:             (*Extractor).scan,
	parseQuantityLine:    (*Extractor).parseQuantity,
	parseAcquisitionLine: (*Extractor).parseAcquisition,
	parseSaleBlock:       (*Extractor).parseSale,
}

// Extractor reads trade records out of statement lines.
//
// It walks the lines once, top to bottom, with a single cursor. The zero value
// is not usable, use NewExtractor.
type Extractor struct {
	lines  Lines
	cursor int
	state  state
	entry  TradeRecord  // record being built
	ready  *TradeRecord // record completed by the last step
	totals Totals
	log    *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used to trace the extraction.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) { e.log = l }
}

// NewExtractor returns an Extractor positioned on the first line.
func NewExtractor(lines Lines, opts ...Option) *Extractor {
	e := &Extractor{
		lines:  lines,
		state:  scanning,
		totals: NewTotals(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Next returns the next trade record, or io.EOF when the lines are exhausted.
//
// A *ParseError is returned for a malformed entry. The entry is abandoned and
// the Extractor resumes scanning after the offending line, so the caller can
// either stop or keep collecting diagnostics.
func (e *Extractor) Next() (TradeRecord, error) {
	for e.state != done {
		next, err := transitions[e.state](e)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				e.cursor = perr.Line // the line after the offending one
			}
			e.state = scanning
			return TradeRecord{}, err
		}
		e.state = next
		if e.ready != nil {
			r := *e.ready
			e.ready = nil
			return r, nil
		}
	}
	return TradeRecord{}, io.EOF
}

// Records returns the sequence of remaining records. Parse errors are yielded
// with a zero record; iteration goes on if the consumer keeps asking.
func (e *Extractor) Records() iter.Seq2[TradeRecord, error] {
	return func(yield func(TradeRecord, error) bool) {
		for {
			r, err := e.Next()
			if err == io.EOF {
				return
			}
			if !yield(r, err) {
				return
			}
		}
	}
}

// Totals returns the totals of the records extracted so far.
func (e *Extractor) Totals() Totals { return e.totals }

// Extract returns all the records of lines and their totals.
//
// It stops at the first parse error, returning the records extracted up to it.
func Extract(lines Lines, opts ...Option) ([]TradeRecord, Totals, error) {
	e := NewExtractor(lines, opts...)
	var records []TradeRecord
	for r, err := range e.Records() {
		if err != nil {
			return records, e.Totals(), err
		}
		records = append(records, r)
	}
	return records, e.Totals(), nil
}

func (e *Extractor) scan() (state, error) {
	for {
		if e.cursor >= len(e.lines) {
			return done, nil
		}
		if len(e.lines)-e.cursor < entryMinLines {
			e.log.Debug("ignoring trailing content", zap.Int("line", e.cursor+1), zap.Strings("content", e.lines[e.cursor:]))
			return done, nil
		}
		line := e.lines[e.cursor]
		if isIdentifier(line) {
			e.entry = TradeRecord{CUSIP: line, Line: e.cursor + 1}
			e.cursor++
			return parseQuantityLine, nil
		}
		e.cursor++
	}
}

func (e *Extractor) parseQuantity() (state, error) {
	parts := strings.Fields(e.lines[e.cursor])
	if len(parts) != 4 || parts[1] != "SHARES" || parts[2] != "OF" {
		return done, newParseError(MalformedQuantity, e.lines, e.cursor)
	}
	quantity, err := ParseQuantity(parts[0])
	if err != nil {
		return done, newParseError(MalformedQuantity, e.lines, e.cursor)
	}
	if !quantity.IsPositive() {
		return done, newParseError(InvalidQuantity, e.lines, e.cursor)
	}
	if !IsSymbol(parts[3]) {
		return done, newParseError(UnknownSymbol, e.lines, e.cursor)
	}
	e.entry.Quantity = quantity
	e.entry.Symbol = parts[3]
	e.cursor++
	return parseAcquisitionLine, nil
}

func (e *Extractor) parseAcquisition() (state, error) {
	parts := strings.Fields(e.lines[e.cursor])
	if len(parts) != 4 {
		return done, newParseError(MalformedAcquisition, e.lines, e.cursor)
	}
	acquired, proceeds, basis, marker := parts[0], NormalizeAmount(parts[1]), NormalizeAmount(parts[2]), parts[3]
	if marker != nonCoveredMarker {
		return done, newParseError(UnexpectedMarker, e.lines, e.cursor)
	}
	if proceeds.validateStrict() != nil || basis.validateStrict() != nil {
		return done, newParseError(InvalidAmount, e.lines, e.cursor)
	}
	e.entry.Acquired = acquired
	e.entry.Proceeds = proceeds
	e.entry.CostBasis = basis
	e.cursor++
	return parseSaleBlock, nil
}

func (e *Extractor) parseSale() (state, error) {
	sold, wash, next, err := readSaleBlock(e.lines, e.cursor)
	if err != nil {
		return done, err
	}
	r := e.entry
	r.Sold = sold
	r.WashDisallowed = wash
	if err := e.totals.Add(r); err != nil {
		// amounts have been validated by the previous states.
		return done, errors.Wrapf(err, "entry at line %d", r.Line)
	}
	e.cursor = next
	e.entry = TradeRecord{}
	e.ready = &r
	e.log.Debug("trade record",
		zap.Int("line", r.Line),
		zap.String("description", r.Description()),
		zap.String("sold", r.Sold),
		zap.String("wash", string(r.WashDisallowed)),
	)
	return scanning, nil
}
