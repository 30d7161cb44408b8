package txf

import (
	"errors"

	"go.uber.org/zap"
)

// ConvertOptions configures Convert.
type ConvertOptions struct {
	// KeepGoing reports every malformed entry instead of stopping at the first one.
	KeepGoing bool
	Logger    *zap.Logger
}

// Convert extracts the trade records of lines and writes each of them to all
// writers, in input order.
//
// By default it stops at the first parse error. What has already been written is
// left as is: the writers are neither rolled back nor closed, this is the caller's
// job. With KeepGoing, parse errors are collected and returned together once
// the lines are exhausted; write errors always stop the conversion.
//
// It returns the totals of the records that were extracted.
func Convert(lines Lines, opts ConvertOptions, writers ...RecordWriter) (Totals, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	e := NewExtractor(lines, WithLogger(log))
	var parseErrs []error
	for r, err := range e.Records() {
		if err != nil {
			if !opts.KeepGoing {
				return e.Totals(), err
			}
			log.Warn("skipping malformed entry", zap.Error(err))
			parseErrs = append(parseErrs, err)
			continue
		}
		for _, w := range writers {
			if err := w.WriteRecord(r); err != nil {
				return e.Totals(), err
			}
		}
	}
	return e.Totals(), errors.Join(parseErrs...)
}
