// Package pdftext extracts the raw text of a statement PDF.
//
// It runs the pdftotext tool (from poppler-utils or xpdf) in raw mode, which
// keeps the text in content stream order: that is the layout the statement
// parser expects. When pdftotext cannot be found, it falls back to a pure Go
// extraction whose line breaks may differ.
package pdftext

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/dslipak/pdf"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultBinary is the name of the extraction tool.
const DefaultBinary = "pdftotext"

// ErrNoText is returned when the document contains no text at all, like scanned documents.
var ErrNoText = errors.New("no text found in document")

// Options configures Extract.
type Options struct {
	// Binary is the path of the pdftotext executable. It is searched for if empty.
	Binary string
	// NoFallback disables the pure Go extraction.
	NoFallback bool
	Logger     *zap.Logger
}

// Extract returns the raw text of the PDF file at path.
func Extract(ctx context.Context, path string, opts Options) (string, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	bin := opts.Binary
	if bin == "" {
		var found bool
		bin, found = findBinary(DefaultBinary)
		if !found {
			if opts.NoFallback {
				return "", errors.Errorf("%s not found in PATH", DefaultBinary)
			}
			log.Warn("pdftotext not found, using the builtin extractor: line layout may differ", zap.String("file", path))
			return extractBuiltin(path)
		}
	}

	log.Debug("running pdftotext", zap.String("binary", bin), zap.String("file", path))
	return runPdftotext(ctx, bin, path)
}

// runPdftotext runs bin in raw mode on path and returns its standard output.
func runPdftotext(ctx context.Context, bin, path string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, "-raw", path, "-")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "%s failed on %q (%s)", bin, path, bytes.TrimSpace(stderr.Bytes()))
	}
	if len(bytes.TrimSpace(stdout.Bytes())) == 0 {
		return "", errors.Wrapf(ErrNoText, "%s on %q", bin, path)
	}
	return stdout.String(), nil
}

// extractBuiltin extracts the text of path without external tools.
func extractBuiltin(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "cannot open PDF %q", path)
	}
	text, err := r.GetPlainText()
	if err != nil {
		return "", errors.Wrapf(err, "cannot extract text from %q", path)
	}
	var b bytes.Buffer
	if _, err := io.Copy(&b, text); err != nil {
		return "", errors.Wrapf(err, "cannot read text of %q", path)
	}
	if len(bytes.TrimSpace(b.Bytes())) == 0 {
		return "", errors.Wrapf(ErrNoText, "%q", path)
	}
	return b.String(), nil
}
