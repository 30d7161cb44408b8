package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/txf"
	"github.com/google/subcommands"
)

type convertCmd struct {
	text        bool
	xlsx        bool
	keepGoing   bool
	attribution string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a 1099-B statement into TXF and CSV files" }
func (*convertCmd) Usage() string {
	return `eac2txf convert [-text] [-xlsx] [-k] <input> <output-stem>
eac2txf <input> <output-stem>

  Extracts the trade records of the statement <input> and writes them to
  <output-stem>.txf and <output-stem>.csv (and <output-stem>.xlsx with -xlsx).
  Prints the total proceeds, basis and wash sale disallowed amounts to be
  checked against the statement summary.

Usage Examples:
$ eac2txf convert 1099-2016.pdf gains-2016

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.text, "text", false, "The input is the text output of 'pdftotext -raw', not a PDF.")
	f.BoolVar(&c.xlsx, "xlsx", false, "Also write an Excel workbook.")
	f.BoolVar(&c.keepGoing, "k", false, "Keep going after a malformed entry and report all of them.")
	f.StringVar(&c.attribution, "attribution", "", "Program name written in the TXF header. Overrides the configuration.")
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: expected 2 arguments <input> <output-stem>, got %d\n\n%s", f.NArg(), c.Usage())
		return subcommands.ExitUsageError
	}
	input, stem := f.Arg(0), f.Arg(1)

	cfg, log, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}
	defer log.Sync()
	if c.attribution != "" {
		cfg.Attribution = c.attribution
	}

	lines, err := readStatement(ctx, input, c.text, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statement %q: %v\n", input, err)
		return subcommands.ExitFailure
	}

	var files []*os.File
	defer func() {
		for _, file := range files {
			file.Close()
		}
	}()
	create := func(name string) (*os.File, error) {
		file, err := os.Create(name)
		if err == nil {
			files = append(files, file)
		}
		return file, err
	}

	txfFile, err := create(stem + ".txf")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	txfWriter, err := txf.NewTXFWriter(txfFile, txf.TXFHeader{Attribution: cfg.Attribution})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	csvFile, err := create(stem + ".csv")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	csvWriter, err := txf.NewCSVWriter(csvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := txf.NewSummary()
	writers := []txf.RecordWriter{txfWriter, csvWriter, summary}
	outputs := []string{txfFile.Name(), csvFile.Name()}
	if c.xlsx || cfg.XLSX {
		xlsxWriter, err := txf.NewXLSXWriter(stem + ".xlsx")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		writers = append(writers, xlsxWriter)
		outputs = append(outputs, stem+".xlsx")
	}

	totals, convErr := txf.Convert(lines, txf.ConvertOptions{KeepGoing: c.keepGoing, Logger: log}, writers...)

	// what has been written is kept, even on error.
	for _, w := range writers {
		if err := w.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if convErr != nil && !c.keepGoing {
		printErrors(convErr)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %d records to %s\n", summary.Records, joinNames(outputs))
	fmt.Println("Verify these totals with the summary on the last page of the statement")
	fmt.Printf("Total Proceeds: $%s\n", totals.Proceeds.Fixed())
	fmt.Printf("Total Basis: $%s\n", totals.Basis.Fixed())
	fmt.Printf("Total Wash: $%s\n", totals.Wash.Fixed())

	if convErr != nil {
		printErrors(convErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// joinNames returns "a, b and c".
func joinNames(names []string) string {
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
