package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/txf"
	"github.com/etnz/txf/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	text      bool
	keepGoing bool
	markdown  bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the totals of a statement, per symbol" }
func (*summaryCmd) Usage() string {
	return `eac2txf summary [-text] [-k] [-md] <input>

  Extracts the trade records of the statement <input> without writing any
  file, and displays the number of records, the range of sale dates and the
  proceeds, basis and wash sale totals, overall and per symbol.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.text, "text", false, "The input is the text output of 'pdftotext -raw', not a PDF.")
	f.BoolVar(&c.keepGoing, "k", false, "Skip malformed entries instead of stopping at the first one.")
	f.BoolVar(&c.markdown, "md", false, "Print raw markdown instead of rendering it.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected 1 argument <input>, got %d\n\n%s", f.NArg(), c.Usage())
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)

	cfg, log, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}
	defer log.Sync()

	lines, err := readStatement(ctx, input, c.text, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statement %q: %v\n", input, err)
		return subcommands.ExitFailure
	}

	summary := txf.NewSummary()
	_, convErr := txf.Convert(lines, txf.ConvertOptions{KeepGoing: c.keepGoing, Logger: log}, summary)
	if convErr != nil && !c.keepGoing {
		printErrors(convErr)
		return subcommands.ExitFailure
	}

	md := renderer.RenderSummary(renderer.NewSummary(filepath.Base(input), summary))
	if c.markdown {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}

	if convErr != nil {
		printErrors(convErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
