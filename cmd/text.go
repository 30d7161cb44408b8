package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type textCmd struct {
	text    bool
	numbers bool
}

func (*textCmd) Name() string     { return "text" }
func (*textCmd) Synopsis() string { return "print the extracted text of a statement" }
func (*textCmd) Usage() string {
	return `eac2txf text [-n] [-text] <input>

  Prints the trimmed lines of the statement text, as seen by the parser.
  With -n, lines are numbered like in the parse error messages.
`
}

func (c *textCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.text, "text", false, "The input is the text output of 'pdftotext -raw', not a PDF.")
	f.BoolVar(&c.numbers, "n", false, "Number the lines.")
}

func (c *textCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected 1 argument <input>, got %d\n\n%s", f.NArg(), c.Usage())
		return subcommands.ExitUsageError
	}

	cfg, log, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}
	defer log.Sync()

	lines, err := readStatement(ctx, f.Arg(0), c.text, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statement %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	for i, line := range lines {
		if c.numbers {
			fmt.Printf("%5d  %s\n", i+1, line)
		} else {
			fmt.Println(line)
		}
	}
	return subcommands.ExitSuccess
}
