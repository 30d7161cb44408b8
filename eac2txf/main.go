// Command eac2txf converts the 1099-B capital gains statement of an equity
// award account into TXF and CSV files.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/txf/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if cmd.IsShortcut(flag.Args()) {
		// "eac2txf <input> <output-stem>" is "eac2txf convert <input> <output-stem>".
		flag.CommandLine.Parse(append([]string{"convert"}, flag.Args()...))
	}
	os.Exit(int(commander.Execute(context.Background())))
}
