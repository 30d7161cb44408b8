// Package cmd implements the eac2txf command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/txf"
	"github.com/etnz/txf/config"
	"github.com/etnz/txf/pdftext"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a YAML configuration file")
var verbose = flag.Bool("v", false, "Print debug logs")

// commands is the list of eac2txf subcommands and their group.
var commands = []struct {
	cmd   subcommands.Command
	group string
}{
	{&convertCmd{}, "conversion"},
	{&summaryCmd{}, "conversion"},
	{&textCmd{}, "conversion"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// IsShortcut reports whether args is the "<input> <output-stem>" short form of
// the convert subcommand.
func IsShortcut(args []string) bool {
	if len(args) != 2 {
		return false
	}
	builtins := []string{"help", "flags", "commands"}
	if slices.Contains(builtins, args[0]) {
		return false
	}
	for _, e := range commands {
		if e.cmd.Name() == args[0] {
			return false
		}
	}
	return true
}

// loadConfig loads the configuration file given by the -config flag, the
// environment, and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// newLogger returns a console logger on stderr. Only warnings and errors are
// printed unless verbose is set.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.DisableCaller = true
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// setup loads the configuration and creates the logger, reporting errors on stderr.
func setup() (*config.Config, *zap.Logger, bool) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, nil, false
	}
	return cfg, newLogger(cfg.Verbose), true
}

// readStatement returns the lines of the statement at path. It is read as
// text if isText is set or if it has a .txt extension, and extracted from
// the PDF otherwise.
func readStatement(ctx context.Context, path string, isText bool, cfg *config.Config, log *zap.Logger) (txf.Lines, error) {
	if isText || strings.EqualFold(filepath.Ext(path), ".txt") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return txf.ReadLines(f)
	}
	text, err := pdftext.Extract(ctx, path, pdftext.Options{Binary: cfg.Pdftotext, Logger: log})
	if err != nil {
		return nil, err
	}
	return txf.SplitLines(text), nil
}

// printMarkdown prints md rendered for the terminal, or as is if it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// printErrors prints err on stderr, one line per joined error.
func printErrors(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", e)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
