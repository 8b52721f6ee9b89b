// internal/seqsplitcli/options.go
package seqsplitcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"annotools/internal/clibase"
	"annotools/internal/cliutil"
)

// Options holds all CLI flags and arguments for seqsplit.
type Options struct {
	clibase.Common

	Parts  int
	Prefix string // output file name prefix; empty means "<id>_part_"
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "partition one FASTA sequence into near-equal pieces",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintf(out, `
Usage:
  %s --parts N [flags] [FILE]

Reads a single FASTA record and writes N near-equal contiguous pieces
to individually named files; each file name and range is reported on
stderr.
`, name)
			fmt.Fprintln(out, "\nSplitting:")
			fmt.Fprintf(out, "  -n, --parts int             Number of pieces [%s]\n", def("parts"))
			fmt.Fprintf(out, "      --prefix string         Output file prefix [<id>_part_]\n")
		})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.IntVar(&opt.Parts, "parts", 2, "number of pieces [2]")
	fs.IntVar(&opt.Parts, "n", 2, "alias of --parts")
	fs.StringVar(&opt.Prefix, "prefix", "", "output file prefix [<id>_part_]")
	clibase.Register(fs, &opt.Common)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	if err := clibase.AfterParse(&opt.Common, posArgs); err != nil {
		return opt, err
	}

	if opt.Parts < 1 {
		return opt, errors.New("--parts must be >= 1")
	}
	if len(opt.Files) > 1 {
		return opt, errors.New("seqsplit takes a single input")
	}
	return opt, nil
}
