// internal/outerjoincli/options.go
package outerjoincli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"annotools/internal/clibase"
	"annotools/internal/cliutil"
)

// Options holds all CLI flags and arguments for outerjoin.
type Options struct {
	clibase.Common

	Sep string
	NA  string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "outer join of keyed delimited tables",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintf(out, `
Usage:
  %s [flags] FILE FILE [FILE...]

Joins two or more header-bearing tables on their first column and
prints the union of rows sorted by key, padding missing cells.
`, name)
			fmt.Fprintln(out, "\nJoining:")
			fmt.Fprintf(out, "      --sep string            Field separator [TAB]\n")
			fmt.Fprintf(out, "      --na string             Placeholder for missing cells [%s]\n", def("na"))
		})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Sep, "sep", "\t", "field separator [TAB]")
	fs.StringVar(&opt.NA, "na", "NA", "placeholder for missing cells [NA]")
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

	if opt.Sep == "" {
		return opt, errors.New("--sep must not be empty")
	}
	// A join of one table is a likely pipeline bug, fail fast.
	if len(opt.Files) < 2 {
		return opt, errors.New("outerjoin needs at least two input files")
	}
	return opt, nil
}
