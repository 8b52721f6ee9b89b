// internal/colavgcli/options.go
package colavgcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"annotools/internal/clibase"
	"annotools/internal/cliutil"
)

// Options holds all CLI flags and arguments for colavg.
type Options struct {
	clibase.Common

	Sep string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "average numeric columns across identically shaped tables",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintf(out, `
Usage:
  %s [flags] FILE FILE [FILE...]

All inputs must share the same header and row structure; the first
column is emitted verbatim and every other column is averaged.
`, name)
			fmt.Fprintln(out, "\nAveraging:")
			fmt.Fprintln(out, "      --sep string            Field separator [TAB]")
		})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Sep, "sep", "\t", "field separator [TAB]")
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
	if len(opt.Files) < 2 {
		return opt, errors.New("colavg needs at least two input files")
	}
	return opt, nil
}
