// internal/seqlencli/options.go
package seqlencli

import (
	"flag"
	"fmt"
	"io"

	"annotools/internal/clibase"
	"annotools/internal/cliutil"
)

// Options holds all CLI flags and arguments for seqlen.
type Options struct {
	clibase.Common
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "sequence lengths from FASTA",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintf(out, `
Usage:
  %s [FILE...]

Streams FASTA records and prints "id<TAB>length" per record.
`, name)
		})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
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
	return opt, nil
}
