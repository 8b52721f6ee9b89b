// internal/qualtrimcli/options.go
package qualtrimcli

import (
	"flag"
	"fmt"
	"io"

	"annotools/internal/clibase"
	"annotools/internal/cliutil"
)

// Options holds all CLI flags and arguments for qualtrim.
type Options struct {
	clibase.Common

	QualChar string // single quality character marking the trailing run
	MinLen   int    // drop reads shorter than this after trimming; 0 keeps all
	Stats    bool
	Out      string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "trim trailing low-quality bases from FASTQ reads",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintf(out, `
Usage:
  %s [flags] [FILE...]

Reads 4-line FASTQ from FILEs (or stdin) and strips the trailing run of
the sentinel quality character from each read.
`, name)
			fmt.Fprintln(out, "\nTrimming:")
			fmt.Fprintf(out, "  -b, --qual-char string      Sentinel quality character to strip [%s]\n", def("qual-char"))
			fmt.Fprintf(out, "  -l, --min-length int        Drop reads shorter than this after trimming (0=keep all) [%s]\n", def("min-length"))
			fmt.Fprintf(out, "      --stats                 Print read/base counts to stderr [%s]\n", def("stats"))
			fmt.Fprintf(out, "  -o, --out string            Output FASTQ ('-' = stdout, .gz compresses) [%s]\n", def("out"))
		})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.QualChar, "qual-char", "B", "sentinel quality character to strip [B]")
	fs.StringVar(&opt.QualChar, "b", "B", "alias of --qual-char")
	fs.IntVar(&opt.MinLen, "min-length", 0, "drop reads shorter than this after trimming (0=keep all) [0]")
	fs.IntVar(&opt.MinLen, "l", 0, "alias of --min-length")
	fs.BoolVar(&opt.Stats, "stats", false, "print read/base counts to stderr [false]")
	fs.StringVar(&opt.Out, "out", "-", "output FASTQ ('-' = stdout) [-]")
	fs.StringVar(&opt.Out, "o", "-", "alias of --out")
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

	if len(opt.QualChar) != 1 {
		return opt, fmt.Errorf("--qual-char must be a single character, got %q", opt.QualChar)
	}
	if opt.MinLen < 0 {
		return opt, fmt.Errorf("--min-length must be >= 0")
	}
	return opt, nil
}
