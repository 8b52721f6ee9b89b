// internal/intronlencli/options.go
package intronlencli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"annotools/internal/clibase"
	"annotools/internal/cliutil"
)

// Options holds all CLI flags and arguments for intron-length.
type Options struct {
	clibase.Common

	FeatureType  string
	ShowFlanking bool
	WarnBelow    int // <= 0 disables
	WarnAbove    int // < 0 disables
	TwoColumn    bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "intron length statistics from GFF3 annotation",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintf(out, `
Usage:
  %s [--type CDS|exon] [flags] [FILE...]

Reads GFF3 from FILEs in order (or stdin when none given / '-' given)
and prints "MIN<TAB>MAX<TAB>MAX_CUMULATIVE" on stdout. Legacy KEY=VALUE
arguments (TYPE=,SHOW_FLANKING=,WARN_INTRON_LESS_THAN=,
WARN_INTRON_GREATER_THAN=) are accepted alongside flags.
`, name)
			fmt.Fprintln(out, "\nScanning:")
			fmt.Fprintf(out, "  -t, --type string           Feature type defining exon boundaries [%s]\n", def("type"))
			fmt.Fprintf(out, "      --show-flanking         Report flanking features of min/max introns on stderr [%s]\n", def("show-flanking"))
			fmt.Fprintf(out, "      --warn-lt int           Warn for introns shorter than this (-1=off) [%s]\n", def("warn-lt"))
			fmt.Fprintf(out, "      --warn-gt int           Warn for introns longer than this (-1=off) [%s]\n", def("warn-gt"))
			fmt.Fprintf(out, "      --two-column            Omit the max-cumulative column [%s]\n", def("two-column"))
		})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.FeatureType, "type", "exon", "feature type defining exon boundaries [exon]")
	fs.StringVar(&opt.FeatureType, "t", "exon", "alias of --type")
	fs.BoolVar(&opt.ShowFlanking, "show-flanking", false, "report flanking features of min/max introns [false]")
	fs.IntVar(&opt.WarnBelow, "warn-lt", -1, "warn for introns shorter than this (-1=off) [-1]")
	fs.IntVar(&opt.WarnAbove, "warn-gt", -1, "warn for introns longer than this (-1=off) [-1]")
	fs.BoolVar(&opt.TwoColumn, "two-column", false, "omit the max-cumulative column [false]")
	clibase.Register(fs, &opt.Common)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	files, err := applyAssignments(&opt, posArgs)
	if err != nil {
		return opt, err
	}
	if err := clibase.AfterParse(&opt.Common, files); err != nil {
		return opt, err
	}
	if opt.FeatureType == "" {
		return opt, fmt.Errorf("--type must not be empty")
	}
	return opt, nil
}

// legacy KEY=VALUE argument names from the script family this tool replaces
var assignmentKeys = map[string]bool{
	"TYPE":                     true,
	"SHOW_FLANKING":            true,
	"WARN_INTRON_LESS_THAN":    true,
	"WARN_INTRON_GREATER_THAN": true,
}

// applyAssignments maps legacy KEY=VALUE positionals onto opt and
// returns the remaining positionals (input paths).
func applyAssignments(opt *Options, posArgs []string) ([]string, error) {
	var files []string
	for _, a := range posArgs {
		k, v, found := strings.Cut(a, "=")
		if !found || !assignmentKeys[k] {
			files = append(files, a)
			continue
		}
		switch k {
		case "TYPE":
			opt.FeatureType = v
		case "SHOW_FLANKING":
			opt.ShowFlanking = v == "1"
		case "WARN_INTRON_LESS_THAN":
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("bad %s=%q: %v", k, v, err)
			}
			opt.WarnBelow = n
		case "WARN_INTRON_GREATER_THAN":
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("bad %s=%q: %v", k, v, err)
			}
			opt.WarnAbove = n
		}
	}
	return files, nil
}
