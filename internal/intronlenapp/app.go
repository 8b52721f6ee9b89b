// internal/intronlenapp/app.go
package intronlenapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"annotools/internal/cmdutil"
	"annotools/internal/gff"
	"annotools/internal/intron"
	"annotools/internal/intronlencli"
	"annotools/internal/ioutilx"
	"annotools/internal/version"
)

// RunContext executes intron-length: parse flags, stream every input
// file through one shared scanner (the files form a single logical
// stream), and print the aggregate line to stdout.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := intronlencli.NewFlagSet("intron-length")
	fs.SetOutput(io.Discard)

	opts, err := intronlencli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return cmdutil.Flush(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "intron-length version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr)
	}

	warn := func(w intron.Warning) {
		rel := "above"
		if w.Below {
			rel = "below"
		}
		cmdutil.Warnf(stderr, opts.Quiet, "intron of %d bp %s threshold %d between:", w.Gap, rel, w.Threshold)
		if !opts.Quiet {
			writeFlank(stderr, w.Flank)
		}
	}

	sc := intron.New(intron.Config{
		FeatureType: opts.FeatureType,
		WarnBelow:   opts.WarnBelow,
		WarnAbove:   opts.WarnAbove,
	}, warn)

	onSkip := func(line string, err error) {
		cmdutil.Warnf(stderr, opts.Quiet, "skipping malformed row (%v): %s", err, line)
	}

	for _, path := range opts.Files {
		rc, err := ioutilx.OpenReader(path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		err = gff.ForEach(ctx, rc, func(r gff.Record) error { sc.Feed(r); return nil }, onSkip)
		_ = rc.Close()
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
	}

	st := sc.Stats()
	if opts.TwoColumn {
		_, _ = fmt.Fprintf(outw, "%d\t%d\n", st.Min, st.Max)
	} else {
		_, _ = fmt.Fprintf(outw, "%d\t%d\t%d\n", st.Min, st.Max, st.MaxCumulative)
	}

	if !st.FoundIntron() {
		cmdutil.Warnf(stderr, opts.Quiet, "no introns found")
	}
	if opts.ShowFlanking && st.FoundIntron() {
		_, _ = fmt.Fprintf(stderr, "min intron: %d\n", st.Min)
		writeFlank(stderr, st.MinFlank)
		_, _ = fmt.Fprintf(stderr, "max intron: %d\n", st.Max)
		writeFlank(stderr, st.MaxFlank)
	}

	return cmdutil.Flush(outw, stderr)
}

// Run is the context-free entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// writeFlank prints the raw rows bracketing a gap.
func writeFlank(w io.Writer, fp intron.FlankPair) {
	if fp.PrevSet {
		_, _ = fmt.Fprintln(w, fp.Prev.Raw)
	}
	_, _ = fmt.Fprintln(w, fp.Cur.Raw)
}
