// internal/qualtrimapp/app.go
package qualtrimapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"

	"annotools/internal/qualtrim"
	"annotools/internal/qualtrimcli"
	"annotools/internal/version"
)

// RunContext executes qualtrim: strip the trailing run of the sentinel
// quality character from every read, optionally drop short reads, and
// stream the survivors to the output.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := qualtrimcli.NewFlagSet("qualtrim")
	fs.SetOutput(io.Discard)

	opts, err := qualtrimcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "qualtrim version %s\n", version.Version)
		return 0
	}

	outfh, err := xopen.Wopen(opts.Out)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = outfh.Close() }()

	sentinel := opts.QualChar[0]
	var counts qualtrim.Counts

	for _, path := range opts.Files {
		reader, err := fastx.NewReader(seq.DNAredundant, path, fastx.DefaultIDRegexp)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, fmt.Errorf("open %s: %w", path, err))
			return 1
		}
		for {
			select {
			case <-ctx.Done():
				reader.Close()
				return 130
			default:
			}
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				reader.Close()
				_, _ = fmt.Fprintln(stderr, fmt.Errorf("read %s: %w", path, err))
				return 1
			}

			in := len(record.Seq.Seq)
			n := in - qualtrim.TrailingRun(record.Seq.Qual, sentinel)
			kept := opts.MinLen == 0 || n >= opts.MinLen
			counts.Add(in, n, kept)
			if !kept {
				continue
			}
			record.Seq.Seq = record.Seq.Seq[:n]
			record.Seq.Qual = record.Seq.Qual[:n]
			record.FormatToWriter(outfh, 0)
		}
		reader.Close()
	}

	if err := outfh.Flush(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if opts.Stats {
		_, _ = fmt.Fprintf(stderr, "reads\t%d\t%d\nbases\t%d\t%d\n",
			counts.ReadsIn, counts.ReadsOut, counts.BasesIn, counts.BasesOut)
	}
	return 0
}

// Run is the context-free entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
