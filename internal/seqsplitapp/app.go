// internal/seqsplitapp/app.go
package seqsplitapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/biogo/seq/sequtils"

	"annotools/internal/cmdutil"
	"annotools/internal/ioutilx"
	"annotools/internal/seqsplitcli"
	"annotools/internal/version"
)

// segment is the feat.Feature window handed to sequtils.Stitch.
type segment struct {
	s, e int
	feat.Feature
}

func (f segment) Start() int                    { return f.s }
func (f segment) End() int                      { return f.e }
func (f segment) Len() int                      { return f.e - f.s }
func (f segment) Orientation() feat.Orientation { return feat.Forward }

type segments []feat.Feature

func (f segments) Features() []feat.Feature { return []feat.Feature(f) }

// RunContext executes seqsplit: read one FASTA record and write it out
// as N near-equal contiguous pieces, one file per piece.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := seqsplitcli.NewFlagSet("seqsplit")
	fs.SetOutput(io.Discard)

	opts, err := seqsplitcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(stdout, "seqsplit version %s\n", version.Version)
		return 0
	}

	rc, err := ioutilx.OpenReader(opts.Files[0])
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = rc.Close() }()

	t := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(rc, t))
	if !sc.Next() {
		if err := sc.Error(); err != nil {
			_, _ = fmt.Fprintln(stderr, fmt.Errorf("fasta read: %w", err))
		} else {
			_, _ = fmt.Fprintln(stderr, "no FASTA record in input")
		}
		return 1
	}
	src := sc.Seq().(*linear.Seq)
	if sc.Next() {
		cmdutil.Warnf(stderr, opts.Quiet, "input has more than one record; splitting %q only", src.ID)
	}

	length := src.Len()
	if opts.Parts > length {
		_, _ = fmt.Fprintf(stderr, "cannot split %d bp into %d parts\n", length, opts.Parts)
		return 1
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = src.ID + "_part_"
	}

	// First length%N pieces get one extra base.
	base := length / opts.Parts
	extra := length % opts.Parts
	start := 0
	for i := 0; i < opts.Parts; i++ {
		select {
		case <-ctx.Done():
			return 130
		default:
		}
		end := start + base
		if i < extra {
			end++
		}
		piece := linear.NewSeq("", nil, alphabet.DNA)
		if err := sequtils.Stitch(piece, src, segments{segment{s: start, e: end}}); err != nil {
			_, _ = fmt.Fprintln(stderr, fmt.Errorf("stitch %d-%d: %w", start, end, err))
			return 1
		}
		piece.ID = fmt.Sprintf("%s_part_%d", src.ID, i+1)
		piece.Desc = fmt.Sprintf("%s:%d-%d", src.ID, start+1, end)

		name := fmt.Sprintf("%s%d.fa", prefix, i+1)
		if err := writePiece(name, piece); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		if !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, "%s\t%s:%d-%d\n", name, src.ID, start+1, end)
		}
		start = end
	}

	return 0
}

func writePiece(name string, piece *linear.Seq) error {
	fh, err := os.Create(name)
	if err != nil {
		return err
	}
	w := fasta.NewWriter(fh, 60)
	if _, err := w.Write(piece); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return fh.Close()
}

// Run is the context-free entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
