// internal/seqlenapp/app.go
package seqlenapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"annotools/internal/cmdutil"
	"annotools/internal/ioutilx"
	"annotools/internal/seqlencli"
	"annotools/internal/version"
)

// RunContext executes seqlen: stream FASTA records from every input
// and print one "id<TAB>length" line per record.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := seqlencli.NewFlagSet("seqlen")
	fs.SetOutput(io.Discard)

	opts, err := seqlencli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "seqlen version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr)
	}

	for _, path := range opts.Files {
		rc, err := ioutilx.OpenReader(path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		code := scanFile(ctx, rc, outw, stderr)
		_ = rc.Close()
		if code != 0 {
			return code
		}
	}

	return cmdutil.Flush(outw, stderr)
}

func scanFile(ctx context.Context, rc io.Reader, outw *bufio.Writer, stderr io.Writer) int {
	t := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(rc, t))
	for sc.Next() {
		select {
		case <-ctx.Done():
			return 130
		default:
		}
		s := sc.Seq()
		_, _ = fmt.Fprintf(outw, "%s\t%d\n", s.Name(), s.Len())
	}
	if err := sc.Error(); err != nil {
		_, _ = fmt.Fprintln(stderr, fmt.Errorf("fasta read: %w", err))
		return 1
	}
	return 0
}

// Run is the context-free entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
