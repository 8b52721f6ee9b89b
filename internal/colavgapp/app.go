// internal/colavgapp/app.go
package colavgapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"annotools/internal/colavgcli"
	"annotools/internal/cmdutil"
	"annotools/internal/tabular"
	"annotools/internal/version"
)

// RunContext executes colavg: load N identically shaped tables and
// emit the arithmetic mean of every numeric column, row by row.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := colavgcli.NewFlagSet("colavg")
	fs.SetOutput(io.Discard)

	opts, err := colavgcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "colavg version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr)
	}

	matrices := make([][][]string, 0, len(opts.Files))
	for _, path := range opts.Files {
		select {
		case <-ctx.Done():
			return 130
		default:
		}
		m, err := tabular.ReadMatrix(path, opts.Sep)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		matrices = append(matrices, m)
	}

	first := matrices[0]
	for i, m := range matrices[1:] {
		if err := sameShape(first, m, opts.Files[0], opts.Files[i+1]); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
	}

	_, _ = fmt.Fprintln(outw, strings.Join(first[0], opts.Sep))
	n := float64(len(matrices))
	for r := 1; r < len(first); r++ {
		cells := []string{first[r][0]}
		for c := 1; c < len(first[r]); c++ {
			sum := 0.0
			for _, m := range matrices {
				v, err := strconv.ParseFloat(m[r][c], 64)
				if err != nil {
					_, _ = fmt.Fprintf(stderr, "non-numeric cell %q at row %d col %d\n", m[r][c], r+1, c+1)
					return 1
				}
				sum += v
			}
			cells = append(cells, strconv.FormatFloat(sum/n, 'g', -1, 64))
		}
		_, _ = fmt.Fprintln(outw, strings.Join(cells, opts.Sep))
	}

	return cmdutil.Flush(outw, stderr)
}

// Run is the context-free entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// sameShape checks that two matrices agree on header, row count, and
// the label column.
func sameShape(a, b [][]string, apath, bpath string) error {
	if len(a) != len(b) {
		return fmt.Errorf("%s has %d row(s), %s has %d", apath, len(a), bpath, len(b))
	}
	if strings.Join(a[0], "\x00") != strings.Join(b[0], "\x00") {
		return fmt.Errorf("%s and %s have different headers", apath, bpath)
	}
	for r := 1; r < len(a); r++ {
		if len(a[r]) != len(b[r]) {
			return fmt.Errorf("row %d: %s has %d field(s), %s has %d", r+1, apath, len(a[r]), bpath, len(b[r]))
		}
		if a[r][0] != b[r][0] {
			return fmt.Errorf("row %d: label %q in %s vs %q in %s", r+1, a[r][0], apath, b[r][0], bpath)
		}
	}
	return nil
}
