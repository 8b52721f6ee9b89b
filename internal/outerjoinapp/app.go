// internal/outerjoinapp/app.go
package outerjoinapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"annotools/internal/cmdutil"
	"annotools/internal/outerjoincli"
	"annotools/internal/tabular"
	"annotools/internal/version"
)

// RunContext executes outerjoin: load every table, take the union of
// keys, and emit one padded row per key sorted lexicographically.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := outerjoincli.NewFlagSet("outerjoin")
	fs.SetOutput(io.Discard)

	opts, err := outerjoincli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "outerjoin version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr)
	}

	tables := make([]*tabular.Table, 0, len(opts.Files))
	for _, path := range opts.Files {
		select {
		case <-ctx.Done():
			return 130
		default:
		}
		t, err := tabular.ReadTable(path, opts.Sep)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		tables = append(tables, t)
	}

	// Union of keys across all tables, sorted for deterministic output.
	seen := map[string]bool{}
	var keys []string
	for _, t := range tables {
		for _, k := range t.Keys {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	header := []string{tables[0].Header[0]}
	for _, t := range tables {
		header = append(header, t.Header[1:]...)
	}
	_, _ = fmt.Fprintln(outw, strings.Join(header, opts.Sep))

	for _, k := range keys {
		cells := []string{k}
		for _, t := range tables {
			if row, ok := t.Rows[k]; ok {
				cells = append(cells, row...)
			} else {
				for i := 0; i < t.Width(); i++ {
					cells = append(cells, opts.NA)
				}
			}
		}
		_, _ = fmt.Fprintln(outw, strings.Join(cells, opts.Sep))
	}

	return cmdutil.Flush(outw, stderr)
}

// Run is the context-free entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
