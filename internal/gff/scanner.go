// internal/gff/scanner.go
package gff

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// ForEach streams GFF3 records from r in file order. Comment and blank
// lines are skipped silently; malformed rows are reported through
// onSkip (may be nil) and do not stop the scan. It is cancelable,
// returning promptly when ctx is Done.
func ForEach(ctx context.Context, r io.Reader, emit func(Record) error, onSkip func(line string, err error)) error {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // attribute columns can get very long
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, ok, err := ParseLine(sc.Text())
		if err != nil {
			if onSkip != nil {
				onSkip(sc.Text(), err)
			}
			continue
		}
		if !ok {
			continue
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("gff scan: %w", err)
	}
	return nil
}
