// internal/tabular/table.go
package tabular

import (
	"bufio"
	"fmt"
	"strings"

	"annotools/internal/ioutilx"
)

// Table is a header-bearing delimited file keyed by its first column.
type Table struct {
	Path   string
	Header []string
	Keys   []string            // first-column values in file order
	Rows   map[string][]string // key -> remaining fields
}

// Width is the number of non-key columns.
func (t *Table) Width() int { return len(t.Header) - 1 }

// ReadTable loads a keyed table. It fails on an empty file, a duplicate
// key, or a row whose field count differs from the header's.
func ReadTable(path, sep string) (*Table, error) {
	rc, err := ioutilx.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	t := &Table{Path: path, Rows: map[string][]string{}}
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if line == "" {
			continue
		}
		f := strings.Split(line, sep)
		if t.Header == nil {
			t.Header = f
			continue
		}
		if len(f) != len(t.Header) {
			return nil, fmt.Errorf("%s:%d has %d field(s), header has %d", path, ln, len(f), len(t.Header))
		}
		key := f[0]
		if _, dup := t.Rows[key]; dup {
			return nil, fmt.Errorf("%s:%d duplicate key %q", path, ln, key)
		}
		t.Keys = append(t.Keys, key)
		t.Rows[key] = f[1:]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if t.Header == nil {
		return nil, fmt.Errorf("%s: empty table", path)
	}
	return t, nil
}

// ReadMatrix loads a delimited file verbatim as header plus rows,
// enforcing a uniform field count.
func ReadMatrix(path, sep string) ([][]string, error) {
	rc, err := ioutilx.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var rows [][]string
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if line == "" {
			continue
		}
		f := strings.Split(line, sep)
		if len(rows) > 0 && len(f) != len(rows[0]) {
			return nil, fmt.Errorf("%s:%d has %d field(s), header has %d", path, ln, len(f), len(rows[0]))
		}
		rows = append(rows, f)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty table", path)
	}
	return rows, nil
}
