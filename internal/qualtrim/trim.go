// internal/qualtrim/trim.go
package qualtrim

// TrailingRun returns the length of the trailing run of sentinel bytes
// in qual. A read made entirely of the sentinel trims to nothing.
func TrailingRun(qual []byte, sentinel byte) int {
	n := 0
	for i := len(qual) - 1; i >= 0 && qual[i] == sentinel; i-- {
		n++
	}
	return n
}

// Counts aggregates reads/bases before and after trimming.
type Counts struct {
	ReadsIn  int64
	BasesIn  int64
	ReadsOut int64
	BasesOut int64
}

// Add records one read of length in that trimmed to length out;
// kept is false when the read was dropped by the length filter.
func (c *Counts) Add(in, out int, kept bool) {
	c.ReadsIn++
	c.BasesIn += int64(in)
	if kept {
		c.ReadsOut++
		c.BasesOut += int64(out)
	}
}
