// internal/gff/record.go
package gff

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one 9-column GFF3 feature row. Start and End are 1-based
// inclusive genomic coordinates. Raw preserves the original line for
// diagnostic printing.
type Record struct {
	SeqID      string
	Source     string
	Type       string
	Start      int
	End        int
	Score      string
	Strand     string
	Phase      string
	Attributes string
	Raw        string
}

// ParseLine parses a single GFF3 line. ok is false for comment/pragma
// and blank lines, which carry no record. Rows missing the strand
// column or carrying non-numeric coordinates yield an error; callers
// decide whether to skip or abort.
func ParseLine(line string) (rec Record, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] == '#' {
		return Record{}, false, nil
	}
	f := strings.Split(line, "\t")
	if len(f) < 7 {
		return Record{}, false, fmt.Errorf("gff: %d field(s), want 9", len(f))
	}
	start, err := strconv.Atoi(f[3])
	if err != nil {
		return Record{}, false, fmt.Errorf("gff: bad start %q", f[3])
	}
	end, err := strconv.Atoi(f[4])
	if err != nil {
		return Record{}, false, fmt.Errorf("gff: bad end %q", f[4])
	}
	rec = Record{
		SeqID:  f[0],
		Source: f[1],
		Type:   f[2],
		Start:  start,
		End:    end,
		Score:  f[5],
		Strand: f[6],
		Raw:    line,
	}
	if len(f) > 7 {
		rec.Phase = f[7]
	}
	if len(f) > 8 {
		rec.Attributes = f[8]
	}
	return rec, true, nil
}
