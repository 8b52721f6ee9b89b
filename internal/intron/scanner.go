// internal/intron/scanner.go
package intron

import (
	"math"

	"annotools/internal/gff"
)

// NoIntron is the initial minimum. It stays in place when no positive
// gap is ever observed and is surfaced literally on output, matching
// the historical scripts this tool replaces.
const NoIntron = math.MaxInt64

// DefaultFeatureType defines exon boundaries when no type is configured.
const DefaultFeatureType = "exon"

// Config selects which features bound introns and which gaps trigger
// inline diagnostics. It is immutable after New.
type Config struct {
	// FeatureType is the feature that defines exon boundaries,
	// typically "exon" or "CDS". Empty means DefaultFeatureType.
	FeatureType string
	// WarnBelow triggers a warning for any gap g with 0 < g < WarnBelow.
	// Values <= 0 disable the check.
	WarnBelow int
	// WarnAbove triggers a warning for any gap g > WarnAbove, compared
	// on the raw (possibly non-positive) value. Negative disables.
	WarnAbove int
}

// FlankPair is the two exonic records bracketing a gap. PrevSet is
// false for the degenerate first-feature gap, which has no left flank.
type FlankPair struct {
	Prev    gff.Record
	Cur     gff.Record
	PrevSet bool
}

// Warning describes a gap outside the configured bounds.
type Warning struct {
	Gap       int
	Threshold int
	Below     bool
	Flank     FlankPair
}

// Stats is the process-lifetime aggregate over all transcripts.
// Min considers strictly positive gaps only; Max compares raw gap
// values and therefore stays 0 when every gap is <= 0. On ties the
// first occurrence wins for both flank pairs.
type Stats struct {
	Min           int
	Max           int
	MaxCumulative int
	MinFlank      FlankPair
	MaxFlank      FlankPair
}

// FoundIntron reports whether any positive gap was seen.
func (s Stats) FoundIntron() bool { return s.Min != NoIntron }

// Scanner consumes an ordered stream of annotation records and tracks
// intron lengths per transcript. Exonic features are assumed to arrive
// in ascending start order on the "+" strand and descending order on
// the "-" strand; files violating that precondition degrade to
// best-effort results rather than failing.
//
// A Scanner holds no global state, so two scans of the same input are
// independent and produce identical results.
type Scanner struct {
	cfg   Config
	warn  func(Warning)
	stats Stats

	// current transcript accumulator, reset on every mRNA/gene record
	boundary    int
	hasBoundary bool
	cumulative  int
	prev        gff.Record
	hasPrev     bool
}

// New returns a Scanner for cfg. warn may be nil; it is invoked inline
// for every gap outside the configured bounds, in stream order.
func New(cfg Config, warn func(Warning)) *Scanner {
	if cfg.FeatureType == "" {
		cfg.FeatureType = DefaultFeatureType
	}
	return &Scanner{cfg: cfg, warn: warn, stats: Stats{Min: NoIntron}}
}

// reset starts a fresh transcript accumulator.
func (s *Scanner) reset() {
	s.hasBoundary = false
	s.cumulative = 0
	s.prev = gff.Record{}
	s.hasPrev = false
}

// Feed advances the scanner by one record in stream order. mRNA and
// gene records reset the transcript accumulator (gene tolerates
// annotations with no explicit mRNA row); records of the configured
// feature type extend it; everything else is ignored.
func (s *Scanner) Feed(rec gff.Record) {
	switch rec.Type {
	case "mRNA", "gene":
		s.reset()
		return
	case s.cfg.FeatureType:
	default:
		return
	}

	// Bases strictly between the trailing edge of the previous exonic
	// feature and the leading edge of this one. Zero or negative means
	// adjacent/overlapping features: no intron, not an error. The very
	// first feature of a transcript has no boundary yet and yields 0.
	gap := 0
	if rec.Strand == "-" {
		if s.hasBoundary {
			gap = s.boundary - rec.End - 1
		}
		s.boundary = rec.Start
	} else {
		if s.hasBoundary {
			gap = rec.Start - s.boundary - 1
		}
		s.boundary = rec.End
	}
	s.hasBoundary = true

	// Cumulative sum takes the raw gap, negative contributions included.
	s.cumulative += gap
	if s.cumulative > s.stats.MaxCumulative {
		s.stats.MaxCumulative = s.cumulative
	}

	flank := FlankPair{Prev: s.prev, Cur: rec, PrevSet: s.hasPrev}
	if gap > 0 && gap < s.stats.Min {
		s.stats.Min = gap
		s.stats.MinFlank = flank
	}
	if gap > s.stats.Max {
		s.stats.Max = gap
		s.stats.MaxFlank = flank
	}

	if s.warn != nil {
		if s.cfg.WarnBelow > 0 && gap > 0 && gap < s.cfg.WarnBelow {
			s.warn(Warning{Gap: gap, Threshold: s.cfg.WarnBelow, Below: true, Flank: flank})
		}
		if s.cfg.WarnAbove >= 0 && gap > s.cfg.WarnAbove {
			s.warn(Warning{Gap: gap, Threshold: s.cfg.WarnAbove, Flank: flank})
		}
	}

	s.prev = rec
	s.hasPrev = true
}

// Stats returns the aggregate over everything fed so far.
func (s *Scanner) Stats() Stats { return s.stats }
