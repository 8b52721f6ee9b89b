package intronlencli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.FeatureType != "exon" || o.ShowFlanking || o.WarnBelow != -1 || o.WarnAbove != -1 {
		t.Errorf("bad defaults: %+v", o)
	}
	if len(o.Files) != 1 || o.Files[0] != "-" {
		t.Errorf("want stdin default, got %v", o.Files)
	}
}

func TestFlagsAndFiles(t *testing.T) {
	o := mustParse(t, "--type", "CDS", "--warn-lt", "20", "a.gff3", "b.gff3")
	if o.FeatureType != "CDS" || o.WarnBelow != 20 {
		t.Errorf("bad parse: %+v", o)
	}
	if len(o.Files) != 2 || o.Files[0] != "a.gff3" {
		t.Errorf("bad files: %v", o.Files)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "a.gff3", "--type", "CDS")
	if o.FeatureType != "CDS" || len(o.Files) != 1 {
		t.Errorf("bad parse: %+v", o)
	}
}

func TestLegacyAssignments(t *testing.T) {
	o := mustParse(t,
		"TYPE=CDS", "SHOW_FLANKING=1",
		"WARN_INTRON_LESS_THAN=30", "WARN_INTRON_GREATER_THAN=50000",
		"in.gff3",
	)
	if o.FeatureType != "CDS" || !o.ShowFlanking || o.WarnBelow != 30 || o.WarnAbove != 50000 {
		t.Errorf("legacy assignments not applied: %+v", o)
	}
	if len(o.Files) != 1 || o.Files[0] != "in.gff3" {
		t.Errorf("bad files: %v", o.Files)
	}
}

func TestLegacyBadValue(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"WARN_INTRON_LESS_THAN=abc"}); err == nil {
		t.Fatal("expected error for non-numeric threshold")
	}
}

// A path that happens to contain '=' but is not a known key stays a path.
func TestUnknownAssignmentIsAPath(t *testing.T) {
	o := mustParse(t, "dir/run=3/in.gff3")
	if len(o.Files) != 1 || o.Files[0] != "dir/run=3/in.gff3" {
		t.Errorf("bad files: %v", o.Files)
	}
}

func TestEmptyTypeRejected(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--type", ""}); err == nil {
		t.Fatal("expected error for empty --type")
	}
}
