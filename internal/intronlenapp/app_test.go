package intronlenapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const workedExample = `##gff-version 3
chr3	test	gene	3629085	3632622	.	+	.	ID=g1
chr3	test	mRNA	3629085	3632622	.	+	.	ID=t1;Parent=g1
chr3	test	CDS	3629085	3629477	.	+	0	ID=c1;Parent=t1
chr3	test	CDS	3630569	3630670	.	+	0	ID=c2;Parent=t1
chr3	test	CDS	3630773	3630910	.	+	0	ID=c3;Parent=t1
chr3	test	CDS	3631019	3631079	.	+	0	ID=c4;Parent=t1
chr3	test	CDS	3632021	3632145	.	+	0	ID=c5;Parent=t1
chr3	test	CDS	3632563	3632622	.	+	0	ID=c6;Parent=t1
chr8	test	mRNA	8775304	8775489	.	-	.	ID=t2
chr8	test	CDS	8775373	8775489	.	-	0	ID=c7;Parent=t2
chr8	test	CDS	8775304	8775318	.	-	0	ID=c8;Parent=t2
`

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestWorkedExample(t *testing.T) {
	in := write(t, "worked.gff3", workedExample)

	var out, errBuf bytes.Buffer
	code := Run([]string{"--type", "CDS", in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if got, want := out.String(), "54\t1091\t2659\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestWorkedExampleLegacyArgs(t *testing.T) {
	in := write(t, "worked.gff3", workedExample)

	var out, errBuf bytes.Buffer
	code := Run([]string{"TYPE=CDS", in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if got, want := out.String(), "54\t1091\t2659\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestTwoColumnOutput(t *testing.T) {
	in := write(t, "worked.gff3", workedExample)

	var out, errBuf bytes.Buffer
	code := Run([]string{"--type", "CDS", "--two-column", in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if got, want := out.String(), "54\t1091\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

// Threshold warnings go to stderr and must not change stdout.
func TestWarnThresholdLeavesStdoutAlone(t *testing.T) {
	in := write(t, "worked.gff3", workedExample)

	var out, errBuf bytes.Buffer
	code := Run([]string{"--type", "CDS", "--warn-lt", "100", in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if got, want := out.String(), "54\t1091\t2659\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if !strings.Contains(errBuf.String(), "54 bp below threshold 100") {
		t.Errorf("missing threshold warning: %s", errBuf.String())
	}
	// flanking raw rows accompany the warning
	if !strings.Contains(errBuf.String(), "ID=c8;Parent=t2") {
		t.Errorf("missing flanking row in warning: %s", errBuf.String())
	}
}

func TestShowFlanking(t *testing.T) {
	in := write(t, "worked.gff3", workedExample)

	var out, errBuf bytes.Buffer
	code := Run([]string{"--type", "CDS", "--show-flanking", in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	se := errBuf.String()
	if !strings.Contains(se, "min intron: 54") || !strings.Contains(se, "max intron: 1091") {
		t.Errorf("missing flanking report: %s", se)
	}
	if !strings.Contains(se, "ID=c1;Parent=t1") || !strings.Contains(se, "ID=c2;Parent=t1") {
		t.Errorf("missing max flank rows: %s", se)
	}
}

func TestMultipleFilesFormOneStream(t *testing.T) {
	// Same records split across two files must aggregate identically.
	lines := strings.SplitAfter(workedExample, "\n")
	a := write(t, "a.gff3", strings.Join(lines[:6], ""))
	b := write(t, "b.gff3", strings.Join(lines[6:], ""))

	var out, errBuf bytes.Buffer
	code := Run([]string{"--type", "CDS", a, b}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if got, want := out.String(), "54\t1091\t2659\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestNoIntronsSentinel(t *testing.T) {
	in := write(t, "single.gff3",
		"chr1\ttest\tmRNA\t1\t100\t.\t+\t.\tID=t1\n"+
			"chr1\ttest\texon\t1\t100\t.\t+\t.\tID=e1\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if got, want := out.String(), "9223372036854775807\t0\t0\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if !strings.Contains(errBuf.String(), "no introns found") {
		t.Errorf("missing note: %s", errBuf.String())
	}
}

func TestMalformedRowsDegradeGracefully(t *testing.T) {
	in := write(t, "messy.gff3",
		"not a gff row\n"+
			"chr1\ttest\tmRNA\t1\t1000\t.\t+\t.\tID=t1\n"+
			"chr1\ttest\texon\t100\t200\t.\t+\t.\tID=e1\n"+
			"chr1\ttest\texon\t301\t400\t.\t+\t.\tID=e2\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if got, want := out.String(), "100\t100\t100\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if !strings.Contains(errBuf.String(), "skipping malformed row") {
		t.Errorf("missing skip warning: %s", errBuf.String())
	}
}

func TestUnreadableInputFails(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{filepath.Join(t.TempDir(), "absent.gff3")}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
}

func TestUsageErrorExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"--warn-lt", "oops"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}
