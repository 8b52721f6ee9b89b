package seqsplitapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestSplitNearEqual(t *testing.T) {
	in := write(t, "in.fa", ">s1\nACGTACGTAC\n") // 10 bp
	dir := t.TempDir()
	prefix := filepath.Join(dir, "piece_")

	var out, errBuf bytes.Buffer
	code := Run([]string{"--parts", "3", "--prefix", prefix, in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}

	// 10 = 4 + 3 + 3
	p1 := readFile(t, prefix+"1.fa")
	p2 := readFile(t, prefix+"2.fa")
	p3 := readFile(t, prefix+"3.fa")
	if !strings.Contains(p1, "ACGT") || strings.Contains(p1, "ACGTA") {
		t.Errorf("piece 1 = %q, want 4 bp ACGT", p1)
	}
	if !strings.Contains(p2, "ACG") {
		t.Errorf("piece 2 = %q", p2)
	}
	if !strings.Contains(p3, "TAC") {
		t.Errorf("piece 3 = %q", p3)
	}
	if !strings.Contains(p1, "s1_part_1") {
		t.Errorf("piece 1 header = %q", p1)
	}
	// ranges reported on stderr
	se := errBuf.String()
	if !strings.Contains(se, "s1:1-4") || !strings.Contains(se, "s1:5-7") || !strings.Contains(se, "s1:8-10") {
		t.Errorf("missing range report: %s", se)
	}
}

func TestSplitSinglePart(t *testing.T) {
	in := write(t, "in.fa", ">s1\nACGT\n")
	prefix := filepath.Join(t.TempDir(), "p")

	var out, errBuf bytes.Buffer
	code := Run([]string{"--parts", "1", "--prefix", prefix, in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if got := readFile(t, prefix+"1.fa"); !strings.Contains(got, "ACGT") {
		t.Errorf("piece = %q", got)
	}
}

func TestTooManyParts(t *testing.T) {
	in := write(t, "in.fa", ">s1\nACGT\n")
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--parts", "10", in}, &out, &errBuf); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
}

func TestEmptyInputFails(t *testing.T) {
	in := write(t, "in.fa", "")
	var out, errBuf bytes.Buffer
	if code := Run([]string{in}, &out, &errBuf); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
}

func TestExtraRecordsWarn(t *testing.T) {
	in := write(t, "in.fa", ">s1\nACGTACGT\n>s2\nACGT\n")
	prefix := filepath.Join(t.TempDir(), "p")

	var out, errBuf bytes.Buffer
	code := Run([]string{"--parts", "2", "--prefix", prefix, in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "more than one record") {
		t.Errorf("missing warning: %s", errBuf.String())
	}
}
