package seqlenapp

import (
	"bytes"
	"os"
	"path/filepath"
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

func TestLengths(t *testing.T) {
	in := write(t, "in.fa", ">s1 some description\nACGT\nACG\n>s2\nAC\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	want := "s1\t7\ns2\t2\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
}

func TestMultipleFiles(t *testing.T) {
	a := write(t, "a.fa", ">a\nACGT\n")
	b := write(t, "b.fa", ">b\nAC\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{a, b}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if want := "a\t4\nb\t2\n"; out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
}

func TestMissingFile(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{filepath.Join(t.TempDir(), "nope.fa")}, &out, &errBuf); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
}
