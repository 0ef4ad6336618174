package fileio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadLinesSplitsAndStripsTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLinesStripsCarriageReturn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("got %v, want [one two]", lines)
	}
}

func TestReadLinesMissingFileReturnsNilNil(t *testing.T) {
	lines, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil {
		t.Fatalf("expected nil error for missing file, got %v", err)
	}
	if lines != nil {
		t.Errorf("expected nil lines for missing file, got %v", lines)
	}
}

func TestWriteAtomicReplacesContentsAndPreservesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := WriteAtomic(path, []byte("first\n")); err != nil {
		t.Fatal(err)
	}
	if err := WriteAtomic(path, []byte("second\n")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second\n" {
		t.Errorf("got %q, want %q", string(data), "second\n")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "out.txt" {
			t.Errorf("leftover temp file not cleaned up: %s", e.Name())
		}
	}
}
