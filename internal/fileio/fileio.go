// Package fileio is the file-I/O collaborator the editor core requires but
// does not implement itself (spec.md §1, "Out of scope"): a reader that
// yields lines and a writer that atomically replaces a path with a byte
// buffer.
package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotExist aliases os.ErrNotExist. ReadLines does not return it for a
// missing path: it returns (nil, nil) instead, so the caller treats the
// path as a new, empty file rather than an error.
var ErrNotExist = os.ErrNotExist

// ReadLines loads path and splits it into lines, stripping a single
// trailing \n (and a preceding \r) from each line and dropping the final
// empty line a trailing newline produces. If path does not exist, it
// returns (nil, nil) so the caller can start an empty buffer.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	text := string(data)
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// WriteAtomic replaces path's contents with data by writing to a temp file
// in the same directory and renaming it over path, so a crash or a
// short write never leaves path truncated or half-written.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".lumen-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if fi, err := os.Stat(path); err == nil {
		os.Chmod(tmpName, fi.Mode())
	} else {
		os.Chmod(tmpName, 0o644)
	}
	return os.Rename(tmpName, path)
}
