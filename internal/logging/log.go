// Package logging opens a line-oriented debug log for lumen. A full-screen
// raw-mode program can't share stdout/stderr with a logger without
// corrupting the display, so diagnostics go to a file instead, or nowhere
// if no path is configured.
package logging

import (
	"io"
	"log/slog"
	"os"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns a slog.Logger writing JSON lines to path, or a logger that
// discards everything if path is empty. The returned closer must be
// called (ignoring a nil error) before the process exits.
func Open(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f, nil
}
