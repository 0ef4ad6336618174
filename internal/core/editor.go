// Package core is the editor state machine: the text buffer and its
// rendered projection, the incremental syntax highlighter, the
// cursor/scroll/viewport model, incremental search, the prompt mini line
// editor, and the key-dispatch loop. For terminal input, output and size
// it depends only on the KeySource, ByteSink, and WindowSizer interfaces
// it declares itself — never on internal/terminal — so it can be driven
// and tested with stub implementations of all three. Loading and saving
// files go through internal/fileio, which it calls directly.
package core

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-lumen/lumen/internal/config"
	"github.com/go-lumen/lumen/internal/fileio"
)

// WindowSizer reports the current terminal size, in rows and columns.
type WindowSizer interface {
	Size() (rows, cols int, err error)
}

// Editor holds the complete state of one editing session: cursor
// position, scroll offsets, the row store, the active syntax definition,
// and everything the dispatcher needs between keystrokes.
type Editor struct {
	cx, cy     int
	rx         int
	desiredRx  int
	rowOff     int
	colOff     int
	screenRows int
	screenCols int

	rows     []*Row
	dirty    bool
	filename string

	statusMsg  string
	statusTime time.Time

	syntax *config.Syntax

	quitTimes int

	keys   KeySource
	sink   ByteSink
	sizer  WindowSizer
	logger *slog.Logger

	search searchState
}

// New constructs an Editor wired to the given key source, byte sink, and
// window sizer. It queries the initial window size immediately.
func New(keys KeySource, sink ByteSink, sizer WindowSizer, logger *slog.Logger) (*Editor, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e := &Editor{
		keys:      keys,
		sink:      sink,
		sizer:     sizer,
		logger:    logger,
		quitTimes: config.QuitTimes,
	}
	if err := e.updateWindowSize(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Editor) updateWindowSize() error {
	rows, cols, err := e.sizer.Size()
	if err != nil {
		return fmt.Errorf("lumen: window size: %w", err)
	}
	if rows < 3 || cols < 1 {
		return fmt.Errorf("lumen: terminal too small (%dx%d)", cols, rows)
	}
	e.screenRows = rows - 2 // status + message bars
	e.screenCols = cols
	return nil
}

// SelectSyntaxHighlight chooses the built-in syntax definition matching
// filename (spec.md §4.3, "SelectSyntaxHighlight") and re-highlights every
// row already loaded.
func (e *Editor) SelectSyntaxHighlight(filename string) {
	if s, ok := config.Select(filename); ok {
		e.syntax = &s
	} else {
		e.syntax = nil
	}
	for _, row := range e.rows {
		e.updateSyntax(row)
	}
}

// Open loads filename into the buffer, replacing any existing rows. A
// missing file starts an empty, named buffer rather than failing (spec.md
// §6, CLI: "Zero arguments: start with an empty buffer").
func (e *Editor) Open(filename string) error {
	e.filename = filename
	e.SelectSyntaxHighlight(filename)

	lines, err := fileio.ReadLines(filename)
	if err != nil {
		return err
	}
	e.rows = nil
	for _, line := range lines {
		e.insertRow(len(e.rows), []byte(line))
	}
	e.dirty = false
	return nil
}

// Save writes the buffer to e.filename atomically. Failures are reported
// via the status message and leave dirty true (spec.md §7, "Reported").
func (e *Editor) Save() error {
	if e.filename == "" {
		e.SetStatusMessage("Save aborted: no filename")
		return fmt.Errorf("lumen: no filename")
	}
	if e.syntax == nil {
		e.SelectSyntaxHighlight(e.filename)
	}
	data := e.rowsToBytes()
	if err := fileio.WriteAtomic(e.filename, data); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		e.logger.Error("save failed", "filename", e.filename, "error", err)
		return err
	}
	e.dirty = false
	e.SetStatusMessage("%d bytes written to disk", len(data))
	return nil
}

func (e *Editor) rowsToBytes() []byte {
	var out []byte
	for _, row := range e.rows {
		out = append(out, row.chars...)
		out = append(out, '\n')
	}
	return out
}

// SetStatusMessage sets the message-bar text, timestamped for the
// MessageTimeout display window.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}

// Dirty reports whether the buffer has unsaved changes.
func (e *Editor) Dirty() bool { return e.dirty }

// Filename returns the buffer's associated path, or "" if none.
func (e *Editor) Filename() string { return e.filename }

// NumRows returns the number of rows currently in the buffer.
func (e *Editor) NumRows() int { return len(e.rows) }
