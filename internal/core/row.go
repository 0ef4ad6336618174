package core

import (
	"bytes"

	"github.com/go-lumen/lumen/internal/config"
)

// Highlight token classes, one per rendered byte. Grounded on the
// teacher's highlight.go hl* constants.
type Highlight byte

const (
	HLNormal Highlight = iota
	HLNonprint
	HLComment
	HLMLComment
	HLKeyword1
	HLKeyword2
	HLString
	HLNumber
	HLMatch
)

// Row is one logical line of the buffer plus its derived projection and
// highlight arrays (spec.md §3, "Row").
type Row struct {
	idx         int
	chars       []byte
	render      []byte
	hl          []Highlight
	openComment bool // row ends inside an unterminated multi-line comment
}

// Chars returns the row's logical bytes.
func (r *Row) Chars() []byte { return r.chars }

// Size returns the number of logical bytes in the row.
func (r *Row) Size() int { return len(r.chars) }

// Index returns the row's position in its owning buffer.
func (r *Row) Index() int { return r.idx }

func newRow(idx int, chars []byte) *Row {
	c := make([]byte, len(chars))
	copy(c, chars)
	return &Row{idx: idx, chars: c}
}

// insertRow inserts a new row at at (0 <= at <= len(rows)), shifting later
// rows up and renumbering their idx fields (spec.md §4.2, insert_row).
func (e *Editor) insertRow(at int, chars []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	row := newRow(at, chars)
	e.rows = append(e.rows, nil)
	copy(e.rows[at+1:], e.rows[at:])
	e.rows[at] = row
	for j := at + 1; j < len(e.rows); j++ {
		e.rows[j].idx = j
	}
	e.updateRow(row)
	e.dirty = true
}

// deleteRow removes the row at at, renumbering every following row so
// r.idx == index_of(r) continues to hold (spec.md §3 invariant 2, and the
// Open Question on the delete_row index cascade resolved in SPEC_FULL.md
// §14: every surviving row at or after at is reassigned directly, not
// decremented in a loop that revisits the same row).
func (e *Editor) deleteRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = append(e.rows[:at], e.rows[at+1:]...)
	for j := at; j < len(e.rows); j++ {
		e.rows[j].idx = j
	}
	e.dirty = true
}

// updateRow regenerates render from chars (expanding tabs to the next
// TabStop column, spec.md §3 "render") and reruns the highlighter.
func (e *Editor) updateRow(row *Row) {
	var buf bytes.Buffer
	for _, c := range row.chars {
		if Key(c) == KeyTab {
			n := config.TabStop - (buf.Len() % config.TabStop)
			for i := 0; i < n; i++ {
				buf.WriteByte(' ')
			}
		} else {
			buf.WriteByte(c)
		}
	}
	row.render = buf.Bytes()
	e.updateSyntax(row)
}

func (e *Editor) rowInsertChar(row *Row, at int, c byte) {
	if at < 0 {
		at = 0
	}
	if at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = append(row.chars, 0)
	copy(row.chars[at+1:], row.chars[at:])
	row.chars[at] = c
	e.updateRow(row)
	e.dirty = true
}

func (e *Editor) rowDeleteChar(row *Row, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}
	row.chars = append(row.chars[:at], row.chars[at+1:]...)
	e.updateRow(row)
	e.dirty = true
}

func (e *Editor) rowAppendString(row *Row, s []byte) {
	row.chars = append(row.chars, s...)
	e.updateRow(row)
	e.dirty = true
}

// rowCxToRx maps a logical column to its rendered column, expanding tabs.
func rowCxToRx(row *Row, cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(row.chars); j++ {
		if Key(row.chars[j]) == KeyTab {
			rx += (config.TabStop - 1) - (rx % config.TabStop)
		}
		rx++
	}
	return rx
}

// rowRxToCx maps a rendered column back to the smallest logical column
// whose rendered width strictly exceeds rx, or the row length if none
// does (spec.md §4.2, row_rx_to_cx).
func rowRxToCx(row *Row, rx int) int {
	curRx := 0
	cx := 0
	for ; cx < len(row.chars); cx++ {
		if Key(row.chars[cx]) == KeyTab {
			curRx += (config.TabStop - 1) - (curRx % config.TabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return len(row.chars)
}
