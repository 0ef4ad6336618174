package core

// insertChar inserts c at the cursor, appending a fresh row first if the
// cursor sits one past the last row (spec.md §4.6, insert_char).
func (e *Editor) insertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	row := e.rows[e.cy]
	e.rowInsertChar(row, e.cx, c)
	e.cx++
}

// insertNewline splits the current row at the cursor, replicating leading
// indentation onto the new row (spec.md §4.6, insert_newline).
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
		e.cy++
		e.cx = 0
		return
	}

	row := e.rows[e.cy]
	nBlank := 0
	for nBlank < e.cx && nBlank < len(row.chars) && isBlank(row.chars[nBlank]) {
		nBlank++
	}

	e.insertRow(e.cy+1, row.chars[:nBlank])
	row = e.rows[e.cy] // insertRow may have reallocated the row slice
	tail := append([]byte(nil), row.chars[e.cx:]...)
	e.rowAppendString(e.rows[e.cy+1], tail)

	if e.cx == nBlank {
		row.chars = row.chars[:0]
	} else {
		row.chars = row.chars[:e.cx]
	}
	e.updateRow(row)

	e.cy++
	e.cx = nBlank
}

func isBlank(c byte) bool {
	return c == ' ' || Key(c) == KeyTab
}

// deleteChar deletes the byte left of the cursor, or joins the current row
// onto the previous one at column zero (spec.md §4.6, delete_char).
func (e *Editor) deleteChar() {
	if e.cx == 0 && e.cy == 0 {
		return
	}
	if e.cy >= len(e.rows) {
		return
	}
	row := e.rows[e.cy]

	if e.cx == 0 {
		prev := e.rows[e.cy-1]
		joinAt := prev.Size()
		e.rowAppendString(prev, row.chars)
		e.deleteRow(e.cy)
		e.cy--
		e.cx = joinAt
		return
	}

	e.rowDeleteChar(row, e.cx-1)
	e.cx--
}

// deleteCurrentRow removes the row the cursor is on (Ctrl-K, spec.md §4.9).
func (e *Editor) deleteCurrentRow() {
	if e.cy >= len(e.rows) {
		return
	}
	e.deleteRow(e.cy)
	e.clampCx()
}
