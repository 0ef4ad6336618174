package core

// currentRow returns the row at the cursor, or nil past end-of-file.
func (e *Editor) currentRow() *Row {
	if e.cy < 0 || e.cy >= len(e.rows) {
		return nil
	}
	return e.rows[e.cy]
}

// refreshRx recomputes rx from cx and the current row (0 past EOF), the
// way it is recomputed on every screen refresh (spec.md §4.4).
func (e *Editor) refreshRx() {
	e.rx = 0
	if row := e.currentRow(); row != nil {
		e.rx = rowCxToRx(row, e.cx)
	}
}

// scroll adjusts rowOff/colOff so the cursor stays within the visible
// window, greedily toward the cursor on each half-open bound (spec.md
// §4.4, "Scroll clamps").
func (e *Editor) scroll() {
	e.refreshRx()
	if e.cy < e.rowOff {
		e.rowOff = e.cy
	}
	if e.cy >= e.rowOff+e.screenRows {
		e.rowOff = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOff {
		e.colOff = e.rx
	}
	if e.rx >= e.colOff+e.screenCols {
		e.colOff = e.rx - e.screenCols + 1
	}
}

// clampCx clamps cx to the current row's length, or 0 past EOF (spec.md
// §3 invariant 4).
func (e *Editor) clampCx() {
	row := e.currentRow()
	if row == nil {
		e.cx = 0
		return
	}
	if e.cx > row.Size() {
		e.cx = row.Size()
	}
	if e.cx < 0 {
		e.cx = 0
	}
}

// setDesiredRx records the cursor's current rendered column as the sticky
// target for subsequent vertical motion (spec.md §4.4, "desired_rx").
func (e *Editor) setDesiredRx() {
	e.refreshRx()
	e.desiredRx = e.rx
}

// moveCursor applies one cursor motion key (spec.md §4.4 and §4.9). The
// caller is responsible for updating desiredRx afterward per whether the
// motion was vertical.
func (e *Editor) moveCursor(key Key) {
	switch key {
	case KeyArrowLeft:
		if e.cx == 0 {
			if e.cy > 0 {
				e.cy--
				e.cx = e.rows[e.cy].Size()
			}
		} else {
			e.cx--
		}
	case KeyArrowRight:
		row := e.currentRow()
		if row == nil {
			break
		}
		if e.cx < row.Size() {
			e.cx++
		} else if e.cx == row.Size() {
			e.cy++
			e.cx = 0
		}
	case KeyArrowUp:
		if e.cy > 0 {
			e.cy--
			e.cx = e.rxToCxOrZero(e.cy, e.desiredRx)
		}
	case KeyArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
			e.cx = e.rxToCxOrZero(e.cy, e.desiredRx)
		}
	}
	e.clampCx()
}

// rxToCxOrZero maps a target rendered column to a logical column on row
// cy, or 0 if cy is past end-of-file (spec.md §4.4: "On ARROW_UP/DOWN...
// set cx <- row_rx_to_cx(new_row, desired_rx) (or 0 past EOF)").
func (e *Editor) rxToCxOrZero(cy, rx int) int {
	if cy < 0 || cy >= len(e.rows) {
		return 0
	}
	return rowRxToCx(e.rows[cy], rx)
}
