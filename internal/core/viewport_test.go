package core

import "testing"

func TestScrollKeepsCursorWithinWindow(t *testing.T) {
	e := newTestEditor()
	e.screenRows = 5
	e.screenCols = 10
	for i := 0; i < 20; i++ {
		e.insertRow(i, []byte("line"))
	}

	e.cy = 12
	e.scroll()

	if e.cy < e.rowOff || e.cy >= e.rowOff+e.screenRows {
		t.Errorf("cursor row %d not within viewport [%d, %d)", e.cy, e.rowOff, e.rowOff+e.screenRows)
	}

	e.cy = 0
	e.scroll()
	if e.rowOff != 0 {
		t.Errorf("scrolling back to row 0 should pull rowOff to 0, got %d", e.rowOff)
	}
}

func TestClampCxClampsToRowLength(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("abc"))
	e.cy = 0
	e.cx = 99

	e.clampCx()
	if e.cx != 3 {
		t.Errorf("clampCx: got %d, want 3", e.cx)
	}
}

func TestClampCxPastEOFIsZero(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("abc"))
	e.cy = 5
	e.cx = 2

	e.clampCx()
	if e.cx != 0 {
		t.Errorf("clampCx past EOF: got %d, want 0", e.cx)
	}
}

func TestMoveCursorVerticalRestoresDesiredColumn(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("abcdefgh"))
	e.insertRow(1, []byte("ab"))
	e.insertRow(2, []byte("abcdefgh"))

	e.cy, e.cx = 0, 6
	e.setDesiredRx()

	e.moveCursor(KeyArrowDown) // row 1 is short: cx clamps to its length
	if e.cx != 2 {
		t.Errorf("moving onto short row: cx = %d, want 2 (clamped)", e.cx)
	}

	e.moveCursor(KeyArrowDown) // row 2 is long again: desiredRx should win
	if e.cx != 6 {
		t.Errorf("moving onto long row: cx = %d, want 6 (desired column restored)", e.cx)
	}
}

func TestMoveCursorLeftAtColumnZeroJoinsPreviousRow(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("abc"))
	e.insertRow(1, []byte("def"))
	e.cy, e.cx = 1, 0

	e.moveCursor(KeyArrowLeft)
	if e.cy != 0 || e.cx != 3 {
		t.Errorf("ARROW_LEFT at col 0: got cy=%d cx=%d, want cy=0 cx=3", e.cy, e.cx)
	}
}

func TestMoveCursorRightAtEndOfRowWrapsToNext(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("abc"))
	e.insertRow(1, []byte("def"))
	e.cy, e.cx = 0, 3

	e.moveCursor(KeyArrowRight)
	if e.cy != 1 || e.cx != 0 {
		t.Errorf("ARROW_RIGHT at end of row: got cy=%d cx=%d, want cy=1 cx=0", e.cy, e.cx)
	}
}
