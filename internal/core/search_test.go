package core

import "testing"

func TestFindCallbackLocatesMatchAndSetsOverlay(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("the quick brown fox"))
	e.insertRow(1, []byte("jumps over the lazy dog"))
	e.search.reset()

	e.findCallback([]byte("lazy"), Key('y'))

	if e.cy != 1 {
		t.Fatalf("expected match on row 1, got cy=%d", e.cy)
	}
	wantCx := rowRxToCx(e.rows[1], 15) // "jumps over the " is 15 bytes
	if e.cx != wantCx {
		t.Errorf("cx after match: got %d, want %d", e.cx, wantCx)
	}

	for i := 0; i < len("lazy"); i++ {
		if e.rows[1].hl[e.cx+i] != HLMatch {
			t.Errorf("match overlay byte %d not HLMatch", i)
		}
	}
}

func TestFindCallbackWrapsAroundWhenSearchingBackward(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("alpha"))
	e.insertRow(1, []byte("beta"))
	e.insertRow(2, []byte("alpha"))
	e.search.reset()

	e.findCallback([]byte("alpha"), Key('a'))
	if e.cy != 0 {
		t.Fatalf("expected first match on row 0, got cy=%d", e.cy)
	}

	e.findCallback([]byte("alpha"), KeyArrowLeft) // search backward from here
	if e.cy != 2 {
		t.Errorf("backward search should wrap to the last match (row 2), got cy=%d", e.cy)
	}
}

func TestRestoreOverlayUndoesMatchHighlight(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("needle in haystack"))
	e.search.reset()

	e.findCallback([]byte("needle"), Key('e'))
	if e.rows[0].hl[0] != HLMatch {
		t.Fatalf("expected overlay applied before restore")
	}

	e.restoreOverlay()
	if e.rows[0].hl[0] == HLMatch {
		t.Errorf("restoreOverlay left a HLMatch byte behind")
	}
}

func TestFindCallbackControlKeyResetsSearch(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("anything"))
	e.search.startRow = 5
	e.search.startRx = 5

	e.findCallback([]byte("anything"), KeyEsc)

	if e.search.startRow != 0 || e.search.startRx != 0 {
		t.Errorf("control key should reset search state, got startRow=%d startRx=%d", e.search.startRow, e.search.startRx)
	}
}
