package core

import "bytes"

// searchState is the cross-keystroke state for the incremental search
// callback (spec.md §4.7, §9 "Static variables in the search callback"):
// kept on the Editor instead of as C-style function statics, and reset
// whenever a search session ends.
type searchState struct {
	startRx, startRow int
	direction         int

	savedHLRow int
	savedHL    []Highlight
}

func (s *searchState) reset() {
	s.startRx, s.startRow = 0, 0
	s.direction = 1
}

// restoreOverlay copies a previously saved row's hl bytes back in place of
// a MATCH overlay, the non-destructive-restore half of the MATCH overlay
// contract (spec.md GLOSSARY, "MATCH overlay").
func (e *Editor) restoreOverlay() {
	if e.search.savedHL == nil {
		return
	}
	if e.search.savedHLRow < len(e.rows) {
		copy(e.rows[e.search.savedHLRow].hl, e.search.savedHL)
	}
	e.search.savedHL = nil
}

// Find runs one incremental-search session: it saves cursor/scroll state,
// opens a Prompt driven by findCallback, and restores the saved state on
// cancel (spec.md §4.7, "find()").
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedRowOff, savedColOff := e.rowOff, e.colOff

	e.search.reset()
	e.search.savedHL = nil

	_, ok := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)

	e.restoreOverlay()
	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.rowOff, e.colOff = savedRowOff, savedColOff
	}
}

// findCallback implements spec.md §4.7's per-keystroke search logic.
func (e *Editor) findCallback(query []byte, key Key) {
	e.restoreOverlay()

	switch {
	case key == KeyArrowRight || key == KeyArrowDown:
		e.search.direction = 1
	case key == KeyArrowLeft || key == KeyArrowUp:
		e.search.direction = -1
	case key.IsControl() || !key.IsByte():
		e.search.reset()
		return
	default:
		e.search.startRx, e.search.startRow = 0, 0
		e.search.direction = 1
	}

	if len(e.rows) == 0 || len(query) == 0 {
		return
	}

	currentRow := e.search.startRow
	currentRx := e.search.startRx
	for i := 0; i < len(e.rows); i++ {
		row := e.rows[currentRow]
		start := currentRx
		if start > len(row.render) {
			start = len(row.render)
		}
		offset := bytes.Index(row.render[start:], query)
		if offset == -1 {
			currentRx = 0
			currentRow += e.search.direction
			if currentRow < 0 {
				currentRow = len(e.rows) - 1
			} else if currentRow >= len(e.rows) {
				currentRow = 0
			}
			continue
		}

		matchRx := start + offset

		e.cy = currentRow
		e.cx = rowRxToCx(row, matchRx)
		e.rowOff = len(e.rows) // forces the matching line to the top on next scroll

		e.search.savedHLRow = currentRow
		e.search.savedHL = append([]Highlight(nil), row.hl...)
		for j := 0; j < len(query) && matchRx+j < len(row.hl); j++ {
			row.hl[matchRx+j] = HLMatch
		}

		e.search.startRx = matchRx + len(query)
		e.search.startRow = currentRow
		return
	}
}
