package core

import "github.com/go-lumen/lumen/internal/config"

// ProcessKeypress reads one key and dispatches it to the appropriate
// editing, movement, search, save, or quit action (spec.md §4.9,
// "Dispatcher"). It returns false when the editor should quit.
func (e *Editor) ProcessKeypress() (bool, error) {
	key, err := e.keys.ReadKey()
	if err != nil {
		return false, err
	}

	vertical := false

	switch key {
	case KeyResize:
		if err := e.updateWindowSize(); err != nil {
			return false, err
		}

	case KeyEnter:
		e.insertNewline()

	case CtrlQ:
		if e.dirty && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return true, nil
		}
		return false, nil

	case CtrlS:
		e.save()

	case CtrlF:
		e.Find()

	case CtrlK:
		e.deleteCurrentRow()

	case CtrlH, KeyBackspace:
		e.deleteChar()

	case KeyDel:
		e.moveCursor(KeyArrowRight)
		e.deleteChar()

	case KeyHome, CtrlA:
		e.cx = 0

	case KeyEnd, CtrlE:
		if row := e.currentRow(); row != nil {
			e.cx = row.Size()
		}

	case KeyPageUp, KeyPageDown:
		e.pageMove(key)
		vertical = true

	case KeyArrowUp, KeyArrowDown:
		e.moveCursor(key)
		vertical = true

	case KeyArrowLeft, KeyArrowRight:
		e.moveCursor(key)

	case CtrlL, KeyEsc:
		// no-op

	default:
		if key.IsByte() && !key.IsControl() {
			e.insertChar(byte(key))
		}
	}

	e.quitTimes = config.QuitTimes
	if !vertical {
		e.setDesiredRx()
	}
	return true, nil
}

// pageMove implements PAGE_UP/PAGE_DOWN: place cy at the top or bottom of
// the viewport, then simulate screenRows single-line moves (spec.md §4.9).
func (e *Editor) pageMove(key Key) {
	if key == KeyPageUp {
		e.cy = e.rowOff
	} else {
		e.cy = e.rowOff + e.screenRows - 1
		if e.cy > len(e.rows) {
			e.cy = len(e.rows)
		}
	}

	dir := KeyArrowDown
	if key == KeyPageUp {
		dir = KeyArrowUp
	}
	for i := 0; i < e.screenRows; i++ {
		e.moveCursor(dir)
	}
}

// save wraps Save with an interactive filename prompt when the buffer has
// none yet (original_source/kilo.c's editor_save "Save as: %s" prompt;
// spec.md §7 names "save cancelled (empty filename at prompt)" as a
// Reported condition, implying this prompt exists).
func (e *Editor) save() {
	if e.filename == "" {
		name, ok := e.Prompt("Save as: %s", nil)
		if !ok {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = string(name)
		e.SelectSyntaxHighlight(e.filename)
	}
	e.Save()
}

// Run drives the main loop: refresh, read one key, dispatch, repeat until
// quit or a fatal error (spec.md §5, "Scheduling model").
func (e *Editor) Run() error {
	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")
	for {
		e.refreshScreen()
		again, err := e.ProcessKeypress()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
