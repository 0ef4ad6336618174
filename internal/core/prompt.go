package core

import (
	"github.com/go-lumen/lumen/internal/config"
)

// PromptCallback observes each keystroke during a Prompt session, given
// the buffer as typed so far and the key that produced it. It is also
// called with the cancelling (ESC/Ctrl-C) or accepting (Enter) key just
// before Prompt returns.
type PromptCallback func(buffer []byte, key Key)

// Prompt is the mini line editor used for filename and search queries
// (spec.md §4.8). It drives the refresh loop itself so the prompt text
// shows up in the status bar on every keystroke, and returns the
// collected buffer and whether it was accepted (true) or cancelled
// (false, on ESC/Ctrl-C).
func (e *Editor) Prompt(format string, cb PromptCallback) ([]byte, bool) {
	buf := make([]byte, 0, 128)

	for {
		e.SetStatusMessage(format, string(buf))
		e.refreshScreen()

		key, err := e.keys.ReadKey()
		if err != nil {
			e.SetStatusMessage("")
			return nil, false
		}

		switch {
		case key == KeyEsc || key == CtrlC:
			e.SetStatusMessage("")
			if cb != nil {
				cb(buf, key)
			}
			return nil, false

		case key == KeyEnter:
			if len(buf) == 0 {
				continue
			}
			e.SetStatusMessage("")
			if cb != nil {
				cb(buf, key)
			}
			return buf, true

		case key == KeyBackspace || key == CtrlH || key == KeyDel:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		default:
			if key.IsByte() && !key.IsControl() && byte(key) <= 0xff && len(buf) < config.MaxQueryLen {
				buf = append(buf, byte(key))
			}
		}

		if cb != nil {
			cb(buf, key)
		}
	}
}
