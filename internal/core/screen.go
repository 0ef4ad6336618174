package core

import (
	"fmt"
	"time"

	"github.com/go-lumen/lumen/internal/config"
)

const welcomeText = "lumen editor -- a kilo in Go"

// refreshScreen composes the whole screen into an append buffer and
// writes it to the byte sink in one call (spec.md §4.5, "Screen
// Composer").
func (e *Editor) refreshScreen() {
	e.scroll()

	var ab appendBuffer
	ab.WriteString("\x1b[?25l")
	ab.WriteString("\x1b[H")

	for y := 0; y < e.screenRows; y++ {
		e.drawRow(&ab, y)
	}
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	cursorRow := e.cy - e.rowOff + 1
	cursorCol := e.rx - e.colOff + 1
	ab.WriteString(fmt.Sprintf("\x1b[%d;%dH", cursorRow, cursorCol))
	ab.WriteString("\x1b[?25h")

	e.sink.Write(ab.Bytes())
}

func (e *Editor) drawRow(ab *appendBuffer, y int) {
	filerow := e.rowOff + y

	if filerow >= len(e.rows) {
		if len(e.rows) == 0 && y == e.screenRows/3 {
			e.drawWelcome(ab)
		} else {
			ab.WriteString("~\x1b[0K\r\n")
		}
		return
	}

	row := e.rows[filerow]
	length := len(row.render) - e.colOff
	if length < 0 {
		length = 0
	}
	if length > e.screenCols {
		length = e.screenCols
	}

	if length > 0 {
		render := row.render[e.colOff : e.colOff+length]
		hl := row.hl[e.colOff : e.colOff+length]
		currentColor := -1
		for j, b := range render {
			switch {
			case hl[j] == HLNonprint:
				ab.WriteString("\x1b[7m")
				if b <= 26 {
					ab.WriteByte('@' + b)
				} else {
					ab.WriteByte('?')
				}
				ab.WriteString("\x1b[m")
				if currentColor != -1 {
					ab.WriteString(fmt.Sprintf("\x1b[%dm", currentColor))
				}
			case hl[j] == HLNormal:
				if currentColor != -1 {
					ab.WriteString("\x1b[39m")
					currentColor = -1
				}
				ab.WriteByte(b)
			default:
				color := syntaxToColor(hl[j])
				if color != currentColor {
					ab.WriteString(fmt.Sprintf("\x1b[%dm", color))
					currentColor = color
				}
				ab.WriteByte(b)
			}
		}
	}

	ab.WriteString("\x1b[39m")
	ab.WriteString("\x1b[0K")
	ab.WriteString("\r\n")
}

func (e *Editor) drawWelcome(ab *appendBuffer) {
	welcome := welcomeText
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		ab.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		ab.WriteByte(' ')
	}
	ab.WriteString(welcome)
	ab.WriteString("\x1b[0K\r\n")
}

func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.WriteString("\x1b[7m")

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if e.dirty {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines%s", name, len(e.rows), modified)

	ft := "no ft"
	if e.syntax != nil {
		ft = e.syntax.Name
	}
	right := fmt.Sprintf("%s | %d/%d", ft, e.cy+1, len(e.rows))

	if len(left) > e.screenCols {
		left = left[:e.screenCols]
	}
	ab.WriteString(left)
	for l := len(left); l < e.screenCols; l++ {
		if e.screenCols-l == len(right) {
			ab.WriteString(right)
			break
		}
		ab.WriteByte(' ')
	}
	ab.WriteString("\x1b[m\r\n")
}

func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.WriteString("\x1b[0K")
	if e.statusMsg != "" && time.Since(e.statusTime) < config.MessageTimeout*time.Second {
		msg := e.statusMsg
		if len(msg) > e.screenCols {
			msg = msg[:e.screenCols]
		}
		ab.WriteString(msg)
	}
}
