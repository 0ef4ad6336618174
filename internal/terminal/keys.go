package terminal

import (
	"syscall"

	"github.com/go-lumen/lumen/internal/core"
)

// ReadKey blocks (subject to the ~100ms VTIME read timeout set in
// enableRawMode) until a key is available, decoding escape sequences into
// the special key range and returning a synthetic core.KeyResize when the
// read times out with the resize flag set. Implements core.KeySource.
func (d *Driver) ReadKey() (core.Key, error) {
	var buf [1]byte
	for {
		n, err := syscall.Read(d.fd, buf[:])
		if n == 1 {
			break
		}
		if d.resize.consume() {
			return core.KeyResize, nil
		}
		if err != nil && err != syscall.EAGAIN && err != syscall.EINTR {
			return 0, err
		}
	}
	c := core.Key(buf[0])
	if c != core.KeyEsc {
		return c, nil
	}
	return d.readEscapeSequence()
}

func (d *Driver) readEscapeSequence() (core.Key, error) {
	var seq [3]byte
	if n, _ := syscall.Read(d.fd, seq[0:1]); n == 0 {
		return core.KeyEsc, nil
	}
	if n, _ := syscall.Read(d.fd, seq[1:2]); n == 0 {
		return core.KeyEsc, nil
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			if n, _ := syscall.Read(d.fd, seq[2:3]); n == 0 {
				return core.KeyEsc, nil
			}
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return core.KeyHome, nil
				case '3':
					return core.KeyDel, nil
				case '4', '8':
					return core.KeyEnd, nil
				case '5':
					return core.KeyPageUp, nil
				case '6':
					return core.KeyPageDown, nil
				}
			}
			return core.KeyEsc, nil
		}
		switch seq[1] {
		case 'A':
			return core.KeyArrowUp, nil
		case 'B':
			return core.KeyArrowDown, nil
		case 'C':
			return core.KeyArrowRight, nil
		case 'D':
			return core.KeyArrowLeft, nil
		case 'H':
			return core.KeyHome, nil
		case 'F':
			return core.KeyEnd, nil
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return core.KeyHome, nil
		case 'F':
			return core.KeyEnd, nil
		}
	}
	return core.KeyEsc, nil
}
