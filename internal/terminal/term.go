// Package terminal is the raw-mode VT100 driver spec.md places out of
// scope for the editor core: a byte sink producing encoded output, a key
// source producing decoded keystrokes, and the process-lifecycle
// responsibility of saving and restoring terminal attributes.
//
// Grounded on the teacher's term.go, generalized to use
// golang.org/x/sys/unix (already an unused dependency in the teacher's
// go.mod) instead of raw syscall.Syscall(SYS_IOCTL, ...) calls against
// undefined ioctlReadTermios/ioctlWriteTermios constants.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/go-lumen/lumen/internal/core"
)

// Driver owns the terminal file descriptor's raw-mode lifecycle and
// produces/consumes the core editor's KeySource/ByteSink interfaces.
type Driver struct {
	fd          int
	rawMode     bool
	origTermios *unix.Termios
	resize      resizeFlag
}

// New returns a Driver bound to stdin/stdout.
func New() *Driver {
	return &Driver{fd: int(os.Stdin.Fd())}
}

// Open enables raw mode, switches to the alternate screen buffer, and
// starts watching for SIGWINCH. It returns an error if stdin is not a
// terminal or the terminal attributes can't be read or set.
func (d *Driver) Open() error {
	if err := d.enableRawMode(); err != nil {
		return err
	}
	if _, err := os.Stdout.Write([]byte("\x1b[?1049h")); err != nil {
		return err
	}
	d.resize.watch()
	return nil
}

// Close leaves the alternate screen buffer and restores the original
// terminal attributes. Safe to call more than once.
func (d *Driver) Close() {
	os.Stdout.Write([]byte("\x1b[?1049l"))
	d.disableRawMode()
	d.resize.stop()
}

func (d *Driver) enableRawMode() error {
	if d.rawMode {
		return nil
	}
	if !isatty(d.fd) {
		return errors.New("lumen: stdin is not a tty")
	}
	orig, err := unix.IoctlGetTermios(d.fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("lumen: get terminal attributes: %w", err)
	}
	d.origTermios = orig

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1 // ~100ms read timeout, so the resize flag is polled

	if err := unix.IoctlSetTermios(d.fd, unix.TCSETS, &raw); err != nil {
		return fmt.Errorf("lumen: set terminal attributes: %w", err)
	}
	d.rawMode = true
	return nil
}

func (d *Driver) disableRawMode() {
	if d.rawMode && d.origTermios != nil {
		unix.IoctlSetTermios(d.fd, unix.TCSETS, d.origTermios)
		d.rawMode = false
	}
}

func isatty(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	return err == nil
}

// Write implements core.ByteSink, sending a composed screen refresh to
// stdout in one call.
func (d *Driver) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

// Size returns the current window size as (rows, cols). The two rows
// for the status and message bars are not subtracted here; the editor
// core reserves them itself.
func (d *Driver) Size() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, 0, fmt.Errorf("lumen: get window size: %w", err)
	}
	return int(ws.Row), int(ws.Col), nil
}

var _ core.ByteSink = (*Driver)(nil)
