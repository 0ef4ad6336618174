package core

// Key is a decoded keystroke. Values 0x00-0xFF are literal bytes read from
// the terminal; values >= 0x1000 are special keys the terminal driver
// decodes from multi-byte escape sequences (or synthesizes, for Resize).
type Key int

const (
	KeyNull      Key = 0
	CtrlA        Key = 1
	CtrlC        Key = 3
	CtrlD        Key = 4
	CtrlE        Key = 5
	CtrlF        Key = 6
	CtrlH        Key = 8
	CtrlK        Key = 11
	KeyTab       Key = 9
	CtrlL        Key = 12
	KeyEnter     Key = 13
	CtrlQ        Key = 17
	CtrlS        Key = 19
	KeyEsc       Key = 27
	KeyBackspace Key = 127
)

// Special keys occupy a contiguous range starting at 0x1000, matching the
// "Special keys occupy values >= 0x1000" rule from the key code space.
const (
	KeyArrowLeft Key = 0x1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDel
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyResize
)

// KeySource yields decoded keystrokes, blocking until one is available.
// Implementations poll with a short timeout so an asynchronous resize can
// be observed and returned as KeyResize between reads.
type KeySource interface {
	ReadKey() (Key, error)
}

// ByteSink is an encoded-output drain for a single atomic screen refresh.
type ByteSink interface {
	Write(p []byte) (int, error)
}

// IsByte reports whether k is a literal byte value rather than a special key.
func (k Key) IsByte() bool {
	return k >= 0 && k <= 0xFF
}

// IsControl reports whether k is an ASCII control byte (value < 32, or DEL).
func (k Key) IsControl() bool {
	return k.IsByte() && (k < 32 || k == KeyBackspace)
}
