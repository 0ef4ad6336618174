package core

import "bytes"

// appendBuffer stages one full screen refresh so it can be flushed to the
// byte sink in a single write, avoiding flicker from many small writes.
type appendBuffer struct {
	buf bytes.Buffer
}

func (b *appendBuffer) WriteString(s string) {
	b.buf.WriteString(s)
}

func (b *appendBuffer) WriteByte(c byte) {
	if err := b.buf.WriteByte(c); err != nil {
		// bytes.Buffer only fails to grow on an int overflow of its length;
		// that is unrecoverable for a single screen refresh.
		panic("lumen: append buffer overflow: " + err.Error())
	}
}

func (b *appendBuffer) Bytes() []byte {
	return b.buf.Bytes()
}
