package terminal

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// resizeFlag models the asynchronous "terminal resized" event (spec.md
// §5, "Asynchronous input"): SIGWINCH sets a volatile flag that ReadKey
// polls between blocking reads, returning a synthetic core.KeyResize
// without the signal handler itself touching editor state.
type resizeFlag struct {
	pending atomic.Bool
	ch      chan os.Signal
}

func (r *resizeFlag) watch() {
	r.ch = make(chan os.Signal, 1)
	signal.Notify(r.ch, syscall.SIGWINCH)
	go func() {
		for range r.ch {
			r.pending.Store(true)
		}
	}()
}

func (r *resizeFlag) stop() {
	if r.ch != nil {
		signal.Stop(r.ch)
	}
}

// consume reports whether a resize occurred since the last call, clearing
// the flag.
func (r *resizeFlag) consume() bool {
	return r.pending.CompareAndSwap(true, false)
}
