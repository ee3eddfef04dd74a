// Package app wires every other package into the single-threaded,
// cooperative event loop spec §4.10/§5 describes: one AppState value
// threaded through the loop, a SignalFlags struct of atomic booleans
// written only by signal-handling goroutines, and the four
// decrementing timer counters driven by a 100ms tick.
package app

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// SignalFlags holds the asynchronous signal state spec §9 calls for:
// "a small SignalFlags struct whose fields are atomic booleans written
// only by signal handlers" — Go has no true signal handler context, so
// the teacher's own tui/screen.go pattern (a goroutine fed by
// signal.Notify) plays that role, touching only these flags.
type SignalFlags struct {
	Winch     atomic.Bool
	Interrupt atomic.Bool
	Terminate atomic.Bool
	Hangup    atomic.Bool
}

// WatchSignals starts the goroutine that turns OS signals into flag
// writes; stop closes it down. SIGWINCH debounces into a relayout,
// SIGINT/SIGTERM/SIGHUP are fatal-but-clean exits (spec §7).
func WatchSignals(flags *SignalFlags, stop <-chan struct{}) {
	ch := make(chan os.Signal, 4)
	signal.Notify(ch, syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		defer signal.Stop(ch)
		for {
			select {
			case <-stop:
				return
			case sig := <-ch:
				switch sig {
				case syscall.SIGWINCH:
					flags.Winch.Store(true)
				case syscall.SIGINT:
					flags.Interrupt.Store(true)
				case syscall.SIGTERM:
					flags.Terminate.Store(true)
				case syscall.SIGHUP:
					flags.Hangup.Store(true)
				}
			}
		}
	}()
}

// Signo returns 128+signal-number for whichever fatal flag is set, and
// ok=false if none is (spec §6 "128 + signo on fatal signals").
func (f *SignalFlags) Signo() (code int, ok bool) {
	switch {
	case f.Interrupt.Load():
		return 128 + int(syscall.SIGINT), true
	case f.Terminate.Load():
		return 128 + int(syscall.SIGTERM), true
	case f.Hangup.Load():
		return 128 + int(syscall.SIGHUP), true
	}
	return 0, false
}
