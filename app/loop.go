package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"smenu/config"
	"smenu/input"
	"smenu/layout"
	"smenu/output"
	"smenu/render"
	"smenu/search"
	"smenu/term"
	"smenu/tst"
	"smenu/viewport"
	"smenu/word"
)

// Run drives the interactive session end to end: fatal pre-checks,
// terminal setup, the main event loop, and cleanup/emission on every
// exit path, per spec §4.10/§5/§7. It returns the process exit code
// (spec §6: 0 success, 1 empty/no-selectable/abort/option-error,
// 128+signo on a fatal signal).
func Run(cfg *config.Config, tbl *word.Table, realStdout io.Writer) int {
	if tbl.Len() == 0 {
		fmt.Fprintln(os.Stderr, "smenu: empty input")
		return 1
	}
	if tbl.FirstSelectable() < 0 {
		fmt.Fprintln(os.Stderr, "smenu: no selectable word")
		return 1
	}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "smenu: open /dev/tty"))
		return 1
	}
	defer tty.Close()

	cols, rows, err := term.Size(tty)
	if err != nil {
		cols, rows = 80, 24
	}
	windowHeight := cfg.WindowHeight
	if windowHeight <= 0 || windowHeight > rows {
		windowHeight = rows
	}

	layout.Build(cfg, tbl, cols)

	old, err := term.EnableRaw(tty)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "smenu: enable raw mode"))
		return 1
	}
	flags := &SignalFlags{}
	cleanup := func() {
		term.Restore(tty, old)
		var c term.Caps
		io.WriteString(tty, c.CursorNormal())
		if cfg.CleanOnExit {
			io.WriteString(tty, c.EraseLine())
		}
		if flags.Interrupt.Load() && cfg.InterruptString != "" {
			io.WriteString(tty, cfg.InterruptString)
		}
		io.WriteString(tty, "\r\n")
	}
	defer cleanup()

	vp := viewport.New(tbl, windowHeight, cols)
	vp.TagMode = cfg.TagMode
	vp.PinMode = cfg.PinMode
	vp.AutoTag = cfg.AutoTag
	if cfg.DirectAccessMode != config.DirectAccessNone {
		vp.SetDaccessIndex(tst.BuildDaccessIndex(tbl))
	}

	idx := search.BuildIndex(tbl)
	a := NewAppState(cfg, tbl, vp, idx)

	stop := make(chan struct{})
	WatchSignals(flags, stop)
	defer close(stop)

	events := input.Start(tty, stop)
	timers := NewTimers(cfg.TickInterval, cfg.HelpTimeout, cfg.DirectAccessTimeout, cfg.SearchIdleTimeout, cfg.ResizeDebounce)

	scr := render.NewScreen(tty, cols, windowHeight, 1)
	var c term.Caps
	io.WriteString(tty, c.CursorInvisible())

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	var userTimeout *time.Timer
	var secTicker *time.Ticker
	if cfg.TimeoutMode != config.TimeoutNone && cfg.TimeoutSeconds > 0 {
		userTimeout = time.NewTimer(time.Duration(cfg.TimeoutSeconds) * time.Second)
		defer userTimeout.Stop()
		secTicker = time.NewTicker(time.Second)
		defer secTicker.Stop()
		a.Message = fmt.Sprintf("timeout in %ds", a.TimeoutSecs)
	}

	render.Draw(scr, a.Viewport, a.Search, cfg, true, a.Help == HelpOn, a.Message)
	scr.Flush()

	for !a.Done {
		if code, ok := flags.Signo(); ok {
			a.Quit(code)
			break
		}

		var timeoutFired <-chan time.Time
		if userTimeout != nil {
			timeoutFired = userTimeout.C
		}
		var secFired <-chan time.Time
		if secTicker != nil {
			secFired = secTicker.C
		}

		select {
		case <-ticker.C:
			handleTick(a, timers, flags, cols, rows, scr, &windowHeight)
		case <-secFired:
			if a.TimeoutSecs > 0 {
				a.TimeoutSecs--
			}
			a.Message = fmt.Sprintf("timeout in %ds", a.TimeoutSecs)
		case <-timeoutFired:
			a.Quit(0)
			emitOrSkip(realStdout, cfg, a, a.Viewport)
			return 0
		case ev, ok := <-events:
			if !ok {
				a.Quit(1)
				break
			}
			if Dispatch(a, ev, timers, time.Now()) {
				ringBell(a, cfg, tty)
				render.Draw(scr, a.Viewport, a.Search, cfg, true, a.Help == HelpOn, a.Message)
				scr.Flush()
			}
			continue
		}
		render.Draw(scr, a.Viewport, a.Search, cfg, true, a.Help == HelpOn, a.Message)
		scr.Flush()
	}

	if code, ok := flags.Signo(); ok {
		return code
	}
	if a.ExitCode != 0 {
		return a.ExitCode
	}
	emitOrSkip(realStdout, cfg, a, a.Viewport)
	return 0
}

func emitOrSkip(realStdout io.Writer, cfg *config.Config, a *AppState, vp *viewport.Viewport) {
	if err := output.EmitSelection(realStdout, cfg, vp); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "smenu: write selection"))
	}
}

// ringBell gives the no-match feedback spec §7 requires: an audible
// bell if configured, otherwise a brief reverse-video screen flicker.
func ringBell(a *AppState, cfg *config.Config, tty *os.File) {
	if !a.Bell {
		return
	}
	a.Bell = false
	var c term.Caps
	if cfg.AudibleBell {
		io.WriteString(tty, "\a")
		return
	}
	io.WriteString(tty, c.ScreenReverseOn())
	time.Sleep(200 * time.Millisecond)
	io.WriteString(tty, c.ScreenReverseOff())
}

// handleTick advances the timer counters and applies whichever ones
// just expired: the help overlay reverts, the direct-access digit
// stack resets, idle search mode clears, and a debounced resize
// triggers a full relayout (spec §4.10's three state machines).
func handleTick(a *AppState, timers *Timers, flags *SignalFlags, cols, rows int, scr *render.Screen, windowHeight *int) {
	if flags.Winch.Load() {
		flags.Winch.Store(false)
		a.Resize = ResizeDirty
		timers.ArmResize()
	}

	exp := timers.Tick()
	if exp.Help {
		a.Help = HelpOff
	}
	if exp.Daccess {
		a.Viewport.DigitTimedOut(time.Now())
	}
	if exp.SearchIdle && a.Search.Active() {
		a.Search.Clear(a.Table)
	}
	if exp.Resize && a.Resize == ResizeDirty {
		relayout(a, cols, rows, scr, windowHeight)
		a.Resize = ResizeIdle
	}
}

// relayout rebuilds the layout and search index after a terminal
// resize. The search buffer is kept and its matches are rebuilt after
// relayout; the viewport is recreated, so the cursor returns to the
// first selectable word rather than staying on the previous one.
func relayout(a *AppState, cols, rows int, scr *render.Screen, windowHeight *int) {
	layout.Build(a.Cfg, a.Table, cols)
	if a.Cfg.WindowHeight > 0 && a.Cfg.WindowHeight <= rows {
		*windowHeight = a.Cfg.WindowHeight
	} else {
		*windowHeight = rows
	}
	a.Viewport = viewport.New(a.Table, *windowHeight, cols)
	a.Viewport.TagMode = a.Cfg.TagMode
	a.Viewport.PinMode = a.Cfg.PinMode
	a.Viewport.AutoTag = a.Cfg.AutoTag

	a.Index = search.BuildIndex(a.Table)
	if a.Search.Active() {
		a.Search.Rebuild(a.Table, a.Index)
	}
	scr.Resize(cols, *windowHeight, 1)
}
