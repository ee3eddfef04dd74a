package app

import (
	"time"

	"smenu/input"
)

// Dispatch applies one decoded input event to the state, per the key
// bindings of spec §4.6. It returns true if the event requires a
// repaint (nearly every handled event does; unrecognized events are
// silently discarded per spec §4.7).
func Dispatch(a *AppState, ev input.Event, timers *Timers, now time.Time) bool {
	if a.Search.Active() {
		if handleSearchKey(a, ev, timers) {
			return true
		}
		// Keys handleSearchKey does not consume (arrows, paging,
		// Home/End, INS/DEL, Enter, Esc, control keys, space and mouse
		// events) fall through to the bindings below; other plain
		// characters extend the search buffer.
	}

	switch ev.Key {
	case input.KeyEsc:
		if a.Search.Active() {
			a.Search.Clear(a.Table)
			return true
		}
		a.Quit(1)
		return true
	case input.KeyEnter:
		if a.Search.Active() && !a.Cfg.AutoValidateSearch {
			return false
		}
		a.Quit(0)
		return true
	case input.KeyArrowLeft:
		a.Viewport.MoveHorizontal(-1)
		return true
	case input.KeyArrowRight:
		a.Viewport.MoveHorizontal(1)
		return true
	case input.KeyArrowUp:
		a.Viewport.MoveVertical(-1)
		return true
	case input.KeyArrowDown:
		a.Viewport.MoveVertical(1)
		return true
	case input.KeyPgUp:
		a.Viewport.MovePage(-1)
		return true
	case input.KeyPgDown:
		a.Viewport.MovePage(1)
		return true
	case input.KeyHome:
		a.Viewport.HomeTable()
		return true
	case input.KeyEnd:
		a.Viewport.EndTable()
		return true
	case input.KeyInsert, input.KeyDelete:
		a.Viewport.ToggleTag()
		return true
	case input.KeyMouse:
		switch ev.Mouse.Button {
		case input.MouseWheelUp:
			a.Viewport.MoveVertical(-1)
		case input.MouseWheelDown:
			a.Viewport.MoveVertical(1)
		default:
			return false
		}
		return true
	}

	if ev.Key != input.KeyChar {
		return false
	}

	if ev.Mod == input.ModCtrl {
		switch ev.Rune {
		case 'c':
			a.Quit(128 + 2) // SIGINT-equivalent abort, matches Ctrl-C binding
			return true
		case 'k':
			a.Viewport.HomeTable()
			return true
		case 'j':
			a.Viewport.EndTable()
			return true
		}
		return false
	}

	if mode, ok := searchTriggerMode(ev.Rune); ok {
		_ = mode
		a.Search.Begin(a.Cfg, ev.Rune)
		timers.ArmSearchIdle()
		return true
	}

	switch ev.Rune {
	case 'h':
		a.Viewport.MoveHorizontal(-1)
	case 'l':
		a.Viewport.MoveHorizontal(1)
	case 'j':
		a.Viewport.MoveVertical(1)
	case 'k':
		a.Viewport.MoveVertical(-1)
	case 'J':
		a.Viewport.MovePage(1)
	case 'K':
		a.Viewport.MovePage(-1)
	case 'H':
		a.Viewport.HomeLine()
	case 'L':
		a.Viewport.EndLine()
	case 't':
		a.Viewport.ToggleTag()
	case 'T':
		a.Viewport.TagAllMatching()
	case 'U':
		a.Viewport.UntagAllMatching()
	case 'q':
		a.Quit(1)
	case '?':
		a.Help = HelpOn
		timers.ArmHelp()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		timers.ArmDaccess()
		a.Viewport.PushDigit(now, byte(ev.Rune), a.Cfg.DirectAccessTimeout, a.Cfg.DirectAccessWidth)
	default:
		return false
	}
	return true
}

// searchTriggerMode reports whether r is one of the mode-selecting
// search keys (spec §4.5): '=' '^' prefix, '~' fuzzy, '*' '\'' '"'
// substring, '/' the configured default.
func searchTriggerMode(r rune) (rune, bool) {
	switch r {
	case '=', '^', '~', '*', '\'', '"', '/':
		return r, true
	}
	return 0, false
}

// handleSearchKey extends/shrinks/navigates the active search buffer.
// Returns true if it consumed the event.
func handleSearchKey(a *AppState, ev input.Event, timers *Timers) bool {
	if ev.Key == input.KeyBackspace {
		if a.Search.Shrink() {
			a.Search.Clear(a.Table)
		} else {
			a.Search.Rebuild(a.Table, a.Index)
		}
		timers.ArmSearchIdle()
		return true
	}
	if ev.Key != input.KeyChar || ev.Mod != input.ModNone {
		return false
	}
	switch ev.Rune {
	case 'n':
		navigateMatch(a, a.Search.Next(a.Viewport.Current))
		return true
	case 'N':
		navigateMatch(a, a.Search.Prev(a.Viewport.Current))
		return true
	case 's':
		navigateMatch(a, a.Search.NextBest(a.Viewport.Current))
		return true
	case 'S':
		navigateMatch(a, a.Search.PrevBest(a.Viewport.Current))
		return true
	}
	a.Message = ""
	a.Search.Extend(ev.Rune)
	a.Search.Rebuild(a.Table, a.Index)
	timers.ArmSearchIdle()
	return true
}

// navigateMatch applies the result of a match-navigation query
// (n/N/s/S). When the query returns the same word the cursor already
// sits on, there was nowhere to go: spec §7 calls for a "no match"
// bell (audible, or a cursor flicker) instead of silently doing
// nothing.
func navigateMatch(a *AppState, next int) {
	if next == a.Viewport.Current {
		a.Bell = true
		a.Message = "no match"
		return
	}
	a.Message = ""
	a.Viewport.Current = next
}
