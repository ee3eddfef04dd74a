// Package input decodes raw bytes read from the controlling terminal
// into the closed set of key and mouse events spec §4.7 describes,
// adapting the teacher's tui/key.go and tui/input.go ESC/CSI/SS3
// decode loop.
package input

// Key names a special key or a plain character event.
type Key int

const (
	KeyNull Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeySpace

	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft

	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyDelete
	KeyInsert

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyChar is a regular rune; KeyMouse is a mouse report.
	KeyChar
	KeyMouse
)

// Mod is a bitset of modifier keys.
type Mod int

const (
	ModNone  Mod = 0
	ModCtrl  Mod = 1 << 0
	ModAlt   Mod = 1 << 1
	ModShift Mod = 1 << 2
)

// Event is one decoded input event: either a key or a mouse report.
type Event struct {
	Key   Key
	Rune  rune
	Mod   Mod
	Mouse Mouse
}
