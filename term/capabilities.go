package term

import (
	"fmt"
	"io"

	"smenu/style"
)

// Caps is the closed set of terminal capability sequences spec §6
// requires (cuu1/cud1/cub1/cuf1/sc/rc) plus the ones it uses when
// present. Rather than resolve a terminfo database (unverifiable
// without running the toolchain, and every terminal smenu targets is
// an ANSI/xterm-compatible one in practice), these are the standard
// ANSI/xterm escapes the teacher's writeStyle/writeCursorPos already
// assume. No check for missing capabilities is performed: every
// method returns its fixed escape unconditionally.
type Caps struct{}

// CursorUp1/CursorDown1/CursorBack1/CursorFwd1 are the required
// single-step cursor motions (cuu1/cud1/cub1/cuf1).
func (Caps) CursorUp1() string    { return "\x1b[A" }
func (Caps) CursorDown1() string  { return "\x1b[B" }
func (Caps) CursorBack1() string  { return "\x1b[D" }
func (Caps) CursorFwd1() string   { return "\x1b[C" }

// SaveCursor/RestoreCursor are the required sc/rc pair.
func (Caps) SaveCursor() string    { return "\x1b7" }
func (Caps) RestoreCursor() string { return "\x1b8" }

// CursorUp/CursorDown/CursorBack/CursorFwd are the multi-step cuu/
// cud/cub/cuf variants, used when n > 1 to avoid n single-step writes.
func (Caps) CursorUp(n int) string   { return csiN(n, 'A') }
func (Caps) CursorDown(n int) string { return csiN(n, 'B') }
func (Caps) CursorBack(n int) string { return csiN(n, 'D') }
func (Caps) CursorFwd(n int) string  { return csiN(n, 'C') }

func csiN(n int, final byte) string {
	if n <= 0 {
		n = 1
	}
	return fmt.Sprintf("\x1b[%d%c", n, final)
}

// CursorPos is cup: absolute row/col positioning, 1-based.
func (Caps) CursorPos(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

// HPos is hpa: absolute horizontal positioning, 1-based.
func (Caps) HPos(col int) string {
	return fmt.Sprintf("\x1b[%dG", col)
}

// Reset is sgr0: clear all attributes.
func (Caps) Reset() string { return "\x1b[0m" }

// CursorNormal/CursorInvisible are cnorm/civis.
func (Caps) CursorNormal() string    { return "\x1b[?25h" }
func (Caps) CursorInvisible() string { return "\x1b[?25l" }

// EraseDisplay/EraseLine/EraseLineToCursor are ed/el/el1.
func (Caps) EraseDisplay() string      { return "\x1b[2J" }
func (Caps) EraseLine() string         { return "\x1b[K" }
func (Caps) EraseLineToCursor() string { return "\x1b[1K" }

// ScreenReverseOn/ScreenReverseOff toggle DECSCNM (whole-screen reverse
// video), the standard xterm "visual bell" flash used in place of an
// audible bell (spec §7).
func (Caps) ScreenReverseOn() string  { return "\x1b[?5h" }
func (Caps) ScreenReverseOff() string { return "\x1b[?5l" }

// Apply writes the SGR sequence for a style.Attribute: setaf/setab for
// color, then bold/dim/rev/smso/smul/sitm, in a fixed order so
// interleaved writes never corrupt the escape (spec §5's "the
// rendering path temporarily blocks the timer signal around any tputs
// sequence").
func Apply(w io.Writer, a style.Attribute) {
	if a.Fg != "" {
		io.WriteString(w, a.Fg)
	}
	if a.Bg != "" {
		io.WriteString(w, a.Bg)
	}
	if a.Bold {
		io.WriteString(w, "\x1b[1m")
	}
	if a.Dim {
		io.WriteString(w, "\x1b[2m")
	}
	if a.Reverse {
		io.WriteString(w, "\x1b[7m")
	}
	if a.Standout {
		io.WriteString(w, "\x1b[7m")
	}
	if a.Underline {
		io.WriteString(w, "\x1b[4m")
	}
	if a.Italic {
		io.WriteString(w, "\x1b[3m")
	}
}
