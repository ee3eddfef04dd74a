// Package render repaints the Viewport's window to the controlling
// terminal: a double-buffered diff writer (screen.go, grounded on the
// teacher's tui/screen.go Buffer/Cell/renderUnlocked diffing) plus the
// per-word attribute and scrollbar drawing pass (draw.go, spec §4.8).
package render

import (
	"bufio"
	"io"

	"smenu/style"
	"smenu/term"
)

// Cell is one screen position: a glyph plus the attribute set applied
// to it.
type Cell struct {
	Char rune
	Attr style.Attribute
}

// Buffer is a flat width*height grid of Cells.
type Buffer struct {
	Width, Height int
	Cells         []Cell
}

// NewBuffer allocates a blank buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Cells: make([]Cell, width*height)}
}

// Set writes a glyph at (x, y); out-of-bounds writes are silently
// dropped, matching the teacher's Buffer.Set.
func (b *Buffer) Set(x, y int, ch rune, attr style.Attribute) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Cells[y*b.Width+x] = Cell{Char: ch, Attr: attr}
}

// Get returns the cell at (x, y), or the zero Cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Cell{}
	}
	return b.Cells[y*b.Width+x]
}

func (b *Buffer) clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Char: ' '}
	}
}

// Resize grows or shrinks the buffer, preserving the overlapping
// region — the window height changes on every SIGWINCH relayout.
func (b *Buffer) Resize(width, height int) {
	next := make([]Cell, width*height)
	minW, minH := width, height
	if b.Width < minW {
		minW = b.Width
	}
	if b.Height < minH {
		minH = b.Height
	}
	for y := 0; y < minH; y++ {
		copy(next[y*width:y*width+minW], b.Cells[y*b.Width:y*b.Width+minW])
	}
	b.Width, b.Height, b.Cells = width, height, next
}

// Screen owns the front/back buffers for the window region (not the
// whole terminal — spec §4.8: "repaints exactly the lines between the
// message area and the end of the window") and the single writer that
// owns /dev/tty during the interactive phase.
type Screen struct {
	Front, Back *Buffer
	out         *bufio.Writer
	caps        term.Caps
	originRow   int // 1-based terminal row the window's first line occupies
}

// NewScreen opens a Screen writing to out, sized width x height, with
// its top-left window line anchored at terminal row originRow.
func NewScreen(out io.Writer, width, height, originRow int) *Screen {
	return &Screen{
		Front:     NewBuffer(width, height),
		Back:      NewBuffer(width, height),
		out:       bufio.NewWriterSize(out, 64*1024),
		originRow: originRow,
	}
}

// Resize replaces both buffers at the new dimensions and forces a full
// repaint by invalidating Front.
func (s *Screen) Resize(width, height, originRow int) {
	s.Front.Resize(width, height)
	s.Back.Resize(width, height)
	s.originRow = originRow
	for i := range s.Front.Cells {
		s.Front.Cells[i] = Cell{Char: 0}
	}
}

// Clear blanks the back buffer before a fresh draw pass.
func (s *Screen) Clear() { s.Back.clear() }

// Flush diffs Back against Front and writes only the changed cells,
// saving/restoring the caller's cursor position around the whole
// write (spec §4.8 steps 1 and 4), since §5 requires the renderer
// never issue a full-screen clear.
func (s *Screen) Flush() error {
	s.out.WriteString(s.caps.SaveCursor())

	w, h := s.Back.Width, s.Back.Height
	curX, curY := -1, -1
	styleActive := false
	var lastAttr style.Attribute

	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			idx := row + x
			back := s.Back.Cells[idx]
			if back == s.Front.Cells[idx] {
				continue
			}
			if curX != x || curY != y {
				s.out.WriteString(s.caps.CursorPos(s.originRow+y, x+1))
				curX, curY = x, y
			}
			if !styleActive || back.Attr != lastAttr {
				if styleActive {
					s.out.WriteString(s.caps.Reset())
				}
				term.Apply(s.out, back.Attr)
				lastAttr = back.Attr
				styleActive = true
			}
			ch := back.Char
			if ch == 0 {
				ch = ' '
			}
			s.out.WriteRune(ch)
			curX++
			s.Front.Cells[idx] = back
		}
	}
	if styleActive {
		s.out.WriteString(s.caps.Reset())
	}
	s.out.WriteString(s.caps.RestoreCursor())
	return s.out.Flush()
}
