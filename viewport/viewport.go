// Package viewport implements the cursor and scrolling window over a
// word.Table — spec §4.6's movement rules, tagging, and the
// direct-access digit stack.
package viewport

import (
	"time"

	"smenu/tst"
	"smenu/word"
)

// Viewport holds the cursor and the visible window over tbl.
type Viewport struct {
	tbl *word.Table

	Current     int
	FirstColumn int

	// Window bounds: the first and last word index currently visible.
	Start, End int
	MaxLines   int
	TermCols   int

	TagMode  bool
	PinMode  bool
	AutoTag  bool
	tagOrder int

	daccess      *tst.Tree
	digitStack   []byte
	digitDeadline time.Time
}

// New builds a Viewport positioned on the first selectable word.
func New(tbl *word.Table, maxLines, termCols int) *Viewport {
	v := &Viewport{tbl: tbl, MaxLines: maxLines, TermCols: termCols}
	v.Current = tbl.FirstSelectable()
	v.recomputeWindow()
	return v
}

// SetDaccessIndex installs the direct-access TST used by digit entry.
func (v *Viewport) SetDaccessIndex(t *tst.Tree) { v.daccess = t }

func (v *Viewport) word(i int) *word.Word { return v.tbl.Words[i] }

// Table exposes the underlying word table for read-only consumers
// (the renderer, the output emitter).
func (v *Viewport) Table() *word.Table { return v.tbl }

// WordAt returns the word at table index i, for callers outside the
// package (e.g. the renderer) that need read access without a second
// copy of the table reference.
func (v *Viewport) WordAt(i int) *word.Word { return v.tbl.Words[i] }

// MoveHorizontal implements h/l: one selectable word left (dir=-1) or
// right (dir=+1), scanning past non-selectable words, then slides
// FirstColumn so the new current word is fully visible.
func (v *Viewport) MoveHorizontal(dir int) {
	next := v.tbl.NextSelectable(v.Current, dir)
	if next < 0 {
		return
	}
	v.Current = next
	v.ensureColumnVisible()
	v.recomputeWindow()
}

func (v *Viewport) ensureColumnVisible() {
	w := v.word(v.Current)
	usable := v.TermCols - 3
	if usable < 1 {
		usable = 1
	}
	if w.Start < v.FirstColumn {
		v.FirstColumn = w.Start
	}
	if w.End-v.FirstColumn >= usable {
		v.FirstColumn = w.End - usable
	}
	if v.FirstColumn < 0 {
		v.FirstColumn = 0
	}
}

// MoveVertical implements j/k (dir=+1/-1): move one line, choosing the
// rightmost word on the destination line whose Start <= source.Start,
// falling back to the nearest selectable neighbor on that line.
func (v *Viewport) MoveVertical(dir int) {
	v.moveLines(dir, 1)
}

// MovePage implements PgUp/PgDn: move MaxLines lines at once, walking
// further in the same direction if the destination line set has no
// selectable word.
func (v *Viewport) MovePage(dir int) {
	v.moveLines(dir, v.MaxLines)
}

func (v *Viewport) moveLines(dir, count int) {
	srcLine := v.word(v.Current).Line
	srcStart := v.word(v.Current).Start

	line := srcLine
	for step := 0; step < count; step++ {
		line += dir
	}

	for {
		if line < 0 || line >= len(v.tbl.FirstWordInLine) {
			return
		}
		if target := v.bestOnLine(line, srcStart); target >= 0 {
			v.Current = target
			v.ensureColumnVisible()
			v.recomputeWindow()
			return
		}
		line += dir
	}
}

// bestOnLine picks the rightmost word on line whose Start <= srcStart;
// if that word isn't selectable, it scans backward then forward on
// the same line for the nearest selectable one. Returns -1 if the
// line has no selectable word at all.
func (v *Viewport) bestOnLine(line, srcStart int) int {
	lo, hi := lineBounds(v.tbl, line)
	if lo < 0 {
		return -1
	}

	best := -1
	for i := lo; i <= hi; i++ {
		if v.word(i).Start <= srcStart {
			best = i
		}
	}
	if best < 0 {
		best = lo
	}

	if v.word(best).IsSelectable() {
		return best
	}
	for i := best; i >= lo; i-- {
		if v.word(i).IsSelectable() {
			return i
		}
	}
	for i := best + 1; i <= hi; i++ {
		if v.word(i).IsSelectable() {
			return i
		}
	}
	return -1
}

func lineBounds(tbl *word.Table, line int) (lo, hi int) {
	if line < 0 || line >= len(tbl.FirstWordInLine) {
		return -1, -1
	}
	lo = tbl.FirstWordInLine[line]
	if line+1 < len(tbl.FirstWordInLine) {
		hi = tbl.FirstWordInLine[line+1] - 1
	} else {
		hi = len(tbl.Words) - 1
	}
	return lo, hi
}

// HomeLine/EndLine implement H/L: jump to the first/last selectable
// word of the current line.
func (v *Viewport) HomeLine() { v.jumpWithinLine(true) }
func (v *Viewport) EndLine()  { v.jumpWithinLine(false) }

func (v *Viewport) jumpWithinLine(first bool) {
	lo, hi := lineBounds(v.tbl, v.word(v.Current).Line)
	if lo < 0 {
		return
	}
	if first {
		for i := lo; i <= hi; i++ {
			if v.word(i).IsSelectable() {
				v.Current = i
				break
			}
		}
	} else {
		for i := hi; i >= lo; i-- {
			if v.word(i).IsSelectable() {
				v.Current = i
				break
			}
		}
	}
	v.ensureColumnVisible()
	v.recomputeWindow()
}

// HomeTable/EndTable implement Shift-Home/Shift-End (Ctrl-K/Ctrl-J):
// jump to the first/last selectable word of the whole table.
func (v *Viewport) HomeTable() {
	if i := v.tbl.FirstSelectable(); i >= 0 {
		v.Current = i
		v.ensureColumnVisible()
		v.recomputeWindow()
	}
}

func (v *Viewport) EndTable() {
	if i := v.tbl.LastSelectable(); i >= 0 {
		v.Current = i
		v.ensureColumnVisible()
		v.recomputeWindow()
	}
}

// recomputeWindow slides Start/End so Current stays within the
// MaxLines-tall window, per spec §8 invariant 2.
func (v *Viewport) recomputeWindow() {
	if v.Current < 0 || len(v.tbl.FirstWordInLine) == 0 {
		return
	}
	curLine := v.word(v.Current).Line
	startLine := v.word(v.Start).Line
	if v.Start > v.Current || curLine < startLine {
		startLine = curLine
	} else if curLine >= startLine+v.MaxLines {
		startLine = curLine - v.MaxLines + 1
	}
	if startLine < 0 {
		startLine = 0
	}
	endLine := startLine + v.MaxLines - 1
	if endLine >= len(v.tbl.FirstWordInLine) {
		endLine = len(v.tbl.FirstWordInLine) - 1
	}

	lo, _ := lineBounds(v.tbl, startLine)
	_, hi := lineBounds(v.tbl, endLine)
	v.Start, v.End = lo, hi
}
