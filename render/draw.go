package render

import (
	"smenu/config"
	"smenu/search"
	"smenu/style"
	"smenu/viewport"
	"smenu/word"
)

// leftMarginGlyph/rightMarginGlyph are the horizontal-shift indicators
// spec §4.8 step 2 requires when the window has scrolled past column
// zero, or a line continues past the right edge.
const (
	leftMarginGlyph  = '◀'
	rightMarginGlyph = '▶'
)

// helpText is the single-line key summary spec §4.6 overlays at the
// top of the window while help is on.
const helpText = "?:help  t:tag  T:tag-all  U:untag-all  =/^:prefix  ~:fuzzy  */'/\":substring  n/N:next  s/S:best  Enter:accept  q/Esc:quit"

// Draw repaints every line in the viewport's current window onto the
// back buffer: cursor/tag/search/special attributes per word, per-
// glyph match highlighting from the bitmap, margin indicators, and
// (unless disabled) the scrollbar column. When help is on, or message
// is non-empty, the top/bottom row is overlaid per spec §4.6/§4.10.
// Callers follow with Screen.Flush to commit only the changed cells.
func Draw(scr *Screen, vp *viewport.Viewport, srch *search.State, cfg *config.Config, scrollbar bool, help bool, message string) {
	scr.Clear()
	tbl := vp.Table()
	if tbl.Len() == 0 || len(tbl.FirstWordInLine) == 0 {
		return
	}

	startLine := tbl.Words[vp.Start].Line
	endLine := tbl.Words[vp.End].Line
	width := scr.Back.Width
	usable := width
	if scrollbar {
		usable--
	}

	for line := startLine; line <= endLine; line++ {
		y := line - startLine
		x := 0
		if vp.FirstColumn > 0 {
			scr.Back.Set(0, y, leftMarginGlyph, style.Attribute{Dim: true})
			x = 1
		}
		drawLine(scr, vp, tbl, srch, cfg, line, x, y, usable)
	}

	if scrollbar {
		drawScrollbar(scr, vp, tbl, width-1)
	}

	if help {
		drawOverlayLine(scr, 0, helpText, style.Attribute{Standout: true})
	}
	if message != "" {
		drawOverlayLine(scr, scr.Back.Height-1, message, style.Attribute{Standout: true})
	}
}

// drawOverlayLine paints text across row y, space-padded to the full
// buffer width, replacing whatever the normal line-drawing pass put
// there (spec §4.6's help line and §4.10's message-area countdown are
// both overlays rather than reserved rows).
func drawOverlayLine(scr *Screen, y int, text string, attr style.Attribute) {
	if y < 0 || y >= scr.Back.Height {
		return
	}
	glyphs := []rune(text)
	for x := 0; x < scr.Back.Width; x++ {
		r := ' '
		if x < len(glyphs) {
			r = glyphs[x]
		}
		scr.Back.Set(x, y, r, attr)
	}
}

func drawLine(scr *Screen, vp *viewport.Viewport, tbl *word.Table, srch *search.State, cfg *config.Config, line, x, y, usable int) {
	lo, hi := findLineBounds(tbl, line)
	if lo < 0 {
		return
	}
	overflowed := false
	for i := lo; i <= hi; i++ {
		w := tbl.Words[i]
		screenStart := w.Start - vp.FirstColumn
		screenEnd := w.End - vp.FirstColumn
		if screenEnd <= 0 {
			continue
		}
		if screenStart >= usable {
			overflowed = true
			break
		}

		glyphs := []rune(w.Rendered())
		labelGlyphs := w.LabelGlyphs()
		for gi, r := range glyphs {
			col := screenStart + gi
			if col < 0 {
				continue
			}
			if col >= usable {
				overflowed = true
				break
			}
			attr := cfg.Styles[attributeFor(w, i == vp.Current, srch, gi-labelGlyphs, gi < labelGlyphs)]
			scr.Back.Set(x+col, y, r, attr)
		}
	}
	if overflowed {
		scr.Back.Set(x+usable-1, y, rightMarginGlyph, style.Attribute{Dim: true})
	}
}

func findLineBounds(tbl *word.Table, line int) (lo, hi int) {
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

// attributeFor resolves the single preset spec §4.8 lists for a word
// at the given glyph index: tag-on-cursor (cursor on a tagged word)
// takes priority, then cursor, then plain tag, then the active search's
// match-text/match-field split (glyphs the bitmap marks get match-text,
// the rest of a matching word gets match-field), then daccess for
// numbered words, then special levels, then the plain include/exclude
// gate. glyph is relative to the searchable
// Display text (negative inside the direct-access label); inLabel
// reports whether this glyph belongs to that label, in which case the
// search split is skipped and the word's daccess/normal attribute
// shows through instead.
func attributeFor(w *word.Word, isCursor bool, srch *search.State, glyph int, inLabel bool) style.Preset {
	switch {
	case isCursor && w.Tagged:
		return style.PresetTagCursor
	case isCursor:
		return style.PresetCursor
	case w.Tagged:
		return style.PresetTag
	}
	if !inLabel && srch != nil && srch.Active() && w.Matching {
		if word.BitSet(w.Bitmap, glyph) {
			return style.PresetMatchText
		}
		return style.PresetMatchField
	}
	if w.Numbered {
		return style.PresetDaccess
	}
	switch w.SpecialLevel {
	case 1:
		return style.PresetSpecial1
	case 2:
		return style.PresetSpecial2
	case 3:
		return style.PresetSpecial3
	case 4:
		return style.PresetSpecial4
	case 5:
		return style.PresetSpecial5
	}
	if !w.IsSelectable() {
		return style.PresetExclude
	}
	return style.PresetInclude
}

// drawScrollbar draws a '^' on the top row, a 'v' on the bottom row,
// a '|' bar between them and a '#' cursor indicator in the rightmost
// column, spec §4.8 step 3. It draws no separate top or bottom tick
// marks.
func drawScrollbar(scr *Screen, vp *viewport.Viewport, tbl *word.Table, col int) {
	h := scr.Back.Height
	if h == 0 {
		return
	}
	totalLines := len(tbl.FirstWordInLine)
	if totalLines == 0 {
		return
	}
	curLine := tbl.Words[vp.Current].Line

	scr.Back.Set(col, 0, '^', style.Attribute{Dim: true})
	if h > 1 {
		scr.Back.Set(col, h-1, 'v', style.Attribute{Dim: true})
	}
	for y := 1; y < h-1; y++ {
		scr.Back.Set(col, y, '|', style.Attribute{Dim: true})
	}

	if totalLines > 1 {
		thumb := (curLine * (h - 1)) / (totalLines - 1)
		if thumb < 0 {
			thumb = 0
		}
		if thumb >= h {
			thumb = h - 1
		}
		scr.Back.Set(col, thumb, '#', style.Attribute{Reverse: true})
	}
}
