// Package layout positions every Word on a line and horizontal span,
// the way tui.LayoutNode.Measure walks a widget tree computing child
// geometry — here flattened to a single pass over a word sequence
// instead of a nested box tree, since smenu lays out one flat run of
// tokens rather than arbitrary nested containers.
package layout

import (
	"smenu/config"
	"smenu/word"
)

// Result carries the window geometry the renderer and viewport need in
// addition to what's written onto each Word.
type Result struct {
	MaxWidth int // widest line, used by "center" mode
	Offset   int // left margin when centering
	Lines    int // total logical line count
}

// Build assigns Line/Start/End to every word in tbl and rebuilds
// tbl.LineOf/FirstWordInLine, per the four modes in spec §4.4. It is
// idempotent: calling it twice over an unchanged table yields
// identical arrays (spec §8's layout round-trip law), since it always
// recomputes from scratch rather than accumulating state.
func Build(cfg *config.Config, tbl *word.Table, termCols int) Result {
	switch cfg.LayoutMode {
	case config.LayoutColumn:
		return buildColumnar(cfg, tbl, termCols, true)
	case config.LayoutLine:
		return buildColumnar(cfg, tbl, termCols, false)
	case config.LayoutTab:
		return buildTab(cfg, tbl, termCols)
	default:
		return buildFreeFlow(cfg, tbl, termCols)
	}
}

const marginCols = 2 // reserve for the scrollbar + left-shift indicator

func usableWidth(termCols int) int {
	w := termCols - marginCols
	if w < 1 {
		w = 1
	}
	return w
}

// buildFreeFlow packs words with a single space gutter, wrapping to a
// new line whenever the next word would cross the usable width.
func buildFreeFlow(cfg *config.Config, tbl *word.Table, termCols int) Result {
	width := usableWidth(termCols)
	line, col := 0, 0
	maxWidth := 0

	for _, w := range tbl.Words {
		wd := word.StringWidth(w.Rendered())
		if wd > width {
			labelWidth := word.StringWidth(string(w.LabelBytes))
			avail := width - labelWidth
			if avail < 0 {
				avail = 0
			}
			w.DisplayBytes = truncateToWidth(w.DisplayBytes, avail)
			wd = word.StringWidth(w.Rendered())
		}
		if col > 0 && col+1+wd > width {
			line++
			col = 0
		}
		if col > 0 {
			col++ // gutter space
		}
		w.Line = line
		w.Start = col
		w.End = col + wd
		col += wd
		if w.End > maxWidth {
			maxWidth = w.End
		}
	}

	finishLines(tbl)
	return Result{MaxWidth: maxWidth, Offset: centerOffset(cfg, termCols, maxWidth), Lines: len(tbl.FirstWordInLine)}
}

// buildColumnar implements both Column mode (pad=true) and Line mode
// (pad=false): words keep their record's structure (a new line starts
// after a word flagged IsLast) and, when padding, every column is
// widened to its own max width with a gutter glyph between columns.
func buildColumnar(cfg *config.Config, tbl *word.Table, termCols int, pad bool) Result {
	width := usableWidth(termCols)
	colWidths := columnWidths(tbl)
	gutter := gutterGlyph(cfg, 0)
	if pad && cfg.Wide {
		stretchColumns(colWidths, width, gutter)
	}

	line, col := 0, 0
	x := 0
	maxWidth := 0
	for _, w := range tbl.Words {
		wd := word.StringWidth(w.Rendered())
		target := wd
		if pad {
			target = colWidths[w.Column]
		}
		if x > 0 {
			x += word.StringWidth(gutter)
		}
		w.Line = line
		w.Start = x
		w.End = x + wd
		if w.End > width {
			w.End = width
		}
		x += target
		if x > maxWidth {
			maxWidth = x
		}
		col++
		if w.IsLast {
			line++
			col = 0
			x = 0
		}
	}

	finishLines(tbl)
	return Result{MaxWidth: maxWidth, Offset: centerOffset(cfg, termCols, maxWidth), Lines: len(tbl.FirstWordInLine)}
}

// buildTab behaves like free-flow but always breaks on IsLast and
// additionally honors an optional MaxCols-per-line cap.
func buildTab(cfg *config.Config, tbl *word.Table, termCols int) Result {
	width := usableWidth(termCols)
	line, col, x := 0, 0, 0
	maxWidth := 0

	for _, w := range tbl.Words {
		wd := word.StringWidth(w.Rendered())
		if x > 0 && (x+1+wd > width || (cfg.MaxCols > 0 && col >= cfg.MaxCols)) {
			line++
			col, x = 0, 0
		}
		if x > 0 {
			x++
		}
		w.Line = line
		w.Start = x
		w.End = x + wd
		x += wd
		col++
		if x > maxWidth {
			maxWidth = x
		}
		if w.IsLast {
			line++
			col, x = 0, 0
		}
	}

	finishLines(tbl)
	return Result{MaxWidth: maxWidth, Offset: centerOffset(cfg, termCols, maxWidth), Lines: len(tbl.FirstWordInLine)}
}

// columnWidths returns, per record-column, the widest word's display
// width — the "two parallel arrays" spec §4.3 describes collapsed to
// one, since byte-length padding is a rendering detail the renderer
// recomputes from DisplayBytes directly.
func columnWidths(tbl *word.Table) map[int]int {
	widths := map[int]int{}
	for _, w := range tbl.Words {
		wd := word.StringWidth(w.Rendered())
		if wd > widths[w.Column] {
			widths[w.Column] = wd
		}
	}
	return widths
}

// stretchColumns grows every column by the same equal share of the
// slack so the gutter-separated row fills the usable terminal width, implementing
// spec §4.4's "Wide" mode ("stretches all columns to the terminal
// width when feasible"). A no-op when the columns already fill or
// overflow the width.
func stretchColumns(colWidths map[int]int, usable int, gutter string) {
	if len(colWidths) == 0 {
		return
	}
	gutterTotal := word.StringWidth(gutter) * (len(colWidths) - 1)
	total := 0
	for _, w := range colWidths {
		total += w
	}
	slack := usable - gutterTotal - total
	share := slack / len(colWidths)
	if share <= 0 {
		return
	}
	for c := range colWidths {
		colWidths[c] += share
	}
}

func gutterGlyph(cfg *config.Config, cycle int) string {
	if len(cfg.ColumnGutters) == 0 {
		return "|"
	}
	return cfg.ColumnGutters[cycle%len(cfg.ColumnGutters)]
}

// finishLines rebuilds tbl.LineOf and tbl.FirstWordInLine from the
// Line field already written onto every word.
func finishLines(tbl *word.Table) {
	tbl.LineOf = make([]int, len(tbl.Words))
	tbl.FirstWordInLine = tbl.FirstWordInLine[:0]
	seen := map[int]bool{}
	for i, w := range tbl.Words {
		tbl.LineOf[i] = w.Line
		if !seen[w.Line] {
			seen[w.Line] = true
			tbl.FirstWordInLine = append(tbl.FirstWordInLine, i)
		}
	}
}

// centerOffset computes win.offset per spec §4.4's "center" mode,
// returning 0 when the computed offset would be non-positive or
// centering is off.
func centerOffset(cfg *config.Config, termCols, maxWidth int) int {
	if !cfg.Center {
		return 0
	}
	off := (termCols - marginCols - maxWidth) / 2
	if off < 0 {
		return 0
	}
	return off
}

// truncateToWidth cuts s down to fit within width display columns,
// per spec §8's "word wider than term_cols-2 is truncated at layout
// time" boundary behavior.
func truncateToWidth(s []byte, width int) []byte {
	out := make([]byte, 0, len(s))
	col := 0
	for _, r := range string(s) {
		w := word.RuneWidth(r)
		if col+w > width {
			break
		}
		out = append(out, string(r)...)
		col += w
	}
	return out
}
