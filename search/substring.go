package search

import (
	"strings"

	"smenu/tst"
	"smenu/word"
)

// substringMatches implements the incremental level-ladder traversal
// of spec §4.5 Substring mode: level 0 is the first-glyph-level TST
// node whose split rune equals buffer's first glyph, and each subsequent level follows
// the equal-link chain for the next glyph. Every word attached to a
// level-(len(buffer)-1) node is a hit; its bitmap marks the leftmost
// literal run equal to buffer.
func substringMatches(tbl *word.Table, tree *tst.Tree, buffer []rune) []match {
	if len(buffer) == 0 {
		return nil
	}

	lv := tst.FirstLevel(tree.Root(), buffer[0])
	for _, r := range buffer[1:] {
		lv = tst.NextLevel(lv, r)
	}

	seen := map[int]struct{}{}
	for _, n := range lv.Nodes {
		for _, i := range tst.Collect(n) {
			seen[i] = struct{}{}
		}
	}

	needle := string(buffer)
	var out []match
	for _, i := range sortedCopy(seen) {
		w := tbl.Words[i]
		idx := strings.Index(w.Display(), needle)
		if idx < 0 {
			continue
		}
		startGlyph, endGlyph := byteRangeToGlyphs(w.Display(), idx, idx+len(needle))
		var bm []byte
		for g := startGlyph; g < endGlyph; g++ {
			bm = word.SetBit(bm, g)
		}
		out = append(out, match{index: i, bitmap: bm})
	}
	return out
}

// byteRangeToGlyphs converts a [start,end) byte range in s to the
// corresponding [startGlyph,endGlyph) glyph (rune) range.
func byteRangeToGlyphs(s string, start, end int) (startGlyph, endGlyph int) {
	g := 0
	for i := range s {
		if i == start {
			startGlyph = g
		}
		if i == end {
			endGlyph = g
		}
		g++
	}
	if end == len(s) {
		endGlyph = g
	}
	return startGlyph, endGlyph
}
