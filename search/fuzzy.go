package search

import (
	"unicode"

	"smenu/word"
)

// fuzzyMatches implements spec §4.5 Fuzzy mode: case-insensitive,
// non-adjacent glyph matching. Each word is scanned directly for the
// leftmost case-insensitive subsequence equal to buffer (the same
// greedy strategy most fuzzy finders use); badness is the total gap
// between consecutive matched glyphs, and a word with badness zero
// (its matched glyphs are contiguous) is a "best match". The TST's
// equal-link chaining is exercised by substring mode's level ladder;
// fuzzy's case-fold/non-adjacency requirements don't fit a
// case-sensitive ordered tree walk, so it scans word text directly.
func fuzzyMatches(tbl *word.Table, buffer []rune) []match {
	if len(buffer) == 0 {
		return nil
	}

	lower := make([]rune, len(buffer))
	for i, r := range buffer {
		lower[i] = unicode.ToLower(r)
	}

	var out []match
	for i, w := range tbl.Words {
		positions, badness, ok := subsequenceMatch(w.Display(), lower)
		if !ok {
			continue
		}
		var bm []byte
		for _, g := range positions {
			bm = word.SetBit(bm, g)
		}
		out = append(out, match{index: i, bitmap: bm, badness: badness})
	}
	return out
}

// subsequenceMatch finds the leftmost occurrence of lower as a
// case-insensitive subsequence of s's glyphs, returning each matched
// glyph's position and the total gap (badness) between them.
func subsequenceMatch(s string, lower []rune) (positions []int, badness int, ok bool) {
	bi := 0
	lastPos := -1
	gi := 0
	for _, r := range s {
		if bi < len(lower) && unicode.ToLower(r) == lower[bi] {
			if lastPos >= 0 {
				badness += gi - lastPos - 1
			}
			positions = append(positions, gi)
			lastPos = gi
			bi++
		}
		gi++
	}
	if bi < len(lower) {
		return nil, 0, false
	}
	return positions, badness, true
}
