package search

import (
	"strings"

	"smenu/tst"
	"smenu/word"
)

// prefixMatches walks the TST to find every word whose display form
// starts with buffer, marking the first len(buffer) glyph bits (spec
// §4.5 Prefix mode).
func prefixMatches(tbl *word.Table, tree *tst.Tree, buffer []rune) []match {
	idxs := tree.PrefixSearch(buffer)
	seen := map[int]struct{}{}
	for _, i := range idxs {
		seen[i] = struct{}{}
	}

	var out []match
	for _, i := range sortedCopy(seen) {
		w := tbl.Words[i]
		if !strings.HasPrefix(w.Display(), string(buffer)) {
			continue
		}
		var bm []byte
		for g := 0; g < len(buffer); g++ {
			bm = word.SetBit(bm, g)
		}
		out = append(out, match{index: i, bitmap: bm})
	}
	return out
}
