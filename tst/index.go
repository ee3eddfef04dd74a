package tst

import "smenu/word"

// BuildPrefixIndex inserts each word's full display glyphs, anchored
// at its first glyph — the index Prefix mode walks, since it only
// ever needs words whose start matches the buffer.
func BuildPrefixIndex(tbl *word.Table) *Tree {
	t := New()
	for i, w := range tbl.Words {
		t.Insert([]rune(w.Display()), i)
	}
	return t
}

// BuildSubstringIndex inserts every suffix of each word's display
// glyphs, so the level-ladder traversal in Substring mode can find the
// buffer starting at any glyph position, not just the word's first.
func BuildSubstringIndex(tbl *word.Table) *Tree {
	t := New()
	for i, w := range tbl.Words {
		runes := []rune(w.Display())
		for start := range runes {
			t.Insert(runes[start:], i)
		}
	}
	return t
}
