package word

import "github.com/mattn/go-runewidth"

// zeroWidthOverride lists code points go-runewidth's default tables do
// not always treat as width-zero but that must render as zero-width so
// glyph counts match what the original's wcswidth-based accounting
// produces (spec §9 Design Notes).
var zeroWidthOverride = map[rune]bool{
	0x200D: true, // zero-width joiner
	0xFE0F: true, // variation selector-16 (emoji presentation)
	0x20E3: true, // combining enclosing keycap
}

// RuneWidth returns the display width of a single rune, honoring the
// zero-width overrides before delegating to go-runewidth.
func RuneWidth(r rune) int {
	if zeroWidthOverride[r] {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// StringWidth sums RuneWidth over every rune in s; this is the glyph
// display width used for layout packing (distinct from GlyphCount,
// which counts glyphs rather than columns).
func StringWidth(s string) int {
	total := 0
	for _, r := range s {
		total += RuneWidth(r)
	}
	return total
}

// GlyphCount returns the number of Unicode code points in s. Invalid
// UTF-8 has already been normalized to a single substitute rune per
// sequence by the reader, so utf8.RuneCountInString-style accounting
// (one glyph per decoded rune) matches the original's behavior of
// substituting once per malformed sequence rather than once per byte.
func GlyphCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
