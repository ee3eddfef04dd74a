// Package search implements the incremental prefix/substring/fuzzy
// search engine of spec §4.5: a typed-character buffer drives TST
// traversal, producing a sorted set of matching word indices plus,
// for fuzzy mode, a "best matches" subset of zero-badness hits.
package search

import (
	"sort"

	"github.com/google/btree"

	"smenu/config"
	"smenu/tst"
	"smenu/word"
)

// Mode names the active search method, plus None for "not searching".
type Mode int

const (
	None Mode = iota
	Prefix
	Substring
	Fuzzy
)

// modeForKey maps the mode-selecting keys from spec §4.5 to a Mode,
// honoring the configured default for '/'.
func modeForKey(cfg *config.Config, k rune) (Mode, bool) {
	switch k {
	case '=':
		return Prefix, true
	case '^':
		return Prefix, true
	case '~':
		return Fuzzy, true
	case '*':
		return Substring, true
	case '\'', '"':
		return Substring, true
	case '/':
		return defaultMode(cfg), true
	default:
		return None, false
	}
}

func defaultMode(cfg *config.Config) Mode {
	switch cfg.DefaultSearchMode {
	case config.SearchPrefix:
		return Prefix
	case config.SearchSubstring:
		return Substring
	default:
		return Fuzzy
	}
}

// State is every mutable piece of the active search: the typed
// buffer, the current mode, the sorted matching-word set, and (fuzzy
// only) the best-match subset.
type State struct {
	Mode   Mode
	Buffer []rune

	StartingOnly bool
	EndingOnly   bool

	matching *btree.BTreeG[int]
	best     *btree.BTreeG[int]
}

func lessInt(a, b int) bool { return a < b }

// NewState returns an empty, inactive State.
func NewState() *State {
	return &State{
		matching: btree.NewG[int](32, lessInt),
		best:     btree.NewG[int](32, lessInt),
	}
}

// Active reports whether a search mode is currently engaged.
func (s *State) Active() bool { return s.Mode != None }

// Begin enters search mode for the key the user pressed, clearing any
// previous buffer. Returns false if the key does not select a mode.
func (s *State) Begin(cfg *config.Config, key rune) bool {
	mode, ok := modeForKey(cfg, key)
	if !ok {
		return false
	}
	s.Mode = mode
	s.Buffer = s.Buffer[:0]
	return true
}

// Extend appends r to the buffer.
func (s *State) Extend(r rune) { s.Buffer = append(s.Buffer, r) }

// Shrink removes the last buffer rune, reporting whether the buffer
// is now empty.
func (s *State) Shrink() bool {
	if len(s.Buffer) > 0 {
		s.Buffer = s.Buffer[:len(s.Buffer)-1]
	}
	return len(s.Buffer) == 0
}

// Clear leaves search mode entirely: clears matching/bitmap state on
// every previously-matched word, empties the match sets, and resets
// mode/buffer, per spec §4.5's "clearing the search" paragraph.
func (s *State) Clear(tbl *word.Table) {
	s.matching.Ascend(func(i int) bool {
		w := tbl.Words[i]
		w.Matching = false
		word.ClearBitmap(w.Bitmap)
		return true
	})
	s.matching.Clear(false)
	s.best.Clear(false)
	s.Mode = None
	s.Buffer = nil
}

// Matches returns the sorted matching word indices.
func (s *State) Matches() []int {
	out := make([]int, 0, s.matching.Len())
	s.matching.Ascend(func(i int) bool { out = append(out, i); return true })
	return out
}

// BestMatches returns the sorted best-match (badness-zero) indices.
func (s *State) BestMatches() []int {
	out := make([]int, 0, s.best.Len())
	s.best.Ascend(func(i int) bool { out = append(out, i); return true })
	return out
}

// Index bundles the two TST structures search needs: a prefix index
// (full words, anchored at glyph 0) and a substring index (every
// suffix of every word), built once per word-table build or rebuild.
type Index struct {
	Prefix    *tst.Tree
	Substring *tst.Tree
}

// BuildIndex constructs both trees for tbl.
func BuildIndex(tbl *word.Table) *Index {
	return &Index{
		Prefix:    tst.BuildPrefixIndex(tbl),
		Substring: tst.BuildSubstringIndex(tbl),
	}
}

// Rebuild re-runs the active mode's matcher against tbl using the
// current buffer, replacing the matching/best sets and every touched
// word's Matching flag and Bitmap. Call after every buffer edit.
func (s *State) Rebuild(tbl *word.Table, idx *Index) {
	old := s.Matches()
	for _, i := range old {
		w := tbl.Words[i]
		w.Matching = false
		word.ClearBitmap(w.Bitmap)
	}
	s.matching.Clear(false)
	s.best.Clear(false)

	if len(s.Buffer) == 0 {
		return
	}

	var hits []match
	switch s.Mode {
	case Prefix:
		hits = prefixMatches(tbl, idx.Prefix, s.Buffer)
	case Substring:
		hits = substringMatches(tbl, idx.Substring, s.Buffer)
	case Fuzzy:
		hits = fuzzyMatches(tbl, s.Buffer)
	}

	for _, h := range hits {
		w := tbl.Words[h.index]
		starting, ending := edgeFlags(w, h.bitmap)
		if s.StartingOnly && !starting {
			continue
		}
		if s.EndingOnly && !ending {
			continue
		}
		w.Matching = true
		w.Bitmap = h.bitmap
		s.matching.ReplaceOrInsert(h.index)
		if s.Mode == Fuzzy && h.badness == 0 {
			s.best.ReplaceOrInsert(h.index)
		}
	}
}

// match is the intermediate result a mode matcher produces before
// State.Rebuild filters it by starting/ending-only and records it.
type match struct {
	index   int
	bitmap  []byte
	badness int
}

// edgeFlags reports whether the leftmost/rightmost set bit in bitmap
// lands on the first/last non-blank glyph of w's display text — the
// "starting-only"/"ending-only" restriction from spec §4.5.
func edgeFlags(w *word.Word, bitmap []byte) (starting, ending bool) {
	first, last := firstLastNonBlank(w.Display())
	if first < 0 {
		return false, false
	}
	return word.BitSet(bitmap, first), word.BitSet(bitmap, last)
}

func firstLastNonBlank(s string) (first, last int) {
	first, last = -1, -1
	i := 0
	for _, r := range s {
		if r != ' ' && r != '\t' {
			if first < 0 {
				first = i
			}
			last = i
		}
		i++
	}
	return first, last
}

// Next moves current to the nearest matching word strictly after it
// (n/N navigation per spec §4.5), wrapping is not performed: returns
// current unchanged if there is no next match.
func (s *State) Next(current int) int { return nearest(s.matching, current, true) }

// Prev moves current to the nearest matching word strictly before it.
func (s *State) Prev(current int) int { return nearest(s.matching, current, false) }

// NextBest is Next restricted to best_matches, falling back to the
// full matching set when empty (fuzzy falls back to full matches
// otherwise, per spec §4.5).
func (s *State) NextBest(current int) int {
	if s.best.Len() == 0 {
		return s.Next(current)
	}
	return nearest(s.best, current, true)
}

// PrevBest mirrors NextBest in the backward direction.
func (s *State) PrevBest(current int) int {
	if s.best.Len() == 0 {
		return s.Prev(current)
	}
	return nearest(s.best, current, false)
}

func nearest(tree *btree.BTreeG[int], current int, forward bool) int {
	found := current
	ok := false
	if forward {
		tree.AscendGreaterOrEqual(current+1, func(i int) bool {
			found, ok = i, true
			return false
		})
	} else {
		tree.DescendLessOrEqual(current-1, func(i int) bool {
			found, ok = i, true
			return false
		})
	}
	if !ok {
		return current
	}
	return found
}

// sortedCopy is a small helper used by the mode matchers to guarantee
// matching_words-shaped output stays deterministic even though map
// iteration (used internally by some modes to dedupe) is not.
func sortedCopy(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for i := range m {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
