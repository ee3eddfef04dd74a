package search

import (
	"reflect"
	"testing"

	"smenu/config"
	"smenu/word"
)

func tableOf(words ...string) *word.Table {
	tbl := &word.Table{}
	for i, w := range words {
		tbl.Words = append(tbl.Words, &word.Word{
			DisplayBytes: []byte(w),
			GlyphCount:   len([]rune(w)),
			Selectable:   word.Included,
			Index:        i,
		})
	}
	return tbl
}

func TestPrefixModeMarksMatches(t *testing.T) {
	cfg := config.Default()
	tbl := tableOf("apple", "ant", "bee")
	idx := BuildIndex(tbl)

	s := NewState()
	s.Begin(&cfg, '=')
	s.Extend('a')
	s.Rebuild(tbl, idx)

	if got := s.Matches(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("got %v, want [0 1]", got)
	}
	if !tbl.Words[0].Matching || !tbl.Words[1].Matching {
		t.Errorf("expected words 0 and 1 flagged matching")
	}
	if tbl.Words[2].Matching {
		t.Errorf("word 2 should not match")
	}
}

func TestClearResetsMatchingAndBitmaps(t *testing.T) {
	cfg := config.Default()
	tbl := tableOf("apple", "ant", "bee")
	idx := BuildIndex(tbl)

	s := NewState()
	s.Begin(&cfg, '=')
	s.Extend('a')
	s.Rebuild(tbl, idx)
	s.Clear(tbl)

	if s.Active() {
		t.Errorf("expected search inactive after Clear")
	}
	for i, w := range tbl.Words {
		if w.Matching {
			t.Errorf("word %d still flagged matching after Clear", i)
		}
		if word.BitSet(w.Bitmap, 0) {
			t.Errorf("word %d bitmap not cleared", i)
		}
	}
	if len(s.Matches()) != 0 {
		t.Errorf("expected empty match set after Clear")
	}
}

func TestFuzzyBestMatchesContiguousOnly(t *testing.T) {
	cfg := config.Default()
	tbl := tableOf("aunt", "ant", "bee")
	idx := BuildIndex(tbl)

	s := NewState()
	s.Begin(&cfg, '/') // default mode is fuzzy
	s.Extend('a')
	s.Extend('n')
	s.Rebuild(tbl, idx)

	matches := s.Matches()
	if !reflect.DeepEqual(matches, []int{0, 1}) {
		t.Fatalf("got matches %v, want [0 1] (aunt via a..n is non-contiguous, ant is contiguous)", matches)
	}
	best := s.BestMatches()
	if !reflect.DeepEqual(best, []int{1}) {
		t.Errorf("got best %v, want [1] (only ant has badness 0)", best)
	}
}

func TestSubstringMode(t *testing.T) {
	cfg := config.Default()
	tbl := tableOf("banana", "orange", "grape")
	idx := BuildIndex(tbl)

	s := NewState()
	s.Begin(&cfg, '*')
	s.Extend('a')
	s.Extend('n')
	s.Rebuild(tbl, idx)

	got := s.Matches()
	if !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("got %v, want [0 1]", got)
	}
}

func TestNextPrevNavigation(t *testing.T) {
	cfg := config.Default()
	tbl := tableOf("a1", "b", "a2", "c", "a3")
	idx := BuildIndex(tbl)

	s := NewState()
	s.Begin(&cfg, '=')
	s.Extend('a')
	s.Rebuild(tbl, idx)

	if got := s.Next(0); got != 2 {
		t.Errorf("Next(0) = %d, want 2", got)
	}
	if got := s.Next(2); got != 4 {
		t.Errorf("Next(2) = %d, want 4", got)
	}
	if got := s.Next(4); got != 4 {
		t.Errorf("Next(4) = %d, want 4 (no further match)", got)
	}
	if got := s.Prev(4); got != 2 {
		t.Errorf("Prev(4) = %d, want 2", got)
	}
}
