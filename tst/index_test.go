package tst

import (
	"reflect"
	"testing"

	"smenu/word"
)

func TestBuildIndexAndBuildDaccessIndex(t *testing.T) {
	tbl := &word.Table{Words: []*word.Word{
		{DisplayBytes: []byte("alpha"), Numbered: true, DaccessKey: "1"},
		{DisplayBytes: []byte("beta"), Numbered: true, DaccessKey: "2"},
		{DisplayBytes: []byte("alphabet")},
	}}

	idx := BuildPrefixIndex(tbl)
	got := idx.PrefixSearch([]rune("alpha"))
	want := []int{0, 2}
	if !reflect.DeepEqual(sortInts(got), want) {
		t.Errorf("got %v, want %v", got, want)
	}

	dac := BuildDaccessIndex(tbl)
	hits, ok := dac.Lookup([]rune("2"))
	if !ok || !reflect.DeepEqual(hits, []int{1}) {
		t.Errorf("got %v ok=%v, want [1] true", hits, ok)
	}
	if _, ok := dac.Lookup([]rune("3")); ok {
		t.Errorf("expected no daccess entry for unassigned key 3")
	}
}

func sortInts(s []int) []int {
	out := append([]int(nil), s...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
