package tst

import "smenu/word"

// BuildDaccessIndex inserts the direct-access selector key of every
// numbered word into a fresh tree, for the O(log n) digit-stack lookup
// spec §4.6 describes.
func BuildDaccessIndex(tbl *word.Table) *Tree {
	t := New()
	for i, w := range tbl.Words {
		if !w.Numbered {
			continue
		}
		t.Insert([]rune(w.DaccessKey), i)
	}
	return t
}
