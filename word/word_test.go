package word

import "testing"

func TestSelectableResolved(t *testing.T) {
	cases := map[Selectable]Selectable{
		SoftIncluded: Included,
		SoftExcluded: Excluded,
		Included:     Included,
		Excluded:     Excluded,
	}
	for in, want := range cases {
		if got := in.Resolved(); got != want {
			t.Errorf("Resolved(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestBitmapSetAndGrow(t *testing.T) {
	var bm []byte
	bm = SetBit(bm, 0)
	bm = SetBit(bm, 9)
	if !BitSet(bm, 0) || !BitSet(bm, 9) {
		t.Fatalf("expected bits 0 and 9 set, got %v", bm)
	}
	if BitSet(bm, 1) || BitSet(bm, 8) {
		t.Errorf("unexpected bit set in %v", bm)
	}
	if len(bm) != 2 {
		t.Errorf("expected 2 bytes for bit 9, got %d", len(bm))
	}
}

func TestClearBitmap(t *testing.T) {
	bm := SetBit(nil, 3)
	ClearBitmap(bm)
	if BitSet(bm, 3) {
		t.Errorf("expected bit 3 cleared")
	}
}

func TestTableSelectableNavigation(t *testing.T) {
	tbl := &Table{Words: []*Word{
		{Selectable: Excluded},
		{Selectable: Included},
		{Selectable: Excluded},
		{Selectable: Included},
	}}
	if got := tbl.FirstSelectable(); got != 1 {
		t.Errorf("FirstSelectable() = %d, want 1", got)
	}
	if got := tbl.LastSelectable(); got != 3 {
		t.Errorf("LastSelectable() = %d, want 3", got)
	}
	if got := tbl.NextSelectable(1, 1); got != 3 {
		t.Errorf("NextSelectable(1,+1) = %d, want 3", got)
	}
	if got := tbl.NextSelectable(3, 1); got != -1 {
		t.Errorf("NextSelectable(3,+1) = %d, want -1", got)
	}
}

func TestEmitPrefersOriginalBytes(t *testing.T) {
	w := &Word{DisplayBytes: []byte("disp")}
	if string(w.Emit()) != "disp" {
		t.Fatalf("expected display bytes when no original set")
	}
	w.OriginalBytes = []byte("orig")
	if string(w.Emit()) != "orig" {
		t.Fatalf("expected original bytes once set")
	}
}
