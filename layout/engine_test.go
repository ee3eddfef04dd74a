package layout

import (
	"testing"

	"smenu/config"
	"smenu/word"
)

func words(strs ...string) *word.Table {
	tbl := &word.Table{}
	for i, s := range strs {
		tbl.Words = append(tbl.Words, &word.Word{
			DisplayBytes: []byte(s),
			GlyphCount:   len([]rune(s)),
			Selectable:   word.Included,
			Index:        i,
		})
	}
	if n := len(tbl.Words); n > 0 {
		tbl.Words[n-1].IsLast = true
	}
	return tbl
}

func TestFreeFlowWraps(t *testing.T) {
	cfg := config.Default()
	tbl := words("aaaa", "bbbb", "cccc")

	Build(&cfg, tbl, 12)

	if tbl.Words[0].Line != 0 {
		t.Errorf("word 0 line = %d, want 0", tbl.Words[0].Line)
	}
	if tbl.Words[0].Start != 0 || tbl.Words[0].End != 4 {
		t.Errorf("word 0 span = [%d,%d), want [0,4)", tbl.Words[0].Start, tbl.Words[0].End)
	}
	if tbl.Words[2].Line != 1 {
		t.Errorf("word 2 line = %d, want 1 (wrapped)", tbl.Words[2].Line)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	cfg := config.Default()
	tbl := words("one", "two", "three", "four", "five")

	Build(&cfg, tbl, 20)
	firstLineOf := append([]int(nil), tbl.LineOf...)
	firstFWIL := append([]int(nil), tbl.FirstWordInLine...)

	Build(&cfg, tbl, 20)
	for i := range tbl.LineOf {
		if tbl.LineOf[i] != firstLineOf[i] {
			t.Fatalf("LineOf differs on rebuild at %d: %d vs %d", i, tbl.LineOf[i], firstLineOf[i])
		}
	}
	if len(tbl.FirstWordInLine) != len(firstFWIL) {
		t.Fatalf("FirstWordInLine length changed: %d vs %d", len(tbl.FirstWordInLine), len(firstFWIL))
	}
}

func TestTruncateOversizeWord(t *testing.T) {
	cfg := config.Default()
	tbl := words("supercalifragilisticexpialidocious")

	Build(&cfg, tbl, 10)

	w := tbl.Words[0]
	if got := word.StringWidth(w.Display()); got > 8 {
		t.Errorf("expected word truncated to <=8 cols, got width %d (%q)", got, w.Display())
	}
}

func TestColumnModeBreaksOnIsLast(t *testing.T) {
	cfg := config.Default()
	cfg.LayoutMode = config.LayoutColumn
	tbl := &word.Table{Words: []*word.Word{
		{DisplayBytes: []byte("a"), Column: 0, Selectable: word.Included},
		{DisplayBytes: []byte("bb"), Column: 1, Selectable: word.Included, IsLast: true},
		{DisplayBytes: []byte("ccc"), Column: 0, Selectable: word.Included},
		{DisplayBytes: []byte("d"), Column: 1, Selectable: word.Included, IsLast: true},
	}}

	Build(&cfg, tbl, 40)

	if tbl.Words[0].Line != 0 || tbl.Words[2].Line != 1 {
		t.Errorf("expected two records on separate lines, got %d and %d", tbl.Words[0].Line, tbl.Words[2].Line)
	}
	// column 0 is padded to its widest member ("ccc", width 3), so the
	// second record's column-1 word starts at the same x as the first.
	if tbl.Words[1].Start != tbl.Words[3].Start {
		t.Errorf("expected column 1 to align: %d vs %d", tbl.Words[1].Start, tbl.Words[3].Start)
	}
}

func TestWideModeStretchesColumnsToTerminalWidth(t *testing.T) {
	cfg := config.Default()
	cfg.LayoutMode = config.LayoutColumn
	cfg.Wide = true
	tbl := &word.Table{Words: []*word.Word{
		{DisplayBytes: []byte("a"), Column: 0, Selectable: word.Included},
		{DisplayBytes: []byte("bb"), Column: 1, Selectable: word.Included, IsLast: true},
	}}

	Build(&cfg, tbl, 40)

	// narrow record with Wide on should spread across most of the
	// usable width instead of sitting at its natural 1+1+gutter size.
	if tbl.Words[1].End <= 3 {
		t.Errorf("expected wide mode to stretch the row past its natural width, got end=%d", tbl.Words[1].End)
	}
}

func TestWideModeOffLeavesNaturalWidth(t *testing.T) {
	cfg := config.Default()
	cfg.LayoutMode = config.LayoutColumn
	tbl := &word.Table{Words: []*word.Word{
		{DisplayBytes: []byte("a"), Column: 0, Selectable: word.Included},
		{DisplayBytes: []byte("bb"), Column: 1, Selectable: word.Included, IsLast: true},
	}}

	Build(&cfg, tbl, 40)

	if tbl.Words[1].End != 4 {
		t.Errorf("expected natural width end=4 without Wide, got %d", tbl.Words[1].End)
	}
}
