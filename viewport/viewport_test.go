package viewport

import (
	"testing"

	"smenu/config"
	"smenu/layout"
	"smenu/word"
)

// build lays words out with the real layout engine (so Start/End/Line
// match production geometry) and returns a ready Table.
func build(t *testing.T, termCols int, selectable []bool, strs ...string) *word.Table {
	t.Helper()
	tbl := &word.Table{}
	for i, s := range strs {
		sel := word.Included
		if selectable != nil && !selectable[i] {
			sel = word.Excluded
		}
		tbl.Words = append(tbl.Words, &word.Word{
			DisplayBytes: []byte(s),
			GlyphCount:   len([]rune(s)),
			Selectable:   sel,
			Index:        i,
		})
	}
	tbl.Words[len(tbl.Words)-1].IsLast = true
	cfg := config.Default()
	layout.Build(&cfg, tbl, termCols)
	return tbl
}

func TestMoveHorizontalSkipsNonSelectable(t *testing.T) {
	tbl := build(t, 40, []bool{true, false, true}, "one", "two", "three")
	v := New(tbl, 5, 40)

	if v.Current != 0 {
		t.Fatalf("initial current = %d, want 0", v.Current)
	}
	v.MoveHorizontal(1)
	if v.Current != 2 {
		t.Fatalf("after right move, current = %d, want 2 (skip excluded word 1)", v.Current)
	}
	v.MoveHorizontal(-1)
	if v.Current != 0 {
		t.Fatalf("after left move, current = %d, want 0", v.Current)
	}
}

func TestMoveHorizontalRoundTrip(t *testing.T) {
	tbl := build(t, 40, nil, "a", "b", "c", "d")
	v := New(tbl, 5, 40)
	start := v.Current

	v.MoveHorizontal(1)
	v.MoveHorizontal(1)
	v.MoveHorizontal(-1)
	v.MoveHorizontal(-1)

	if v.Current != start {
		t.Fatalf("round trip ended at %d, want %d", v.Current, start)
	}
}

func TestMoveVerticalBestWordRule(t *testing.T) {
	// Two lines; force a line break after "bbbb" by using a narrow
	// terminal so "cc" wraps to its own line.
	tbl := build(t, 6, nil, "bbbb", "cc")
	v := New(tbl, 5, 6)

	if tbl.Words[0].Line == tbl.Words[1].Line {
		t.Fatalf("expected words on separate lines, got both on %d", tbl.Words[0].Line)
	}

	v.Current = 0
	v.MoveVertical(1)
	if v.Current != 1 {
		t.Fatalf("moving down from the only word on line 0, got %d, want 1", v.Current)
	}
}

func TestHomeEndLine(t *testing.T) {
	tbl := build(t, 40, nil, "one", "two", "three")
	v := New(tbl, 5, 40)

	v.Current = 1
	v.EndLine()
	if v.Current != 2 {
		t.Fatalf("EndLine = %d, want 2", v.Current)
	}
	v.HomeLine()
	if v.Current != 0 {
		t.Fatalf("HomeLine = %d, want 0", v.Current)
	}
}

func TestHomeEndTable(t *testing.T) {
	tbl := build(t, 40, []bool{false, true, true, false}, "a", "b", "c", "d")
	v := New(tbl, 5, 40)

	v.EndTable()
	if v.Current != 2 {
		t.Fatalf("EndTable = %d, want 2 (last selectable)", v.Current)
	}
	v.HomeTable()
	if v.Current != 1 {
		t.Fatalf("HomeTable = %d, want 1 (first selectable)", v.Current)
	}
}

func TestRecomputeWindowKeepsCurrentVisible(t *testing.T) {
	strs := make([]string, 10)
	for i := range strs {
		strs[i] = "x"
	}
	tbl := &word.Table{}
	for i, s := range strs {
		tbl.Words = append(tbl.Words, &word.Word{
			DisplayBytes: []byte(s),
			GlyphCount:   1,
			Selectable:   word.Included,
			Line:         i,
			Index:        i,
		})
	}
	tbl.Words[len(tbl.Words)-1].IsLast = true
	tbl.LineOf = make([]int, 10)
	tbl.FirstWordInLine = make([]int, 10)
	for i := range tbl.Words {
		tbl.LineOf[i] = i
		tbl.FirstWordInLine[i] = i
	}

	v := New(tbl, 3, 40)
	v.Current = 8
	v.recomputeWindow()

	if v.Current < v.Start || v.Current > v.End {
		t.Fatalf("current %d outside window [%d,%d]", v.Current, v.Start, v.End)
	}
	if v.word(v.End).Line-v.word(v.Start).Line >= v.MaxLines {
		t.Fatalf("window taller than MaxLines: %d..%d", v.word(v.Start).Line, v.word(v.End).Line)
	}
}
