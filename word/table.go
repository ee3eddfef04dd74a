package word

import (
	"github.com/pkg/errors"

	"smenu/config"
	"smenu/lexer"
	"smenu/reader"
)

// Builder drives the tokenizer and produces the Table, applying
// selectability, special levels, substitutions and numbering in the
// single pass spec §4.3 describes.
type Builder struct {
	cfg *config.Config
	tok *lexer.Tokenizer

	row       int
	col       int
	tagOrder  int
	numberer  *Numberer
}

// NewBuilder wires a tokenizer reading from tok against cfg.
func NewBuilder(cfg *config.Config, tok *lexer.Tokenizer) *Builder {
	return &Builder{cfg: cfg, tok: tok, numberer: NewNumberer(cfg)}
}

// Build drains the tokenizer to EOF and returns the completed Table.
//
// Spec §4.3 treats a word that comes out empty after substitution
// differently by layout mode: column/line/tab modes need every
// record's columns to line up, so a selectable word that substitutes
// down to nothing is fatal; free-flow has no such alignment
// constraint, so an empty selectable word is silently compressed out
// instead (an empty non-selectable word is kept either way — it never
// occupies a cursor position).
func (b *Builder) Build() (*Table, error) {
	t := &Table{}

	for {
		tok, err := b.tok.Next()
		if err == reader.ErrEOF {
			break
		}
		if err != nil {
			return nil, err
		}

		w := b.buildWord(tok)
		keep := true
		if w.ByteLen == 0 && w.IsSelectable() {
			if b.cfg.LayoutMode != config.LayoutFreeFlow {
				return nil, errors.New("smenu: a selectable word is empty after substitution")
			}
			keep = false
		}
		if keep {
			t.Words = append(t.Words, w)
		}

		if tok.IsLastOfRecord {
			b.row++
			b.col = 0
		} else {
			b.col++
		}
	}

	if n := len(t.Words); n > 0 {
		t.Words[n-1].IsLast = true
	}
	b.assignLines(t)
	return t, nil
}

func (b *Builder) buildWord(tok lexer.Token) *Word {
	text := string(tok.Bytes)

	sel := resolveSelectable(b.cfg, b.row+1, b.col+1, text)
	display, original := applySubstitutions(b.cfg, sel, text)
	if !b.cfg.KeepSpaces {
		display = trimSpaces(display)
	}

	w := &Word{
		DisplayBytes:  []byte(display),
		GlyphCount:    GlyphCount(display),
		ByteLen:       len(display),
		Selectable:    sel.Resolved(),
		SpecialLevel:  specialLevel(b.cfg, text),
		Column:        b.col,
		Line:          b.row,
		Index:         -1, // filled below once appended
	}
	if original != display {
		w.OriginalBytes = []byte(original)
	}

	if w.Selectable == Included {
		if key, ok := b.numberer.Assign(w); ok {
			w.Numbered = true
			w.DaccessKey = key
			w.LabelBytes = []byte(Bracket(b.cfg, key) + " ")
		}
	}
	return w
}

// assignLines finalizes Index/LineOf/FirstWordInLine once the whole
// table is known (IsLast needed row boundaries already established
// during Build, but the two lookup arrays are easiest to build as a
// second, O(n) pass).
func (b *Builder) assignLines(t *Table) {
	t.LineOf = make([]int, len(t.Words))
	seen := map[int]bool{}
	for i, w := range t.Words {
		w.Index = i
		t.LineOf[i] = w.Line
		if !seen[w.Line] {
			seen[w.Line] = true
			t.FirstWordInLine = append(t.FirstWordInLine, i)
		}
	}
}

// resolveSelectable runs the row/column include/exclude selectors and
// the force-first/force-last-column regexes, in the precedence order
// spec §4.3 fixes: each selector bucket is consulted in turn. A set
// include bucket excludes every position it does not match and, when it
// matches, applies the Include flag of its last matching clause; a set
// exclude bucket excludes every position it matches; force-column
// regexes are the final, absolute word. row/col are 1-based, matching the
// selector grammar's position numbering.
func resolveSelectable(cfg *config.Config, row, col int, text string) Selectable {
	sel := Included

	if !cfg.RowInclude.Empty() {
		sel = Excluded
		if matched, include := cfg.RowInclude.Vote(row, text); matched && include {
			sel = Included
		}
	}
	if !cfg.RowExclude.Empty() {
		if matched, _ := cfg.RowExclude.Vote(row, text); matched {
			sel = Excluded
		}
	}
	if !cfg.ColumnInclude.Empty() {
		if matched, include := cfg.ColumnInclude.Vote(col, text); matched {
			sel = verdict(include)
		} else {
			sel = Excluded
		}
	}
	if !cfg.ColumnExclude.Empty() {
		if matched, _ := cfg.ColumnExclude.Vote(col, text); matched {
			sel = Excluded
		}
	}
	if !cfg.RowIntervalFilter.Empty() {
		if matched, include := cfg.RowIntervalFilter.Vote(row, text); matched && !include {
			sel = Excluded
		}
	}

	if cfg.ForceFirstColumn != nil && col == 1 && cfg.ForceFirstColumn.MatchString(text) {
		sel = Included
	}
	if cfg.ForceLastColumn != nil && cfg.ForceLastColumn.MatchString(text) {
		sel = Included
	}

	return sel
}

func verdict(include bool) Selectable {
	if include {
		return Included
	}
	return Excluded
}

func specialLevel(cfg *config.Config, text string) int {
	for level := len(cfg.SpecialRegex); level >= 1; level-- {
		re := cfg.SpecialRegex[level-1]
		if re != nil && re.MatchString(text) {
			return level
		}
	}
	return 0
}

func trimSpaces(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}
