package viewport

import (
	"time"

	"smenu/word"
)

// ToggleTag flips the tagged bit on the current word when tagging is
// enabled, per spec §4.6's INS/DEL/`t` binding. Toggling twice leaves
// the table unchanged (spec §8 invariant 7); tag_order is only ever
// assigned going false->true, and pin mode means "later re-tag wins"
// (spec §9 Open Question), so re-tagging always grabs a fresh order.
func (v *Viewport) ToggleTag() {
	if !v.TagMode {
		return
	}
	w := v.word(v.Current)
	w.Tagged = !w.Tagged
	if w.Tagged && v.PinMode {
		v.tagOrder++
		w.TagOrder = v.tagOrder
	}
}

// TagAllMatching implements `T`: tag every word currently flagged
// Matching.
func (v *Viewport) TagAllMatching() {
	if !v.TagMode {
		return
	}
	for _, w := range v.tbl.Words {
		if w.Matching && !w.Tagged {
			w.Tagged = true
			if v.PinMode {
				v.tagOrder++
				w.TagOrder = v.tagOrder
			}
		}
	}
}

// UntagAllMatching implements `U`: clear the tag on every word
// currently flagged Matching.
func (v *Viewport) UntagAllMatching() {
	for _, w := range v.tbl.Words {
		if w.Matching {
			w.Tagged = false
		}
	}
}

// AnyTagged reports whether at least one word is tagged.
func (v *Viewport) AnyTagged() bool {
	for _, w := range v.tbl.Words {
		if w.Tagged {
			return true
		}
	}
	return false
}

// TaggedWords returns every tagged word, sorted by TagOrder when
// PinMode is on (spec §4.9's emission order), otherwise by table
// index.
func (v *Viewport) TaggedWords() []*word.Word {
	var out []*word.Word
	for _, w := range v.tbl.Words {
		if w.Tagged {
			out = append(out, w)
		}
	}
	if v.PinMode {
		sortByTagOrder(out)
	}
	return out
}

func sortByTagOrder(ws []*word.Word) {
	for i := 1; i < len(ws); i++ {
		for j := i; j > 0 && ws[j-1].TagOrder > ws[j].TagOrder; j-- {
			ws[j-1], ws[j] = ws[j], ws[j-1]
		}
	}
}

// PushDigit implements the digit-stack direct-access binding: push d
// onto the stack, look it up in the direct-access TST, and move
// Current on a hit. Returns true if the stack was consumed by a hit
// (the caller should reset any UI digit-entry display).
func (v *Viewport) PushDigit(now time.Time, d byte, timeout time.Duration, width int) bool {
	if width > 0 && len(v.digitStack) >= width {
		return false // spec §8: sequence longer than configured width is ignored
	}
	v.digitStack = append(v.digitStack, d)
	v.digitDeadline = now.Add(timeout)

	if v.daccess == nil {
		return false
	}
	hits, ok := v.daccess.Lookup([]rune(string(v.digitStack)))
	if !ok || len(hits) == 0 {
		return false
	}
	v.Current = hits[0]
	v.ensureColumnVisible()
	v.recomputeWindow()
	v.digitStack = v.digitStack[:0]
	return true
}

// DigitTimedOut resets the stack when the direct-access timer fires
// without a hit, per spec §4.6, reverting Current to what it held
// before the first digit was pushed is the caller's responsibility
// (PushDigit never moves Current on a miss, so there's nothing to
// revert here beyond clearing the stack).
func (v *Viewport) DigitTimedOut(now time.Time) bool {
	if len(v.digitStack) == 0 {
		return false
	}
	if now.Before(v.digitDeadline) {
		return false
	}
	v.digitStack = v.digitStack[:0]
	return true
}
