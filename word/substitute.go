package word

import "smenu/config"

// applySubstitutions runs the three substitution buckets in order —
// "all", then whichever of "included"/"excluded" matches sel — the
// same ordered-pass-over-the-string technique basement.Parse uses for
// its markdown rules, but operating on sed-style rules instead of
// fixed markdown regexes.
//
// original tracks the word's real content; display tracks what gets
// drawn. A rule marked VisualOnly only ever moves display, so a
// selection still emits the unmodified original text.
func applySubstitutions(cfg *config.Config, sel Selectable, text string) (display, original string) {
	display, original = text, text

	runBucket := func(rules []config.SubstRule) {
		for _, r := range rules {
			out, matched := r.Apply(display)
			if !matched {
				continue
			}
			display = out
			if !r.VisualOnly {
				original = out
			}
			if r.StopOnMatch {
				break
			}
		}
	}

	runBucket(cfg.SubstAll)
	switch sel.Resolved() {
	case Included:
		runBucket(cfg.SubstIncluded)
	case Excluded:
		runBucket(cfg.SubstExcluded)
	}

	if cfg.BlankNonprintable {
		display = blankNonprintable(display)
	}
	return display, original
}

// blankNonprintable replaces C0 control bytes other than tab, and DEL,
// with a visible caret mnemonic (^A, ^?), so
// the renderer never has to special-case raw control bytes.
func blankNonprintable(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 && c != '\t' {
			out = append(out, '^', c+'@')
			continue
		}
		if c == 0x7f {
			out = append(out, '^', '?')
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
