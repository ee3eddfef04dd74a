// Package output implements the Output Emitter of spec §4.9: what
// gets written to the caller's real stdout on Enter, and in what
// order.
package output

import (
	"bytes"
	"io"

	"smenu/config"
	"smenu/viewport"
	"smenu/word"
)

// EmitSelection writes the final selection to w following the
// priority spec §4.9 lists: configured timeout word first, then
// tagged words (autotagging the current word first if nothing is
// tagged and autotag is on), else just the current word.
func EmitSelection(w io.Writer, cfg *config.Config, vp *viewport.Viewport) error {
	if cfg.TimeoutMode == config.TimeoutWord {
		_, err := io.WriteString(w, cfg.TimeoutWord+"\n")
		return err
	}

	if cfg.TagMode {
		if !vp.AnyTagged() && cfg.AutoTag {
			vp.ToggleTag()
		}
		if vp.AnyTagged() {
			return emitTagged(w, cfg, vp)
		}
	}

	return emitWord(w, cfg, vp.WordAt(vp.Current))
}

func emitTagged(w io.Writer, cfg *config.Config, vp *viewport.Viewport) error {
	words := vp.TaggedWords()
	for i, tw := range words {
		if i > 0 {
			if _, err := io.WriteString(w, cfg.TagSeparator); err != nil {
				return err
			}
		}
		if err := emitBytes(w, cfg, tw); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func emitWord(w io.Writer, cfg *config.Config, wd *word.Word) error {
	if err := emitBytes(w, cfg, wd); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// emitBytes writes a single word's bytes: Emit() prefers
// original_bytes (spec §4.9's "prefer original_bytes when present"),
// trimmed of leading/trailing spaces and tabs unless keep_spaces is
// on.
func emitBytes(w io.Writer, cfg *config.Config, wd *word.Word) error {
	b := wd.Emit()
	if !cfg.KeepSpaces {
		b = trimSpaceTab(b)
	}
	_, err := w.Write(b)
	return err
}

func trimSpaceTab(b []byte) []byte {
	return bytes.Trim(b, " \t")
}
