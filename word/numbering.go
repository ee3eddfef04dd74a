package word

import (
	"strconv"
	"strings"

	"smenu/config"
)

// Numberer assigns the direct-access selector key used by the digit
// stack in the viewport (spec §4.3 "Direct access numbering").
type Numberer struct {
	cfg     *config.Config
	counter int
}

// NewNumberer returns a Numberer ready to assign keys in the order
// words are built.
func NewNumberer(cfg *config.Config) *Numberer {
	return &Numberer{cfg: cfg}
}

// Assign returns the key to associate with w and whether w receives a
// direct-access number at all. Only called for words already resolved
// Included; Excluded words are never numbered.
func (n *Numberer) Assign(w *Word) (string, bool) {
	switch n.cfg.DirectAccessMode {
	case config.DirectAccessAuto:
		n.counter++
		return n.formatAuto(n.counter), true
	case config.DirectAccessPositional:
		return n.extractPositional(w.Display())
	default:
		return "", false
	}
}

func (n *Numberer) formatAuto(v int) string {
	s := strconv.Itoa(v)
	width := n.cfg.DirectAccessWidth
	if width > len(s) {
		pad := strings.Repeat("0", width-len(s))
		if n.cfg.DirectAccessAlignLeft {
			s = s + pad
		} else {
			s = pad + s
		}
	}
	return s
}

// extractPositional pulls the digit run that forms the selector key
// directly out of the word's own text, per the "positional" direct
// access mode: the word carries its own index (e.g. menu entries
// pre-numbered "3. frobnicate").
func (n *Numberer) extractPositional(text string) (string, bool) {
	runes := []rune(text)
	offset := n.cfg.DirectAccessPositionalOffset
	if offset < 0 || offset >= len(runes) {
		return "", false
	}

	start := offset
	if n.cfg.DirectAccessFirstDigitRun {
		start = -1
		for i := offset; i < len(runes); i++ {
			if runes[i] >= '0' && runes[i] <= '9' {
				start = i
				break
			}
		}
		if start < 0 {
			return "", false
		}
	}

	width := n.cfg.DirectAccessPositionalWidth
	end := len(runes)
	if width > 0 && start+width <= len(runes) {
		end = start + width
	}

	i := start
	for i < end && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i == start {
		return "", false
	}
	return string(runes[start:i]), true
}

// Bracket wraps a key in the configured open/close bracket pair, e.g.
// "(3)". The builder uses this to fill in a numbered word's LabelBytes.
func Bracket(cfg *config.Config, key string) string {
	return cfg.DirectAccessBracketOpen + key + cfg.DirectAccessBracketClose
}
