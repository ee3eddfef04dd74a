package word

import (
	"testing"

	"smenu/config"
)

func TestNumbererAutoSequential(t *testing.T) {
	cfg := config.Default()
	cfg.DirectAccessMode = config.DirectAccessAuto
	n := NewNumberer(&cfg)

	for i, want := range []string{"1", "2", "3"} {
		key, ok := n.Assign(&Word{})
		if !ok {
			t.Fatalf("word %d: expected numbering", i)
		}
		if key != want {
			t.Errorf("word %d: got key %q, want %q", i, key, want)
		}
	}
}

func TestNumbererAutoZeroPadded(t *testing.T) {
	cfg := config.Default()
	cfg.DirectAccessMode = config.DirectAccessAuto
	cfg.DirectAccessWidth = 3
	n := NewNumberer(&cfg)

	key, _ := n.Assign(&Word{})
	if key != "001" {
		t.Errorf("got %q, want %q", key, "001")
	}
}

func TestNumbererPositionalExtractsLeadingDigits(t *testing.T) {
	cfg := config.Default()
	cfg.DirectAccessMode = config.DirectAccessPositional
	n := NewNumberer(&cfg)

	key, ok := n.Assign(&Word{DisplayBytes: []byte("42-widget")})
	if !ok || key != "42" {
		t.Errorf("got key=%q ok=%v, want 42/true", key, ok)
	}
}

func TestNumbererPositionalFirstDigitRun(t *testing.T) {
	cfg := config.Default()
	cfg.DirectAccessMode = config.DirectAccessPositional
	cfg.DirectAccessFirstDigitRun = true
	n := NewNumberer(&cfg)

	key, ok := n.Assign(&Word{DisplayBytes: []byte("item#7")})
	if !ok || key != "7" {
		t.Errorf("got key=%q ok=%v, want 7/true", key, ok)
	}
}

func TestNumbererPositionalNoDigitsFails(t *testing.T) {
	cfg := config.Default()
	cfg.DirectAccessMode = config.DirectAccessPositional
	n := NewNumberer(&cfg)

	_, ok := n.Assign(&Word{DisplayBytes: []byte("widget")})
	if ok {
		t.Errorf("expected no key when word has no leading digits")
	}
}

func TestBracket(t *testing.T) {
	cfg := config.Default()
	if got := Bracket(&cfg, "3"); got != "(3)" {
		t.Errorf("got %q, want (3)", got)
	}
}
