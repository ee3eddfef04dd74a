package reader

import (
	"strings"
	"testing"
)

func TestReadRuneBasic(t *testing.T) {
	r := New(strings.NewReader("ab"), '?', nil)
	for _, want := range []rune{'a', 'b'} {
		got, err := r.ReadRune()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
	if _, err := r.ReadRune(); err != ErrEOF {
		t.Errorf("expected ErrEOF, got %v", err)
	}
}

func TestUngetIsLIFO(t *testing.T) {
	r := New(strings.NewReader("c"), '?', nil)
	if err := r.Unget('b'); err != nil {
		t.Fatal(err)
	}
	if err := r.Unget('a'); err != nil {
		t.Fatal(err)
	}
	for _, want := range []rune{'a', 'b', 'c'} {
		got, err := r.ReadRune()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestUngetClearsEOF(t *testing.T) {
	r := New(strings.NewReader("a"), '?', nil)
	if _, err := r.ReadRune(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadRune(); err != ErrEOF {
		t.Fatalf("expected EOF, got %v", err)
	}
	_ = r.Unget('z')
	got, err := r.ReadRune()
	if err != nil || got != 'z' {
		t.Fatalf("expected z after unget post-EOF, got %q, %v", got, err)
	}
	if _, err := r.ReadRune(); err != ErrEOF {
		t.Errorf("expected EOF again, got %v", err)
	}
}

func TestZappedGlyphsSkipped(t *testing.T) {
	r := New(strings.NewReader("a​b"), '?', []rune{'​'})
	var out []rune
	for {
		ru, err := r.ReadRune()
		if err != nil {
			break
		}
		out = append(out, ru)
	}
	if string(out) != "ab" {
		t.Errorf("got %q, want %q", string(out), "ab")
	}
}
