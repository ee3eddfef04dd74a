package lexer

import (
	"strings"
	"testing"

	"smenu/reader"
)

func tokenize(t *testing.T, input string, cfg Config) []Token {
	t.Helper()
	r := reader.New(strings.NewReader(input), '?', nil)
	tok := New(r, cfg)
	var out []Token
	for {
		tk, err := tok.Next()
		if err == reader.ErrEOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, tk)
	}
	return out
}

func TestBasicSplit(t *testing.T) {
	toks := tokenize(t, "a b c\n", Config{})
	want := []string{"a", "b", "c"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if string(toks[i].Bytes) != w {
			t.Errorf("token %d: got %q, want %q", i, toks[i].Bytes, w)
		}
	}
	if !toks[len(toks)-1].IsLastOfRecord {
		t.Errorf("last token should end its record")
	}
	for _, tk := range toks[:len(toks)-1] {
		if tk.IsLastOfRecord {
			t.Errorf("non-final token incorrectly marked as record end")
		}
	}
}

func TestQuotingSuppressesSeparators(t *testing.T) {
	toks := tokenize(t, `"a b" c`+"\n", Config{QuoteHandling: true})
	want := []string{"a b", "c"}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
	for i, w := range want {
		if string(toks[i].Bytes) != w {
			t.Errorf("token %d: got %q, want %q", i, toks[i].Bytes, w)
		}
	}
}

func TestStandardEscapes(t *testing.T) {
	toks := tokenize(t, `a\tb\n`, Config{})
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
	if string(toks[0].Bytes) != "a\tb\n" {
		t.Errorf("got %q", toks[0].Bytes)
	}
}

func TestUnicodeCodepointEscape(t *testing.T) {
	toks := tokenize(t, `\U0000e9`+"\n", Config{})
	if len(toks) != 1 {
		t.Fatalf("got %d tokens", len(toks))
	}
	if string(toks[0].Bytes) != "é" {
		t.Errorf("got %q, want %q", toks[0].Bytes, "é")
	}
}

func TestInvalidCodepointEscapeSubstitutes(t *testing.T) {
	toks := tokenize(t, `\Uzzzzzz`+"\n", Config{Substitute: '?'})
	if len(toks) != 1 {
		t.Fatalf("got %d tokens", len(toks))
	}
	if string(toks[0].Bytes) != "?zzzzzz" {
		t.Errorf("got %q, want substitute followed by the unconsumed runes", toks[0].Bytes)
	}
}

func TestANSIStripped(t *testing.T) {
	toks := tokenize(t, "\x1b[31mred\x1b[0m\n", Config{})
	if len(toks) != 1 {
		t.Fatalf("got %d tokens", len(toks))
	}
	if string(toks[0].Bytes) != "red" {
		t.Errorf("got %q, want %q", toks[0].Bytes, "red")
	}
}

func TestTokenTooLong(t *testing.T) {
	_, err := func() (Token, error) {
		r := reader.New(strings.NewReader(strings.Repeat("a", 100)+"\n"), '?', nil)
		tok := New(r, Config{MaxTokenBytes: 10})
		return tok.Next()
	}()
	if err != ErrTokenTooLong {
		t.Errorf("expected ErrTokenTooLong, got %v", err)
	}
}
