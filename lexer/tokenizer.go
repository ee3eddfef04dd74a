// Package lexer turns the rune stream from reader.ByteReader into raw
// words: maximal byte runs between separators, with escape decoding,
// optional quoting and ANSI CSI color stripping applied as the word
// accumulates.
package lexer

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"smenu/reader"
)

// Config controls how the Tokenizer splits and decodes the stream.
type Config struct {
	WordSeparators   map[rune]bool
	RecordSeparators map[rune]bool
	QuoteHandling    bool
	Substitute       rune
	MaxTokenBytes    int
}

// Token is one accumulated word plus whether the separator that ended
// it was a record separator (or EOF).
type Token struct {
	Bytes         []byte
	IsLastOfRecord bool
}

// Tokenizer reads Tokens off a reader.ByteReader.
type Tokenizer struct {
	r   *reader.ByteReader
	cfg Config
}

// New creates a Tokenizer. Record separators always also act as word
// separators, per spec §4.2.
func New(r *reader.ByteReader, cfg Config) *Tokenizer {
	if cfg.WordSeparators == nil {
		cfg.WordSeparators = map[rune]bool{' ': true, '\t': true}
	}
	if cfg.RecordSeparators == nil {
		cfg.RecordSeparators = map[rune]bool{'\n': true}
	}
	if cfg.MaxTokenBytes <= 0 {
		cfg.MaxTokenBytes = 32 * 1024
	}
	return &Tokenizer{r: r, cfg: cfg}
}

func (t *Tokenizer) isRecordSep(r rune) bool { return t.cfg.RecordSeparators[r] }
func (t *Tokenizer) isWordSep(r rune) bool {
	return t.cfg.WordSeparators[r] || t.cfg.RecordSeparators[r]
}

// ErrTokenTooLong is the fatal diagnostic raised when a single word
// exceeds Config.MaxTokenBytes, per spec §4.2's "hard limit".
var ErrTokenTooLong = errors.New("lexer: token exceeds configured maximum length")

// Next returns the next Token, or reader.ErrEOF once the stream (and
// any trailing partial word) is exhausted.
func (t *Tokenizer) Next() (Token, error) {
	var buf []byte
	started := false
	var quote rune

	for {
		r, err := t.r.ReadRune()
		if err == reader.ErrEOF {
			if !started {
				return Token{}, reader.ErrEOF
			}
			return Token{Bytes: buf, IsLastOfRecord: true}, nil
		}
		if err != nil {
			return Token{}, err
		}

		if !started {
			if quote == 0 && t.isWordSep(r) {
				continue
			}
			started = true
		}

		if quote == 0 {
			if t.isRecordSep(r) {
				return Token{Bytes: buf, IsLastOfRecord: true}, nil
			}
			if t.isWordSep(r) {
				return Token{Bytes: buf, IsLastOfRecord: false}, nil
			}
		}

		switch {
		case t.cfg.QuoteHandling && quote == 0 && (r == '"' || r == '\''):
			quote = r
		case t.cfg.QuoteHandling && quote != 0 && r == quote:
			quote = 0
		case r == '\\':
			b, decodeErr := t.decodeEscape()
			if decodeErr != nil {
				return Token{}, decodeErr
			}
			buf = append(buf, b...)
		case r == 0x1b:
			b, stripErr := t.decodeEscapeSeq()
			if stripErr != nil {
				return Token{}, stripErr
			}
			buf = append(buf, b...)
		default:
			buf = utf8.AppendRune(buf, r)
		}

		if len(buf) > t.cfg.MaxTokenBytes {
			return Token{}, ErrTokenTooLong
		}
	}
}

// decodeEscape handles the byte immediately following a backslash: the
// standard C escapes, \u/\U unicode notation, or — for anything else —
// the literal following character (the backslash itself is dropped).
func (t *Tokenizer) decodeEscape() ([]byte, error) {
	r, err := t.r.ReadRune()
	if err == reader.ErrEOF {
		return []byte{'\\'}, nil
	}
	if err != nil {
		return nil, err
	}

	switch r {
	case 'a':
		return []byte{0x07}, nil
	case 'b':
		return []byte{0x08}, nil
	case 't':
		return []byte{0x09}, nil
	case 'n':
		return []byte{0x0a}, nil
	case 'v':
		return []byte{0x0b}, nil
	case 'f':
		return []byte{0x0c}, nil
	case 'r':
		return []byte{0x0d}, nil
	case '\\':
		return []byte{'\\'}, nil
	case 'u':
		return t.decodeLiteralHexBytes()
	case 'U':
		return t.decodeCodepoint()
	default:
		return utf8.AppendRune(nil, r), nil
	}
}

// decodeLiteralHexBytes implements \u followed by 2, 4, 6 or 8 lowercase
// hex digits: the bytes those digits literally spell, per spec §6.
func (t *Tokenizer) decodeLiteralHexBytes() ([]byte, error) {
	digits, ok := t.readHexDigits(8)
	if !ok || (len(digits)%2 != 0) || len(digits) == 0 {
		return utf8.AppendRune(nil, t.cfg.Substitute), nil
	}
	out := make([]byte, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		v, ok := hexByte(digits[i], digits[i+1])
		if !ok {
			return utf8.AppendRune(nil, t.cfg.Substitute), nil
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeCodepoint implements \U followed by exactly 6 hex digits: a
// Unicode code point UTF-8 encoded, substitute on out-of-range or
// malformed input.
func (t *Tokenizer) decodeCodepoint() ([]byte, error) {
	digits, ok := t.readExactHexDigits(6)
	if !ok {
		return utf8.AppendRune(nil, t.cfg.Substitute), nil
	}
	cp := 0
	for _, d := range digits {
		v, ok := hexNibble(d)
		if !ok {
			return utf8.AppendRune(nil, t.cfg.Substitute), nil
		}
		cp = cp<<4 | int(v)
	}
	if cp < 0 || cp > 0x10FFFF {
		return utf8.AppendRune(nil, t.cfg.Substitute), nil
	}
	return utf8.AppendRune(nil, rune(cp)), nil
}

// readHexDigits greedily reads up to max lowercase-hex runes, unreading
// the first non-hex rune it encounters. Returns ok=false (and pushes
// back everything it read) unless the final count is one of 2,4,6,8.
func (t *Tokenizer) readHexDigits(max int) (string, bool) {
	var got []rune
	for len(got) < max {
		r, err := t.r.ReadRune()
		if err != nil {
			break
		}
		if !isLowerHex(r) {
			_ = t.r.Unget(r)
			break
		}
		got = append(got, r)
	}
	n := len(got)
	if n == 2 || n == 4 || n == 6 || n == 8 {
		return string(got), true
	}
	for i := len(got) - 1; i >= 0; i-- {
		_ = t.r.Unget(got[i])
	}
	return "", false
}

func (t *Tokenizer) readExactHexDigits(n int) (string, bool) {
	var got []rune
	for len(got) < n {
		r, err := t.r.ReadRune()
		if err != nil {
			break
		}
		if !isHex(r) {
			_ = t.r.Unget(r)
			break
		}
		got = append(got, r)
	}
	if len(got) != n {
		for i := len(got) - 1; i >= 0; i-- {
			_ = t.r.Unget(got[i])
		}
		return "", false
	}
	return string(got), true
}

func isLowerHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexNibble(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}

func hexByte(hi, lo rune) (byte, bool) {
	h, ok := hexNibble(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexNibble(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}

// decodeEscapeSeq handles a bare ESC already consumed from the stream:
// if followed by '[' it collects an ANSI CSI sequence and, if it is
// SGR-terminated ("...m"), strips it entirely; otherwise (or for a bare
// ESC) it is replaced by the substitute rune.
func (t *Tokenizer) decodeEscapeSeq() ([]byte, error) {
	r, err := t.r.ReadRune()
	if err == reader.ErrEOF {
		return utf8.AppendRune(nil, t.cfg.Substitute), nil
	}
	if err != nil {
		return nil, err
	}
	if r != '[' {
		_ = t.r.Unget(r)
		return utf8.AppendRune(nil, t.cfg.Substitute), nil
	}

	var params []rune
	for {
		r, err := t.r.ReadRune()
		if err != nil {
			// Unterminated sequence: drop what we collected.
			return nil, nil
		}
		if r >= 0x40 && r <= 0x7e {
			if r == 'm' {
				return nil, nil
			}
			// Non-SGR CSI: not a color sequence, treat whole thing as
			// substitute since it carries no printable payload.
			return utf8.AppendRune(nil, t.cfg.Substitute), nil
		}
		params = append(params, r)
		if len(params) > 32 {
			return utf8.AppendRune(nil, t.cfg.Substitute), nil
		}
	}
}
