// Package reader implements the UTF-8-safe byte ingestion layer smenu
// builds every other component on top of: a small LIFO push-back
// buffer and a "zapped glyph" filter, grounded on the original
// my_fgetc/my_ungetc pair (fgetc.c) which pushes back up to a fixed
// buffer and clears EOF on unget.
package reader

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// ungetCapacity mirrors the original GETC_BUFF_SIZE.
const ungetCapacity = 16

// ErrEOF is returned once the underlying stream and the unget buffer
// are both exhausted.
var ErrEOF = errors.New("reader: EOF")

// ByteReader reads one decoded rune at a time from an underlying byte
// stream, supporting push-back and substitution of invalid UTF-8 and
// "zapped" glyphs (runes the caller wants silently discarded, e.g. a
// stray BOM or a terminal-unsafe control picture).
type ByteReader struct {
	src       *bufio.Reader
	unget     []rune
	zapped    map[rune]struct{}
	substitute rune
	eof       bool
}

// New creates a ByteReader over src. substitute is the rune used in
// place of a byte sequence that fails UTF-8 decoding; zapped is the set
// of glyphs silently discarded after decoding.
func New(src io.Reader, substitute rune, zapped []rune) *ByteReader {
	z := make(map[rune]struct{}, len(zapped))
	for _, r := range zapped {
		z[r] = struct{}{}
	}
	return &ByteReader{
		src:        bufio.NewReader(src),
		zapped:     z,
		substitute: substitute,
	}
}

// Unget pushes a rune back onto the reader; it will be the next value
// returned by ReadRune. Pushing back clears any previously observed
// EOF, exactly like the original's clearerr(input) on a successful
// my_ungetc.
func (r *ByteReader) Unget(ru rune) error {
	if len(r.unget) >= ungetCapacity {
		return errors.New("reader: unget buffer full")
	}
	r.unget = append(r.unget, ru)
	r.eof = false
	return nil
}

// ReadRune returns the next logical glyph: a pushed-back rune if any is
// pending (LIFO), otherwise the next decoded rune from the underlying
// stream, with invalid sequences replaced by the substitute rune and
// zapped glyphs silently skipped.
func (r *ByteReader) ReadRune() (rune, error) {
	for {
		if n := len(r.unget); n > 0 {
			ru := r.unget[n-1]
			r.unget = r.unget[:n-1]
			if _, zapped := r.zapped[ru]; zapped {
				continue
			}
			return ru, nil
		}

		if r.eof {
			return 0, ErrEOF
		}

		ru, size, err := r.src.ReadRune()
		if err != nil {
			if err == io.EOF {
				r.eof = true
				return 0, ErrEOF
			}
			return 0, errors.Wrap(err, "reader: underlying read failed")
		}

		// An invalid byte decodes as U+FFFD of size 1; swallow the
		// continuation bytes that follow it so the whole malformed
		// sequence yields a single substitute.
		if ru == 0xFFFD && size == 1 {
			for {
				b, perr := r.src.Peek(1)
				if perr != nil || b[0] < 0x80 || b[0] > 0xBF {
					break
				}
				r.src.ReadByte()
			}
		}

		if ru == 0xFFFD {
			ru = r.substitute
		}

		if _, zapped := r.zapped[ru]; zapped {
			continue
		}
		return ru, nil
	}
}
