package input

import (
	"bufio"
	"os"
	"time"
)

// escTimeout is how long the decoder waits for follow-up bytes after
// a bare ESC before deciding it really was a bare ESC keypress (spec
// §4.7: "the terminal is temporarily configured for polling reads so
// the remainder of an escape sequence... can be collected without
// blocking").
const escTimeout = 10 * time.Millisecond

// csiTimeout bounds how long the decoder waits for each subsequent
// byte inside a CSI/SS3/mouse sequence.
const csiTimeout = 50 * time.Millisecond

// Start opens a decode loop over f (the controlling terminal) and
// returns a channel of decoded events. Closing done stops the loop.
// Grounded on the teacher's tui.StartInput/inputLoop: one goroutine
// owns the byte reader so nothing else touches it, eliminating the
// data race a shared bufio.Reader would otherwise invite.
func Start(f *os.File, done <-chan struct{}) <-chan Event {
	ch := make(chan Event)
	go decodeLoop(f, ch, done)
	return ch
}

func decodeLoop(f *os.File, ch chan<- Event, done <-chan struct{}) {
	r := bufio.NewReader(f)

	rawCh := make(chan byte, 128)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(rawCh)
				return
			}
			rawCh <- b
		}
	}()

	for {
		select {
		case <-done:
			close(ch)
			return
		case b, ok := <-rawCh:
			if !ok {
				close(ch)
				return
			}
			if b == 0x1b {
				processEsc(rawCh, ch)
			} else {
				processChar(b, ch)
			}
		}
	}
}

func processEsc(rawCh <-chan byte, ch chan<- Event) {
	select {
	case next, ok := <-rawCh:
		if !ok {
			ch <- Event{Key: KeyEsc}
			return
		}
		switch next {
		case '[':
			parseCSI(rawCh, ch)
		case 'O':
			parseSS3(rawCh, ch)
		default:
			ch <- Event{Key: KeyChar, Rune: rune(next), Mod: ModAlt}
		}
	case <-time.After(escTimeout):
		ch <- Event{Key: KeyEsc}
	}
}

func processChar(b byte, ch chan<- Event) {
	if b <= 0x1f {
		switch b {
		case 0x0d:
			ch <- Event{Key: KeyEnter}
		case 0x09:
			ch <- Event{Key: KeyTab}
		case 0x08:
			ch <- Event{Key: KeyBackspace}
		case 0x03:
			ch <- Event{Key: KeyChar, Rune: 'c', Mod: ModCtrl}
		default:
			ch <- Event{Key: KeyChar, Rune: rune(b + 0x60), Mod: ModCtrl}
		}
	} else if b == 0x7f {
		ch <- Event{Key: KeyBackspace}
	} else if b == ' ' {
		ch <- Event{Key: KeySpace}
	} else {
		ch <- Event{Key: KeyChar, Rune: rune(b)}
	}
}

func readByteTimeout(rawCh <-chan byte, timeout time.Duration) (byte, bool) {
	select {
	case b, ok := <-rawCh:
		return b, ok
	case <-time.After(timeout):
		return 0, false
	}
}

// parseCSI consumes "ESC [" and everything through the final byte.
// Unknown sequences are discarded silently, per spec §4.7.
func parseCSI(rawCh <-chan byte, ch chan<- Event) {
	var params []byte
	for {
		b, ok := readByteTimeout(rawCh, csiTimeout)
		if !ok {
			return
		}
		if len(params) == 0 && b == 'M' {
			// X10 mouse report: ESC [ M Cb Cx Cy, three raw data bytes
			// follow immediately with no parameter syntax.
			dispatchX10Mouse(rawCh, ch)
			return
		}
		if b >= 0x40 && b <= 0x7e {
			dispatchCSI(params, b, ch)
			return
		}
		params = append(params, b)
	}
}

func dispatchX10Mouse(rawCh <-chan byte, ch chan<- Event) {
	cb, ok1 := readByteTimeout(rawCh, csiTimeout)
	cx, ok2 := readByteTimeout(rawCh, csiTimeout)
	cy, ok3 := readByteTimeout(rawCh, csiTimeout)
	if !ok1 || !ok2 || !ok3 {
		return
	}
	ch <- Event{Key: KeyMouse, Mouse: Mouse{
		Button: decodeX10Button(cb - 32),
		X:      int(cx) - 32,
		Y:      int(cy) - 32,
	}}
}

func dispatchCSI(params []byte, final byte, ch chan<- Event) {
	p := string(params)

	if len(p) > 0 && p[0] == '<' {
		dispatchSGRMouse(p[1:], final, ch)
		return
	}

	switch final {
	case 'A':
		ch <- Event{Key: KeyArrowUp}
	case 'B':
		ch <- Event{Key: KeyArrowDown}
	case 'C':
		ch <- Event{Key: KeyArrowRight}
	case 'D':
		ch <- Event{Key: KeyArrowLeft}
	case 'H':
		ch <- Event{Key: KeyHome}
	case 'F':
		ch <- Event{Key: KeyEnd}
	case '~':
		dispatchTilde(p, ch)
	}
}

func dispatchTilde(p string, ch chan<- Event) {
	key := p
	if i := indexOf(p, ';'); i >= 0 {
		key = p[:i]
	}
	switch key {
	case "1":
		ch <- Event{Key: KeyHome}
	case "2":
		ch <- Event{Key: KeyInsert}
	case "3":
		ch <- Event{Key: KeyDelete}
	case "4":
		ch <- Event{Key: KeyEnd}
	case "5":
		ch <- Event{Key: KeyPgUp}
	case "6":
		ch <- Event{Key: KeyPgDown}
	case "15":
		ch <- Event{Key: KeyF5}
	case "17":
		ch <- Event{Key: KeyF6}
	case "18":
		ch <- Event{Key: KeyF7}
	case "19":
		ch <- Event{Key: KeyF8}
	case "20":
		ch <- Event{Key: KeyF9}
	case "21":
		ch <- Event{Key: KeyF10}
	case "23":
		ch <- Event{Key: KeyF11}
	case "24":
		ch <- Event{Key: KeyF12}
	}
}

// dispatchSGRMouse decodes "ESC [ < Pb ; Px ; Py M/m" once the leading
// '<' has been stripped from params; final 'M' is a press, 'm' a
// release.
func dispatchSGRMouse(rest string, final byte, ch chan<- Event) {
	var nums [3]int
	n, field := 0, 0
	for i := 0; i < len(rest) && field < 3; i++ {
		c := rest[i]
		if c == ';' {
			field++
			n = 0
			continue
		}
		if c < '0' || c > '9' {
			return
		}
		n = n*10 + int(c-'0')
		nums[field] = n
	}
	ch <- Event{Key: KeyMouse, Mouse: Mouse{
		Button: decodeSGRButton(nums[0], final == 'M'),
		X:      nums[1],
		Y:      nums[2],
	}}
}

func indexOf(s string, sep byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return i
		}
	}
	return -1
}

func parseSS3(rawCh <-chan byte, ch chan<- Event) {
	b, ok := readByteTimeout(rawCh, csiTimeout)
	if !ok {
		return
	}
	switch b {
	case 'A':
		ch <- Event{Key: KeyArrowUp}
	case 'B':
		ch <- Event{Key: KeyArrowDown}
	case 'C':
		ch <- Event{Key: KeyArrowRight}
	case 'D':
		ch <- Event{Key: KeyArrowLeft}
	case 'P':
		ch <- Event{Key: KeyF1}
	case 'Q':
		ch <- Event{Key: KeyF2}
	case 'R':
		ch <- Event{Key: KeyF3}
	case 'S':
		ch <- Event{Key: KeyF4}
	case 'H':
		ch <- Event{Key: KeyHome}
	case 'F':
		ch <- Event{Key: KeyEnd}
	}
}
