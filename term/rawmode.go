// Package term owns the controlling terminal: entering/restoring raw
// mode on /dev/tty and the closed set of capability escape sequences
// the renderer and input decoder issue (spec §6 "Terminal capabilities
// required").
package term

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// State wraps the saved termios so it can be restored on any exit
// path (normal, abort, signal), per spec §5.
type State struct {
	state *term.State
}

// EnableRaw puts f into raw mode and returns the prior state, grounded
// on the teacher's enableRawMode.
func EnableRaw(f *os.File) (*State, error) {
	old, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, errors.Wrap(err, "term: enable raw mode")
	}
	return &State{state: old}, nil
}

// Restore reverts f to the termios captured by EnableRaw. Safe to call
// with a nil State (no-op), since every exit path calls this
// unconditionally per spec §7.
func Restore(f *os.File, s *State) error {
	if s == nil || s.state == nil {
		return nil
	}
	return errors.Wrap(term.Restore(int(f.Fd()), s.state), "term: restore")
}

// Size reports the current terminal dimensions in columns and rows.
func Size(f *os.File) (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, errors.Wrap(err, "term: get size")
	}
	return cols, rows, nil
}
