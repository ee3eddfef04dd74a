package app

import (
	"smenu/config"
	"smenu/search"
	"smenu/viewport"
	"smenu/word"
)

// HelpState names the Off/On states of the help overlay state machine
// (spec §4.10).
type HelpState int

const (
	HelpOff HelpState = iota
	HelpOn
)

// ResizeState names the Idle/Dirty states of the window-resize
// debounce state machine (spec §4.10).
type ResizeState int

const (
	ResizeIdle ResizeState = iota
	ResizeDirty
)

// AppState is the single mutable value spec §9 calls for in place of
// the source's scattered globals: everything the main loop reads or
// writes in one place, touched only by that loop (spec §5 "no locking
// is required").
type AppState struct {
	Cfg      *config.Config
	Table    *word.Table
	Viewport *viewport.Viewport
	Search   *search.State
	Index    *search.Index

	Help   HelpState
	Resize ResizeState

	Digits      string
	Message     string
	TimeoutSecs int
	Bell        bool

	Done     bool
	ExitCode int
}

// NewAppState bundles the already-built pipeline stages (table,
// viewport, search index) into one state value ready for the loop.
func NewAppState(cfg *config.Config, tbl *word.Table, vp *viewport.Viewport, idx *search.Index) *AppState {
	return &AppState{
		Cfg:         cfg,
		Table:       tbl,
		Viewport:    vp,
		Search:      search.NewState(),
		Index:       idx,
		TimeoutSecs: cfg.TimeoutSeconds,
	}
}

// Quit marks the loop as finished with the given exit code (spec §6's
// closed set: 0 success, 1 empty/no-selectable/abort/option-error,
// 128+signo on fatal signals).
func (a *AppState) Quit(code int) {
	a.Done = true
	a.ExitCode = code
}
