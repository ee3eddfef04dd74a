// Package config holds the pure-data configuration record the core
// consumes (spec §3 "Configuration record") and the two external
// collaborators that populate it: an INI loader and a CLI option
// parser. The core never parses configuration itself.
package config

import (
	"regexp"
	"time"

	"smenu/style"
)

// LayoutMode selects one of the four layout engine strategies (§4.4).
type LayoutMode int

const (
	LayoutFreeFlow LayoutMode = iota
	LayoutColumn
	LayoutLine
	LayoutTab
)

// DirectAccessMode selects how selector numbers are assigned (§4.3).
type DirectAccessMode int

const (
	DirectAccessNone DirectAccessMode = iota
	DirectAccessAuto
	DirectAccessPositional
)

// TimeoutMode controls what happens when the user timeout fires (§4.9).
type TimeoutMode int

const (
	TimeoutNone TimeoutMode = iota
	TimeoutWord
)

// SearchMode names the three search methods plus "unset" (§4.5).
type SearchMode int

const (
	SearchNone SearchMode = iota
	SearchPrefix
	SearchSubstring
	SearchFuzzy
)

// Config is the fully-resolved, immutable-after-build configuration
// record. Every field here is filled in by the INI loader and/or the
// CLI flag parser before the interactive core ever runs.
type Config struct {
	// Tokenizer
	WordSeparators   []rune
	RecordSeparators []rune
	QuoteHandling    bool
	Substitute       rune
	ZappedGlyphs     []rune
	MaxTokenBytes    int

	// Word Table Builder — selectability
	RowInclude        Selector
	RowExclude        Selector
	ColumnInclude     Selector
	ColumnExclude     Selector
	RowIntervalFilter Selector
	ForceFirstColumn  *regexp.Regexp
	ForceLastColumn   *regexp.Regexp

	// Special attribute levels (1..5)
	SpecialRegex [5]*regexp.Regexp

	// Direct access numbering
	DirectAccessMode          DirectAccessMode
	DirectAccessWidth         int
	DirectAccessAlignLeft     bool
	DirectAccessPadIncludedOnly bool
	DirectAccessBracketOpen   string
	DirectAccessBracketClose  string
	DirectAccessPositionalOffset int
	DirectAccessPositionalWidth  int
	DirectAccessFirstDigitRun bool
	DirectAccessTimeout       time.Duration

	// Substitutions, bucketed per §4.3
	SubstAll      []SubstRule
	SubstIncluded []SubstRule
	SubstExcluded []SubstRule

	BlankNonprintable bool
	KeepSpaces        bool

	// Layout
	LayoutMode   LayoutMode
	Wide         bool
	Center       bool
	MaxCols      int
	ColumnGutters []string

	// Window / viewport
	WindowHeight int

	// Tagging
	TagMode      bool
	PinMode      bool
	AutoTag      bool
	TagSeparator string

	// Timeout / exit behavior
	TimeoutMode    TimeoutMode
	TimeoutWord    string
	TimeoutSeconds int

	// Timers
	HelpTimeout       time.Duration
	SearchIdleTimeout time.Duration
	ResizeDebounce    time.Duration
	TickInterval      time.Duration

	DefaultSearchMode SearchMode

	AutoValidateSearch bool
	AudibleBell        bool

	InterruptString string
	CleanOnExit     bool

	Styles style.Table
}

// Default returns a Config with every field set to the documented
// default, ready for the INI loader and CLI parser to override.
func Default() Config {
	return Config{
		WordSeparators:          []rune{' ', '\t'},
		RecordSeparators:        []rune{'\n'},
		Substitute:              '?',
		MaxTokenBytes:           32 * 1024,
		DirectAccessBracketOpen: "(",
		DirectAccessBracketClose: ")",
		DirectAccessTimeout:     600 * time.Millisecond,
		WindowHeight:            16,
		TagSeparator:            " ",
		HelpTimeout:             1500 * time.Millisecond,
		SearchIdleTimeout:       10 * time.Second,
		ResizeDebounce:          2 * time.Second,
		TickInterval:            100 * time.Millisecond,
		DefaultSearchMode:       SearchFuzzy,
		CleanOnExit:             true,
		Styles:                  style.Default(),
	}
}
