package config

import (
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// CLIOptions is the struct-tag-driven option set parsed by
// github.com/jessevdk/go-flags, mirrored after peco's CLIOptions. This
// is the option-parsing collaborator spec §1 places outside the core;
// ParseCLI below is its only contract with the rest of the program —
// a populated Config.
type CLIOptions struct {
	OptWindowHeight   int    `short:"l" long:"lines" description:"number of lines in the selection window"`
	OptWordSeparators string `short:"s" long:"word-separators" description:"word separator characters"`
	OptRecordSeparator string `short:"t" long:"record-separator" description:"record separator character"`
	OptQuoting        bool   `short:"q" long:"quote" description:"honor quoting in the input stream"`
	OptTagMode        bool   `short:"n" long:"tag" description:"enable tagging (multi-selection)"`
	OptPinMode        bool   `long:"pin" description:"tagging with stable insertion order"`
	OptAutoTag        bool   `long:"auto-tag" description:"tag the current word if nothing is tagged on accept"`
	OptTagSeparator   string `long:"tag-separator" description:"separator written between tagged words"`
	OptColumnMode     bool   `short:"c" long:"column-mode" description:"lay words out preserving column widths"`
	OptLineMode       bool   `long:"line-mode" description:"lay words out preserving records without padding"`
	OptTabMode        bool   `long:"tab-mode" description:"lay words out honoring record boundaries and max columns"`
	OptWide           bool   `long:"wide" description:"stretch columns to the terminal width"`
	OptCenter         bool   `long:"center" description:"center the window horizontally"`
	OptDirectAccess   string `short:"a" long:"direct-access" description:"'auto' or 'positional' direct access numbering"`
	OptKeepSpaces     bool   `long:"keep-spaces" description:"don't trim leading/trailing blanks from the emitted word"`
	OptTimeoutWord    string `long:"timeout-word" description:"WORD SECONDS: emit WORD after SECONDS of inactivity"`
	OptInterruptString string `long:"interrupt-string" description:"string printed on SIGINT before exit"`
	OptVersion        bool   `short:"V" long:"version" description:"print version and exit"`
}

// ParseCLI parses argv (excluding argv[0]) into cfg, returning the
// remaining positional arguments.
func ParseCLI(cfg *Config, argv []string) ([]string, error) {
	var opts CLIOptions
	parser := flags.NewParser(&opts, flags.Default)
	rest, err := parser.ParseArgs(argv)
	if err != nil {
		return nil, errors.Wrap(err, "config: failed to parse command-line options")
	}

	if opts.OptWindowHeight > 0 {
		cfg.WindowHeight = opts.OptWindowHeight
	}
	if opts.OptWordSeparators != "" {
		cfg.WordSeparators = []rune(opts.OptWordSeparators)
	}
	if opts.OptRecordSeparator != "" {
		cfg.RecordSeparators = []rune(opts.OptRecordSeparator)
	}
	cfg.QuoteHandling = cfg.QuoteHandling || opts.OptQuoting
	cfg.TagMode = cfg.TagMode || opts.OptTagMode
	cfg.PinMode = cfg.PinMode || opts.OptPinMode
	if cfg.PinMode {
		cfg.TagMode = true
	}
	cfg.AutoTag = cfg.AutoTag || opts.OptAutoTag
	if opts.OptTagSeparator != "" {
		cfg.TagSeparator = opts.OptTagSeparator
	}

	switch {
	case opts.OptColumnMode:
		cfg.LayoutMode = LayoutColumn
	case opts.OptLineMode:
		cfg.LayoutMode = LayoutLine
	case opts.OptTabMode:
		cfg.LayoutMode = LayoutTab
	}
	cfg.Wide = cfg.Wide || opts.OptWide
	cfg.Center = cfg.Center || opts.OptCenter

	switch opts.OptDirectAccess {
	case "auto":
		cfg.DirectAccessMode = DirectAccessAuto
	case "positional":
		cfg.DirectAccessMode = DirectAccessPositional
	}

	cfg.KeepSpaces = cfg.KeepSpaces || opts.OptKeepSpaces

	if opts.OptTimeoutWord != "" {
		word, seconds, perr := parseTimeoutWord(opts.OptTimeoutWord)
		if perr != nil {
			return nil, perr
		}
		cfg.TimeoutMode = TimeoutWord
		cfg.TimeoutWord = word
		cfg.TimeoutSeconds = seconds
	}

	if opts.OptInterruptString != "" {
		cfg.InterruptString = opts.OptInterruptString
	}

	return rest, nil
}

func parseTimeoutWord(s string) (word string, seconds int, err error) {
	var secStr string
	idx := lastSpace(s)
	if idx < 0 {
		return "", 0, errors.New("config: --timeout-word requires \"WORD SECONDS\"")
	}
	word, secStr = s[:idx], s[idx+1:]
	d, perr := time.ParseDuration(secStr + "s")
	if perr != nil {
		return "", 0, errors.Wrapf(perr, "config: invalid timeout seconds %q", secStr)
	}
	return word, int(d.Seconds()), nil
}

func lastSpace(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' {
			return i
		}
	}
	return -1
}
