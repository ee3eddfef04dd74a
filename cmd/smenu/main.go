// Command smenu reads words from stdin and lets the user interactively
// select one or more of them, writing the selection to stdout. See
// SPEC_FULL.md for the full behavioral specification.
package main

import (
	"fmt"
	"os"

	"smenu/app"
	"smenu/config"
	"smenu/lexer"
	"smenu/reader"
	"smenu/word"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Default()

	if err := config.LoadINI(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	args, err := config.ParseCLI(&cfg, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	_ = args // smenu takes no positional operands beyond its options

	tbl, err := buildTable(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "smenu:", err)
		return 1
	}

	realStdout := os.Stdout
	return app.Run(&cfg, tbl, realStdout)
}

// buildTable runs the read -> tokenize -> word-table-build pipeline
// against stdin, the only input stream the core reads (spec §6).
func buildTable(cfg *config.Config) (*word.Table, error) {
	r := reader.New(os.Stdin, cfg.Substitute, cfg.ZappedGlyphs)
	lcfg := lexer.Config{
		WordSeparators:   runeSet(cfg.WordSeparators),
		RecordSeparators: runeSet(cfg.RecordSeparators),
		QuoteHandling:    cfg.QuoteHandling,
		Substitute:       cfg.Substitute,
		MaxTokenBytes:    cfg.MaxTokenBytes,
	}
	tok := lexer.New(r, lcfg)
	return word.NewBuilder(cfg, tok).Build()
}

func runeSet(rs []rune) map[rune]bool {
	m := make(map[rune]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return m
}
