// Package style defines the terminal attribute tuple applied by the
// renderer to a word, and the small set of named presets the core
// vocabulary (cursor, tag, search, special levels, ...) resolves to.
package style

// Attribute is the tuple of display attributes the renderer may apply
// to a run of glyphs. Each channel is independently optional; zero
// value means "don't touch this channel".
type Attribute struct {
	Fg        string
	Bg        string
	Bold      bool
	Dim       bool
	Reverse   bool
	Standout  bool
	Underline bool
	Italic    bool
}

// Merge layers child over parent: any channel child leaves at its zero
// value inherits from parent. Boolean channels OR together, matching
// the teacher's mergeStyles for nested markup spans.
func Merge(parent, child Attribute) Attribute {
	fg := child.Fg
	if fg == "" {
		fg = parent.Fg
	}
	bg := child.Bg
	if bg == "" {
		bg = parent.Bg
	}
	return Attribute{
		Fg:        fg,
		Bg:        bg,
		Bold:      parent.Bold || child.Bold,
		Dim:       parent.Dim || child.Dim,
		Reverse:   parent.Reverse || child.Reverse,
		Standout:  parent.Standout || child.Standout,
		Underline: parent.Underline || child.Underline,
		Italic:    parent.Italic || child.Italic,
	}
}

// ColorCode maps a color name to its ANSI foreground escape (background
// escape when background is true), the same
// closed palette the teacher's basement.GetColorCode exposes, extended
// with bright variants used by the five special levels.
func ColorCode(name string, background bool) string {
	base := 30
	if background {
		base = 40
	}
	idx, ok := colorIndex[name]
	if !ok {
		return ""
	}
	if idx >= 8 {
		// bright variants live in the 90/100 range
		return sgr(base+60, idx-8)
	}
	return sgr(base, idx)
}

var colorIndex = map[string]int{
	"black": 0, "red": 1, "green": 2, "yellow": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
	"grey": 8, "gray": 8, "bright-red": 9, "bright-green": 10,
	"bright-yellow": 11, "bright-blue": 12, "bright-magenta": 13,
	"bright-cyan": 14, "bright-white": 15,
}

func sgr(base, idx int) string {
	// e.g. base=30, idx=1 -> "\x1b[31m"
	return "\x1b[" + itoa(base+idx) + "m"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Preset names the closed set of display roles the renderer applies to
// a word, one per §4.8's attribute-set enumeration.
type Preset int

const (
	PresetNormal Preset = iota
	PresetCursor
	PresetTag
	PresetTagCursor
	PresetMatchField
	PresetMatchText
	PresetSearchField
	PresetSearchText
	PresetExclude
	PresetInclude
	PresetDaccess
	PresetSpecial1
	PresetSpecial2
	PresetSpecial3
	PresetSpecial4
	PresetSpecial5
)

// Table holds one Attribute per Preset; populated from configuration
// at startup with sane defaults, consulted by the renderer per word.
type Table map[Preset]Attribute

// Default returns the built-in attribute table used when the
// configuration (INI/CLI) does not override a role.
func Default() Table {
	return Table{
		PresetNormal:      {},
		PresetCursor:      {Reverse: true},
		PresetTag:         {Bold: true, Fg: ColorCode("yellow", false)},
		PresetTagCursor:   {Reverse: true, Bold: true},
		PresetMatchField:  {Underline: true},
		PresetMatchText:   {Bold: true, Fg: ColorCode("red", false)},
		PresetSearchField:  {Standout: true},
		PresetSearchText:  {Bold: true},
		PresetExclude:     {Dim: true},
		PresetInclude:     {},
		PresetDaccess:     {Fg: ColorCode("cyan", false)},
		PresetSpecial1:    {Fg: ColorCode("green", false)},
		PresetSpecial2:    {Fg: ColorCode("blue", false)},
		PresetSpecial3:    {Fg: ColorCode("magenta", false)},
		PresetSpecial4:    {Fg: ColorCode("cyan", false)},
		PresetSpecial5:    {Fg: ColorCode("yellow", false), Bold: true},
	}
}
