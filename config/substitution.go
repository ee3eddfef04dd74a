package config

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// SubstRule is one `/regex/replacement/flags` sed-like rule from
// spec §4.3 and §6. It is adapted from the teacher's basement.go
// regex-substitution pipeline (ordered, precompiled regexes applied in
// passes) generalized to smenu's bucket/flag semantics instead of
// markup-to-ANSI translation.
type SubstRule struct {
	Pattern         *regexp.Regexp
	Replacement     string
	Global          bool
	VisualOnly      bool
	StopOnMatch     bool
	CaseInsensitive bool
}

// ParseSubstRule parses "/regex/replacement/flags" where the separator
// is the first character (must be graphic and non-digit), per spec §6.
func ParseSubstRule(s string) (SubstRule, error) {
	if len(s) < 2 {
		return SubstRule{}, errors.New("config: substitution rule too short")
	}
	sep := rune(s[0])
	if sep >= '0' && sep <= '9' {
		return SubstRule{}, errors.New("config: substitution separator cannot be a digit")
	}
	if sep <= ' ' || sep == 0x7f {
		return SubstRule{}, errors.New("config: substitution separator must be a graphic character")
	}
	parts := strings.Split(s[1:], string(sep))
	if len(parts) < 3 {
		return SubstRule{}, errors.Errorf("config: substitution rule %q missing parts", s)
	}
	pattern, replacement, flags := parts[0], parts[1], strings.Join(parts[2:], string(sep))

	rule := SubstRule{Replacement: replacement}
	for _, f := range flags {
		switch f {
		case 'g':
			rule.Global = true
		case 'v':
			rule.VisualOnly = true
		case 's':
			rule.StopOnMatch = true
		case 'i':
			rule.CaseInsensitive = true
		default:
			return SubstRule{}, errors.Errorf("config: unknown substitution flag %q", f)
		}
	}

	expr := pattern
	if rule.CaseInsensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return SubstRule{}, errors.Wrapf(err, "config: invalid substitution regex %q", pattern)
	}
	rule.Pattern = re
	return rule, nil
}

// Apply runs the rule against s, honoring Global (all matches vs. first
// only) and translating \1.."\9" and "&" backreferences in Replacement
// to Go's regexp ${n}/${0} syntax.
func (r SubstRule) Apply(s string) (result string, matched bool) {
	repl := translateBackrefs(r.Replacement)
	if r.Global {
		if !r.Pattern.MatchString(s) {
			return s, false
		}
		return r.Pattern.ReplaceAllString(s, repl), true
	}
	loc := r.Pattern.FindStringIndex(s)
	if loc == nil {
		return s, false
	}
	one := r.Pattern.ReplaceAllString(s[loc[0]:loc[1]], repl)
	return s[:loc[0]] + one + s[loc[1]:], true
}

// translateBackrefs turns \1-\9 and & into ${1}-${9} and ${0} for
// regexp.ReplaceAllString, escaping literal '$' along the way.
func translateBackrefs(repl string) string {
	var b strings.Builder
	for i := 0; i < len(repl); i++ {
		switch c := repl[i]; {
		case c == '$':
			b.WriteString("$$")
		case c == '&':
			b.WriteString("${0}")
		case c == '\\' && i+1 < len(repl) && repl[i+1] >= '1' && repl[i+1] <= '9':
			b.WriteString("${")
			b.WriteByte(repl[i+1])
			b.WriteString("}")
			i++
		case c == '\\' && i+1 < len(repl):
			b.WriteByte(repl[i+1])
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
