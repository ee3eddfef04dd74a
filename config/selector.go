package config

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Range is one comma-separated clause of a Selector: a single position,
// an inclusive position range, or a regex, each carrying its own
// include/exclude vote per spec §6's selector grammar.
type Range struct {
	Include bool
	Regex   *regexp.Regexp
	From    int // 1-based inclusive
	To      int // 1-based inclusive; equals From for a single position
}

// Selector is a parsed `[i|e]<range>(,<range>)*` expression used for
// both row and column include/exclude filters.
type Selector struct {
	Ranges []Range
}

// ParseSelector parses the grammar described in spec §6: a leading
// digit implies include ("i").
func ParseSelector(s string) (Selector, error) {
	var sel Selector
	for _, clause := range strings.Split(s, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		r, err := parseRange(clause)
		if err != nil {
			return Selector{}, errors.Wrapf(err, "config: bad selector clause %q", clause)
		}
		sel.Ranges = append(sel.Ranges, r)
	}
	return sel, nil
}

func parseRange(clause string) (Range, error) {
	include := true
	switch {
	case strings.HasPrefix(clause, "i"):
		include = true
		clause = clause[1:]
	case strings.HasPrefix(clause, "e"):
		include = false
		clause = clause[1:]
	}

	if strings.HasPrefix(clause, "/") && strings.HasSuffix(clause, "/") && len(clause) >= 2 {
		pattern := clause[1 : len(clause)-1]
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Range{}, errors.Wrapf(err, "invalid regex %q", pattern)
		}
		return Range{Include: include, Regex: re}, nil
	}

	if dash := strings.IndexByte(clause, '-'); dash > 0 {
		from, err := strconv.Atoi(clause[:dash])
		if err != nil {
			return Range{}, errors.Wrapf(err, "invalid range start %q", clause[:dash])
		}
		to, err := strconv.Atoi(clause[dash+1:])
		if err != nil {
			return Range{}, errors.Wrapf(err, "invalid range end %q", clause[dash+1:])
		}
		return Range{Include: include, From: from, To: to}, nil
	}

	n, err := strconv.Atoi(clause)
	if err != nil {
		return Range{}, errors.Wrapf(err, "invalid selector value %q", clause)
	}
	return Range{Include: include, From: n, To: n}, nil
}

// Vote reports whether pos/text matches any clause of the selector and,
// if so, the include/exclude verdict of the LAST matching clause (later
// clauses override earlier ones on the same selector, matching the
// builder's "later rules can upgrade/downgrade" precedence in §4.3).
func (s Selector) Vote(pos int, text string) (matched bool, include bool) {
	for _, r := range s.Ranges {
		if r.Regex != nil {
			if r.Regex.MatchString(text) {
				matched, include = true, r.Include
			}
			continue
		}
		if pos >= r.From && pos <= r.To {
			matched, include = true, r.Include
		}
	}
	return matched, include
}

// Empty reports whether the selector carries no clauses (i.e. was
// never configured).
func (s Selector) Empty() bool { return len(s.Ranges) == 0 }
