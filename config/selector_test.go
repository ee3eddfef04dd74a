package config

import "testing"

func TestParseSelectorRangeAndDigitImpliesInclude(t *testing.T) {
	sel, err := ParseSelector("2-4,7")
	if err != nil {
		t.Fatal(err)
	}
	if len(sel.Ranges) != 2 {
		t.Fatalf("got %d ranges", len(sel.Ranges))
	}
	for _, r := range sel.Ranges {
		if !r.Include {
			t.Errorf("range %+v should default to include", r)
		}
	}
	if matched, _ := sel.Vote(3, "x"); !matched {
		t.Errorf("expected position 3 to match 2-4")
	}
	if matched, _ := sel.Vote(5, "x"); matched {
		t.Errorf("position 5 should not match")
	}
}

func TestParseSelectorExcludeAndRegex(t *testing.T) {
	sel, err := ParseSelector(`e/^foo/,i3`)
	if err != nil {
		t.Fatal(err)
	}
	matched, include := sel.Vote(1, "foobar")
	if !matched || include {
		t.Errorf("expected exclude match on regex, got matched=%v include=%v", matched, include)
	}
	matched, include = sel.Vote(3, "bar")
	if !matched || !include {
		t.Errorf("expected include match on position 3")
	}
}

func TestLaterClauseOverridesEarlier(t *testing.T) {
	sel, err := ParseSelector("i1-10,e5")
	if err != nil {
		t.Fatal(err)
	}
	matched, include := sel.Vote(5, "x")
	if !matched || include {
		t.Errorf("expected later exclusion of position 5 to win, got include=%v", include)
	}
	matched, include = sel.Vote(2, "x")
	if !matched || !include {
		t.Errorf("position 2 should remain included")
	}
}
