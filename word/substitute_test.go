package word

import (
	"testing"

	"smenu/config"
)

func mustRule(t *testing.T, s string) config.SubstRule {
	t.Helper()
	r, err := config.ParseSubstRule(s)
	if err != nil {
		t.Fatalf("ParseSubstRule(%q): %v", s, err)
	}
	return r
}

func TestApplySubstitutionsVisualOnlyKeepsOriginal(t *testing.T) {
	cfg := config.Default()
	r := mustRule(t, "/secret/****/gv")
	cfg.SubstIncluded = []config.SubstRule{r}

	display, original := applySubstitutions(&cfg, Included, "secret")
	if display != "****" {
		t.Errorf("display = %q, want ****", display)
	}
	if original != "secret" {
		t.Errorf("original = %q, want secret (unchanged)", original)
	}
}

func TestApplySubstitutionsNonVisualChangesOriginal(t *testing.T) {
	cfg := config.Default()
	r := mustRule(t, "/foo/bar/g")
	cfg.SubstAll = []config.SubstRule{r}

	display, original := applySubstitutions(&cfg, Included, "foofoo")
	if display != "barbar" || original != "barbar" {
		t.Errorf("got display=%q original=%q, want both barbar", display, original)
	}
}

func TestApplySubstitutionsBucketSelection(t *testing.T) {
	cfg := config.Default()
	cfg.SubstIncluded = []config.SubstRule{mustRule(t, "/x/I/g")}
	cfg.SubstExcluded = []config.SubstRule{mustRule(t, "/x/E/g")}

	dispInc, _ := applySubstitutions(&cfg, Included, "x")
	if dispInc != "I" {
		t.Errorf("included bucket: got %q, want I", dispInc)
	}
	dispExc, _ := applySubstitutions(&cfg, Excluded, "x")
	if dispExc != "E" {
		t.Errorf("excluded bucket: got %q, want E", dispExc)
	}
}

func TestBlankNonprintableReplacesControlBytes(t *testing.T) {
	cfg := config.Default()
	cfg.BlankNonprintable = true

	display, _ := applySubstitutions(&cfg, Included, "a\x01b")
	if display != "a^Ab" {
		t.Errorf("got %q, want a^Ab", display)
	}
}
