package config

import "testing"

func TestSubstRuleBasicGlobal(t *testing.T) {
	rule, err := ParseSubstRule("/a/b/g")
	if err != nil {
		t.Fatal(err)
	}
	out, matched := rule.Apply("banana")
	if !matched || out != "bbnbnb" {
		t.Errorf("got %q matched=%v", out, matched)
	}
}

func TestSubstRuleFirstOnly(t *testing.T) {
	rule, err := ParseSubstRule("/a/b/")
	if err != nil {
		t.Fatal(err)
	}
	out, matched := rule.Apply("banana")
	if !matched || out != "bbnana" {
		t.Errorf("got %q matched=%v", out, matched)
	}
}

func TestSubstRuleBackreferenceAndAmpersand(t *testing.T) {
	rule, err := ParseSubstRule(`/(a)(n)/[\1\2]/g`)
	if err != nil {
		t.Fatal(err)
	}
	out, matched := rule.Apply("banana")
	if !matched {
		t.Fatal("expected match")
	}
	if out != "b[an][an]a" {
		t.Errorf("got %q", out)
	}

	whole, err := ParseSubstRule(`/an/<&>/g`)
	if err != nil {
		t.Fatal(err)
	}
	out2, _ := whole.Apply("banana")
	if out2 != "b<an><an>a" {
		t.Errorf("got %q", out2)
	}
}

func TestSubstRuleCaseInsensitive(t *testing.T) {
	rule, err := ParseSubstRule("/FOO/bar/i")
	if err != nil {
		t.Fatal(err)
	}
	out, matched := rule.Apply("foobar")
	if !matched || out != "barbar" {
		t.Errorf("got %q matched=%v", out, matched)
	}
}

func TestSubstRuleCustomSeparator(t *testing.T) {
	rule, err := ParseSubstRule("|/path|_path|g")
	if err != nil {
		t.Fatal(err)
	}
	out, matched := rule.Apply("/path/to/file")
	if !matched || out != "_path/to/file" {
		t.Errorf("got %q matched=%v", out, matched)
	}
}
