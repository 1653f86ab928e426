package refactor

import (
	"testing"
)

func TestTypedOption_States(t *testing.T) {
	opt := NewOption[int]("limit", "cap", false)

	if opt.IsSet() {
		t.Fatalf("fresh option must not be set")
	}
	if _, ok := opt.Value(); ok {
		t.Fatalf("fresh option must not report a value")
	}

	opt.MarkUnset()
	if opt.IsSet() {
		t.Fatalf("unset option must not be set")
	}

	opt.Resolve(3)
	if !opt.IsSet() {
		t.Fatalf("resolved option must be set")
	}
	if v, ok := opt.Value(); !ok || v != 3 {
		t.Fatalf("Value() = %d, %v; expected 3, true", v, ok)
	}

	opt.MarkUnset()
	if v, ok := opt.Value(); ok || v != 0 {
		t.Fatalf("MarkUnset must clear the value, got %d, %v", v, ok)
	}
}

func TestOptionSet_InternSharesByName(t *testing.T) {
	set := NewOptionSet()

	first := Intern(set, NewOption[string]("new-name", "replacement", true))
	second := Intern(set, NewOption[string]("new-name", "replacement", true))

	if first != second {
		t.Fatalf("expected one shared instance per name")
	}

	first.Resolve("renamed")
	if v, ok := second.Value(); !ok || v != "renamed" {
		t.Fatalf("resolution must be visible through every holder, got %q, %v", v, ok)
	}

	if all := set.All(); len(all) != 1 {
		t.Fatalf("expected 1 registered option, got %d", len(all))
	}
}

func TestOptionSet_InternTypeMismatchPanics(t *testing.T) {
	set := NewOptionSet()
	Intern(set, NewOption[string]("limit", "", false))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on re-registration with a different type")
		}
	}()
	Intern(set, NewOption[int]("limit", "", false))
}
