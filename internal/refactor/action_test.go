package refactor

import (
	"errors"
	"testing"

	"reshape/internal/source"
)

func TestAction_InvokeTriesCandidatesInOrder(t *testing.T) {
	ctx, _ := newTestContext(t, "0123456789")
	// no selection, so the selection-based candidate fails

	fallback := NewOption[string]("target", "", true)
	fallback.Resolve("whole-file")

	action := NewAction("demo", "",
		Bind1(
			SourceRangeSelectionRequirement{},
			func(source.Span) Rule { return &stubRule{count: 1} },
		),
		Bind1(
			RequireOption(fallback),
			func(string) Rule { return &stubRule{count: 2} },
		),
	)

	rule, err := action.Invoke(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule.(*stubRule).count != 2 {
		t.Fatalf("expected the second candidate's rule, got %d", rule.(*stubRule).count)
	}
}

func TestAction_InvokeReturnsFirstCandidateFailure(t *testing.T) {
	ctx, _ := newTestContext(t, "0123456789")

	unresolved := NewOption[string]("target", "", true)
	unresolved.MarkUnset()

	action := NewAction("demo", "",
		Bind1(
			SourceRangeSelectionRequirement{},
			func(source.Span) Rule { return &stubRule{} },
		),
		Bind1(
			RequireOption(unresolved),
			func(string) Rule { return &stubRule{} },
		),
	)

	_, err := action.Invoke(ctx)
	var noSel *NoSelectionError
	if !errors.As(err, &noSel) {
		t.Fatalf("expected the leading candidate's NoSelectionError, got %v", err)
	}
}

func TestAction_InvokeWithoutCandidates(t *testing.T) {
	ctx, _ := newTestContext(t, "")

	_, err := NewAction("empty", "").Invoke(ctx)
	if !errors.Is(err, ErrNoRuleMatched) {
		t.Fatalf("expected ErrNoRuleMatched, got %v", err)
	}
}

func TestAction_OptionsListsSharedInstancesOnce(t *testing.T) {
	set := NewOptionSet()
	name := Intern(set, NewOption[string]("new-name", "", true))
	limit := Intern(set, NewOption[int]("limit", "", false))

	// both candidates name the same logical options
	action := NewAction("demo", "",
		Bind2(
			RequireOption(name),
			RequireOptional(limit),
			func(string, Maybe[int]) Rule { return &stubRule{} },
		),
		Bind1(
			RequireOption(name),
			func(string) Rule { return &stubRule{} },
		),
	)

	opts := action.Options()
	if len(opts) != 2 {
		t.Fatalf("expected 2 distinct options, got %d", len(opts))
	}
	if opts[0] != Option(name) || opts[1] != Option(limit) {
		t.Fatalf("expected declaration order new-name, limit; got %v", opts)
	}
}

func TestAction_CandidatesStartFresh(t *testing.T) {
	ctx, id := newTestContext(t, "0123456789abcdefghij")
	ctx.SetSelection(source.Span{File: id, Start: 10, End: 20})

	var calls1, calls2 int
	boom := errors.New("boom")

	action := NewAction("demo", "",
		Bind2(
			stubRequirement[int]{value: 1, calls: &calls1},
			stubRequirement[string]{err: boom, calls: &calls2},
			func(int, string) Rule { return &stubRule{} },
		),
		Bind1(
			SourceRangeSelectionRequirement{},
			func(span source.Span) Rule { return &stubRule{span: span} },
		),
	)

	rule, err := action.Invoke(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule.(*stubRule).span != (source.Span{File: id, Start: 10, End: 20}) {
		t.Fatalf("second candidate did not see the selection: %v", rule.(*stubRule).span)
	}
	if calls1 != 1 || calls2 != 1 {
		t.Fatalf("first candidate must have been tried once: %d, %d", calls1, calls2)
	}
}
