package rules

import (
	"errors"
	"testing"

	"reshape/internal/edit"
	"reshape/internal/refactor"
	"reshape/internal/resolve"
	"reshape/internal/source"
)

// run pushes an action through the full gate: resolve options, invoke, and
// apply the produced edits to the file buffer.
func run(t *testing.T, action *refactor.Action, content string, selection source.Span, opts map[string]string) (string, error) {
	t.Helper()

	fs := source.NewFileSet()
	id := fs.AddVirtual("test.txt", []byte(content))

	ctx := refactor.NewContext(fs)
	if selection != source.NoSpan {
		selection.File = id
		ctx.SetSelection(selection)
	}

	if err := resolve.Resolve(action.Options(), resolve.Config{}, opts); err != nil {
		return "", err
	}

	rule, err := action.Invoke(ctx)
	if err != nil {
		return "", err
	}
	edits, err := rule.Perform(ctx)
	if err != nil {
		return "", err
	}
	updated, err := edit.Apply(fs.Get(id).Content, edits)
	if err != nil {
		return "", err
	}
	return string(updated), nil
}

func TestLookup(t *testing.T) {
	action, err := Lookup("wrap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action.Name() != "wrap" {
		t.Fatalf("Lookup returned %q", action.Name())
	}

	if _, err := Lookup("fold"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestCommentOut(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		selection source.Span
		opts      map[string]string
		expected  string
	}{
		{
			name:      "single line with default marker",
			content:   "first\nsecond\nthird\n",
			selection: source.Span{Start: 6, End: 12},
			expected:  "first\n// second\nthird\n",
		},
		{
			name:      "selection covering two lines",
			content:   "first\nsecond\nthird\n",
			selection: source.Span{Start: 2, End: 9},
			expected:  "// first\n// second\nthird\n",
		},
		{
			name:      "custom marker option",
			content:   "alpha\nbeta\n",
			selection: source.Span{Start: 0, End: 5},
			opts:      map[string]string{"marker": "# "},
			expected:  "# alpha\nbeta\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, CommentOut(), tt.content, tt.selection, tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Fatalf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestCommentOut_NoSelection(t *testing.T) {
	_, err := run(t, CommentOut(), "first\n", source.NoSpan, nil)
	var noSel *refactor.NoSelectionError
	if !errors.As(err, &noSel) {
		t.Fatalf("expected NoSelectionError, got %v", err)
	}
}

func TestWrap(t *testing.T) {
	got, err := run(t, Wrap(), "value + 1", source.Span{Start: 0, End: 5},
		map[string]string{"prefix": "cached(", "suffix": ")"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "cached(value) + 1" {
		t.Fatalf("got %q", got)
	}
}

func TestWrap_MissingRequiredOption(t *testing.T) {
	_, err := run(t, Wrap(), "value", source.Span{Start: 0, End: 5},
		map[string]string{"prefix": "("})
	if err == nil {
		t.Fatalf("expected resolution to fail without suffix")
	}
}

func TestRenameOccurrences(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		selection source.Span
		opts      map[string]string
		expected  string
		wantErr   bool
	}{
		{
			name:      "every occurrence",
			content:   "x = x + x",
			selection: source.Span{Start: 0, End: 1},
			opts:      map[string]string{"new-name": "total"},
			expected:  "total = total + total",
		},
		{
			name:      "limit caps replacements",
			content:   "x = x + x",
			selection: source.Span{Start: 0, End: 1},
			opts:      map[string]string{"new-name": "total", "limit": "2"},
			expected:  "total = total + x",
		},
		{
			name:      "same name fails",
			content:   "x = x",
			selection: source.Span{Start: 0, End: 1},
			opts:      map[string]string{"new-name": "x"},
			wantErr:   true,
		},
		{
			name:      "non-positive limit fails",
			content:   "x = x",
			selection: source.Span{Start: 0, End: 1},
			opts:      map[string]string{"new-name": "y", "limit": "0"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, RenameOccurrences(), tt.content, tt.selection, tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Fatalf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestBuiltinActionsAreFreshPerCall(t *testing.T) {
	first := Wrap()
	second := Wrap()

	if first == second {
		t.Fatalf("actions must be fresh per invocation")
	}

	firstOpts := first.Options()
	secondOpts := second.Options()
	if len(firstOpts) != 2 || len(secondOpts) != 2 {
		t.Fatalf("expected 2 options per wrap action")
	}
	// option sharing is scoped to one action, never across invocations
	if firstOpts[0] == secondOpts[0] {
		t.Fatalf("option instances must not be shared across invocations")
	}
}
