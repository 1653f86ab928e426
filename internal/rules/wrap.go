package rules

import (
	"reshape/internal/edit"
	"reshape/internal/refactor"
	"reshape/internal/source"
)

// Wrap builds the wrap action: surround the selection with a required
// prefix and suffix.
func Wrap() *refactor.Action {
	opts := refactor.NewOptionSet()
	prefix := refactor.Intern(opts, refactor.NewOption[string](
		"prefix", "text inserted before the selection", true))
	suffix := refactor.Intern(opts, refactor.NewOption[string](
		"suffix", "text inserted after the selection", true))

	return refactor.NewAction(
		"wrap",
		"surround the selection with a prefix and a suffix",
		refactor.Bind3(
			refactor.SourceRangeSelectionRequirement{},
			refactor.RequireOption(prefix),
			refactor.RequireOption(suffix),
			func(selection source.Span, prefix, suffix string) refactor.Rule {
				return &wrapRule{selection: selection, prefix: prefix, suffix: suffix}
			},
		),
	)
}

type wrapRule struct {
	selection source.Span
	prefix    string
	suffix    string
}

func (r *wrapRule) Name() string { return "wrap" }

func (r *wrapRule) Perform(*refactor.Context) ([]edit.TextEdit, error) {
	before := source.Span{File: r.selection.File, Start: r.selection.Start, End: r.selection.Start}
	after := source.Span{File: r.selection.File, Start: r.selection.End, End: r.selection.End}
	return []edit.TextEdit{
		{Span: before, NewText: r.prefix},
		{Span: after, NewText: r.suffix},
	}, nil
}
