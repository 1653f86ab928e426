package rules

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"reshape/internal/edit"
	"reshape/internal/refactor"
	"reshape/internal/source"
)

// RenameOccurrences builds the rename action: the selection marks the name
// to replace, "new-name" supplies the replacement, and the optional "limit"
// caps how many occurrences are rewritten.
//
// Occurrence search is textual and file-local. That is deliberate: the
// point of this action is exercising the requirement tuple (selection +
// required option + optional option), not symbol resolution.
func RenameOccurrences() *refactor.Action {
	opts := refactor.NewOptionSet()
	newName := refactor.Intern(opts, refactor.NewOption[string](
		"new-name", "replacement for the selected name", true))
	limit := refactor.Intern(opts, refactor.NewOption[int](
		"limit", "replace at most this many occurrences", false))

	return refactor.NewAction(
		"rename-occurrences",
		"replace occurrences of the selected name",
		refactor.Bind3(
			refactor.SourceRangeSelectionRequirement{},
			refactor.RequireOption(newName),
			refactor.RequireOptional(limit),
			func(selection source.Span, newName string, limit refactor.Maybe[int]) refactor.Rule {
				return &renameRule{selection: selection, newName: newName, limit: limit}
			},
		),
	)
}

type renameRule struct {
	selection source.Span
	newName   string
	limit     refactor.Maybe[int]
}

func (r *renameRule) Name() string { return "rename-occurrences" }

func (r *renameRule) Perform(ctx *refactor.Context) ([]edit.TextEdit, error) {
	content := ctx.Files().Get(r.selection.File).Content
	oldName := string(r.selection.Text(content))
	if oldName == r.newName {
		return nil, fmt.Errorf("new name %q matches the current name", r.newName)
	}

	maxEdits := -1
	if r.limit.Present {
		if r.limit.Value < 1 {
			return nil, fmt.Errorf("limit must be positive, got %d", r.limit.Value)
		}
		maxEdits = r.limit.Value
	}

	nameLen, err := safecast.Conv[uint32](len(oldName))
	if err != nil {
		return nil, fmt.Errorf("rename: %w", err)
	}

	var edits []edit.TextEdit
	off := uint32(0)
	for maxEdits < 0 || len(edits) < maxEdits {
		idx := bytes.Index(content[off:], []byte(oldName))
		if idx < 0 {
			break
		}
		delta, err := safecast.Conv[uint32](idx)
		if err != nil {
			return nil, fmt.Errorf("rename: %w", err)
		}
		start := off + delta
		span := source.Span{File: r.selection.File, Start: start, End: start + nameLen}
		edits = append(edits, edit.TextEdit{Span: span, NewText: r.newName, OldText: oldName})
		off = span.End
	}
	return edits, nil
}
