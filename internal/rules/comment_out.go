package rules

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"reshape/internal/edit"
	"reshape/internal/refactor"
	"reshape/internal/source"
)

const defaultMarker = "// "

// CommentOut builds the comment-out action: insert a comment marker at the
// start of every line the selection touches.
func CommentOut() *refactor.Action {
	opts := refactor.NewOptionSet()
	marker := refactor.Intern(opts, refactor.NewOption[string](
		"marker", "comment marker inserted before each selected line", false))

	return refactor.NewAction(
		"comment-out",
		"comment out every line the selection touches",
		refactor.Bind2(
			refactor.SourceRangeSelectionRequirement{},
			refactor.RequireOptional(marker),
			func(selection source.Span, marker refactor.Maybe[string]) refactor.Rule {
				return &commentOutRule{selection: selection, marker: marker}
			},
		),
	)
}

type commentOutRule struct {
	selection source.Span
	marker    refactor.Maybe[string]
}

func (r *commentOutRule) Name() string { return "comment-out" }

func (r *commentOutRule) Perform(ctx *refactor.Context) ([]edit.TextEdit, error) {
	marker := defaultMarker
	if r.marker.Present {
		marker = r.marker.Value
	}

	content := ctx.Files().Get(r.selection.File).Content

	var edits []edit.TextEdit
	pos := lineStart(content, r.selection.Start)
	for pos < r.selection.End {
		at := source.Span{File: r.selection.File, Start: pos, End: pos}
		edits = append(edits, edit.TextEdit{Span: at, NewText: marker})

		next := bytes.IndexByte(content[pos:], '\n')
		if next < 0 {
			break
		}
		step, err := safecast.Conv[uint32](next + 1)
		if err != nil {
			return nil, fmt.Errorf("comment-out: %w", err)
		}
		pos += step
	}
	return edits, nil
}

// lineStart returns the offset of the first byte of the line containing off.
func lineStart(content []byte, off uint32) uint32 {
	idx := bytes.LastIndexByte(content[:off], '\n')
	if idx < 0 {
		return 0
	}
	start, err := safecast.Conv[uint32](idx + 1)
	if err != nil {
		panic(fmt.Errorf("line start overflow: %w", err))
	}
	return start
}
