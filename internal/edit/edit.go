package edit

import (
	"errors"
	"fmt"
	"sort"

	"reshape/internal/source"
)

// TextEdit replaces the bytes of Span with NewText. A zero-length span is a
// pure insertion. OldText, when non-empty, is a guard checked against the
// buffer before applying.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// ErrNoEdits is returned when Apply is given nothing to do.
var ErrNoEdits = errors.New("no edits to apply")

// Apply applies edits to content and returns the new buffer. Edits must be
// within bounds, must not overlap, and must pass their OldText guards. The
// input slice and the edits slice are not modified.
//
// Edits are applied back to front so earlier offsets stay stable; callers
// may pass them in any order.
func Apply(content []byte, edits []TextEdit) ([]byte, error) {
	if len(edits) == 0 {
		return nil, ErrNoEdits
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start == sorted[j].Span.Start {
			return sorted[i].Span.End > sorted[j].Span.End
		}
		return sorted[i].Span.Start > sorted[j].Span.Start
	})

	for i := 1; i < len(sorted); i++ {
		// descending order: sorted[i] precedes sorted[i-1] in the buffer
		if Overlaps(sorted[i], sorted[i-1]) {
			return nil, fmt.Errorf("conflicting edits at %s and %s",
				sorted[i].Span, sorted[i-1].Span)
		}
	}

	out := append([]byte(nil), content...)
	for _, e := range sorted {
		start, end := int(e.Span.Start), int(e.Span.End)
		if end < start || end > len(content) {
			return nil, fmt.Errorf("edit span %s out of range", e.Span)
		}
		if e.OldText != "" && string(out[start:end]) != e.OldText {
			return nil, fmt.Errorf("edit at %s: existing text does not match expected content", e.Span)
		}
		suffix := append([]byte(nil), out[end:]...)
		out = append(append(out[:start], []byte(e.NewText)...), suffix...)
	}
	return out, nil
}

// Overlaps reports whether two edits' spans conflict. Spans are half-open
// [Start, End). Two zero-length edits never conflict; a zero-length edit
// conflicts with a non-zero span when its position lies inside that span.
func Overlaps(a, b TextEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}
