package refactor

import (
	"reshape/internal/source"
)

// Context holds the per-invocation state requirements evaluate against: the
// loaded files and the selection span, if any.
//
// A Context is filled during a setup phase (selection assignment, option
// resolution) and must not be mutated once evaluation starts. Requirements
// only read it. One Context serves one invocation; parallel invocations need
// their own Contexts and their own option instances.
type Context struct {
	files     *source.FileSet
	selection source.Span
}

// NewContext creates a Context without a selection.
func NewContext(files *source.FileSet) *Context {
	return &Context{
		files:     files,
		selection: source.NoSpan,
	}
}

// Files returns the file set backing this invocation.
func (c *Context) Files() *source.FileSet {
	return c.files
}

// SetSelection records the selection for this invocation. The span is
// stored as given, including invalid ones; validity is judged at
// evaluation time so that selection requirements can report the absence.
func (c *Context) SetSelection(span source.Span) {
	c.selection = span
}

// SelectionRange returns the recorded selection, NoSpan when none was set.
func (c *Context) SelectionRange() source.Span {
	return c.selection
}

// HasValidSelection reports whether the recorded selection is an ordered,
// non-empty range inside its file's buffer.
func (c *Context) HasValidSelection() bool {
	span := c.selection
	if !span.Valid() {
		return false
	}
	if c.files == nil {
		return false
	}
	file := c.files.Get(span.File)
	return file != nil && int(span.End) <= len(file.Content)
}
