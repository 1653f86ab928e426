package refactor

import (
	"reshape/internal/source"
)

// Requirement is a typed precondition-and-extractor. Evaluate inspects the
// context and either produces the value that will be passed to the rule
// constructor or fails with the reason the rule cannot run.
//
// Evaluate must be a pure read: no Context or Option mutation, and repeated
// calls against an unchanged Context yield the same result.
type Requirement[T any] interface {
	Evaluate(ctx *Context) (T, error)
}

// OptionsProvider is implemented by requirements that read options. The
// dispatcher uses it to collect every option a candidate rule may need so
// the resolver can validate the full set before evaluation starts.
type OptionsProvider interface {
	DeclaredOptions() []Option
}

// SourceRangeSelectionRequirement is satisfied when any portion of the
// source is selected; it evaluates to the selection span verbatim.
//
// Requirements that need a more specific selection (inside a declaration,
// covering a full statement, ...) are separate types implementing
// Requirement[source.Span]; nothing here is meant to be embedded.
type SourceRangeSelectionRequirement struct{}

func (SourceRangeSelectionRequirement) Evaluate(ctx *Context) (source.Span, error) {
	if ctx.HasValidSelection() {
		return ctx.SelectionRange(), nil
	}
	return source.NoSpan, &NoSelectionError{}
}

// OptionRequirement evaluates to the value of a required option. It does
// not re-validate required-ness; the resolver already did. An unset option
// at this point surfaces as OptionUnavailableError.
type OptionRequirement[T any] struct {
	opt *TypedOption[T]
}

// RequireOption adapts a required option into the evaluation pipeline. The
// option pointer is shared: hand the same instance to every requirement
// that names the same logical option.
func RequireOption[T any](opt *TypedOption[T]) OptionRequirement[T] {
	return OptionRequirement[T]{opt: opt}
}

func (r OptionRequirement[T]) DeclaredOptions() []Option {
	return []Option{r.opt}
}

func (r OptionRequirement[T]) Evaluate(*Context) (T, error) {
	value, ok := r.opt.Value()
	if !ok {
		var zero T
		return zero, &OptionUnavailableError{Option: r.opt.Name()}
	}
	return value, nil
}

// Maybe wraps an optional option value. Present is false when the resolver
// visited the option and found no value.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Some wraps a present value.
func Some[T any](value T) Maybe[T] {
	return Maybe[T]{Value: value, Present: true}
}

// OptionalOptionRequirement evaluates to Maybe[T]. Absence of an optional
// option is a legitimate extracted value, never a failure.
type OptionalOptionRequirement[T any] struct {
	opt *TypedOption[T]
}

// RequireOptional adapts an optional option into the evaluation pipeline.
func RequireOptional[T any](opt *TypedOption[T]) OptionalOptionRequirement[T] {
	return OptionalOptionRequirement[T]{opt: opt}
}

func (r OptionalOptionRequirement[T]) DeclaredOptions() []Option {
	return []Option{r.opt}
}

func (r OptionalOptionRequirement[T]) Evaluate(*Context) (Maybe[T], error) {
	value, ok := r.opt.Value()
	if !ok {
		return Maybe[T]{}, nil
	}
	return Some(value), nil
}
