package refactor

import (
	"reshape/internal/edit"
)

// Rule is the product of a successful binding: a refactoring whose
// preconditions all held and whose inputs were injected through its
// constructor. Perform produces the text edits realising the refactoring.
type Rule interface {
	Name() string
	Perform(ctx *Context) ([]edit.TextEdit, error)
}

// Binding couples one candidate rule's ordered requirement tuple with its
// constructor. Evaluate walks the requirements strictly left to right,
// stops at the first failure and returns that error verbatim; only when
// every requirement succeeded does it invoke the constructor, passing the
// extracted values in declaration order. Declaration order is fixed by the
// rule author; there is no reordering or dependency inference.
type Binding interface {
	OptionsProvider
	Evaluate(ctx *Context) (Rule, error)
}

// Bind1 binds a single-requirement rule. The requirement's value type must
// match the constructor parameter; a mismatch does not compile.
func Bind1[A any](ra Requirement[A], construct func(A) Rule) Binding {
	return binding1[A]{ra: ra, construct: construct}
}

// Bind2 binds a two-requirement rule.
func Bind2[A, B any](ra Requirement[A], rb Requirement[B], construct func(A, B) Rule) Binding {
	return binding2[A, B]{ra: ra, rb: rb, construct: construct}
}

// Bind3 binds a three-requirement rule.
func Bind3[A, B, C any](ra Requirement[A], rb Requirement[B], rc Requirement[C], construct func(A, B, C) Rule) Binding {
	return binding3[A, B, C]{ra: ra, rb: rb, rc: rc, construct: construct}
}

// Bind4 binds a four-requirement rule.
func Bind4[A, B, C, D any](ra Requirement[A], rb Requirement[B], rc Requirement[C], rd Requirement[D], construct func(A, B, C, D) Rule) Binding {
	return binding4[A, B, C, D]{ra: ra, rb: rb, rc: rc, rd: rd, construct: construct}
}

type binding1[A any] struct {
	ra        Requirement[A]
	construct func(A) Rule
}

func (b binding1[A]) DeclaredOptions() []Option {
	return collectOptions(b.ra)
}

func (b binding1[A]) Evaluate(ctx *Context) (Rule, error) {
	va, err := b.ra.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return b.construct(va), nil
}

type binding2[A, B any] struct {
	ra        Requirement[A]
	rb        Requirement[B]
	construct func(A, B) Rule
}

func (b binding2[A, B]) DeclaredOptions() []Option {
	return collectOptions(b.ra, b.rb)
}

func (b binding2[A, B]) Evaluate(ctx *Context) (Rule, error) {
	va, err := b.ra.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	vb, err := b.rb.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return b.construct(va, vb), nil
}

type binding3[A, B, C any] struct {
	ra        Requirement[A]
	rb        Requirement[B]
	rc        Requirement[C]
	construct func(A, B, C) Rule
}

func (b binding3[A, B, C]) DeclaredOptions() []Option {
	return collectOptions(b.ra, b.rb, b.rc)
}

func (b binding3[A, B, C]) Evaluate(ctx *Context) (Rule, error) {
	va, err := b.ra.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	vb, err := b.rb.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	vc, err := b.rc.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return b.construct(va, vb, vc), nil
}

type binding4[A, B, C, D any] struct {
	ra        Requirement[A]
	rb        Requirement[B]
	rc        Requirement[C]
	rd        Requirement[D]
	construct func(A, B, C, D) Rule
}

func (b binding4[A, B, C, D]) DeclaredOptions() []Option {
	return collectOptions(b.ra, b.rb, b.rc, b.rd)
}

func (b binding4[A, B, C, D]) Evaluate(ctx *Context) (Rule, error) {
	va, err := b.ra.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	vb, err := b.rb.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	vc, err := b.rc.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	vd, err := b.rd.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return b.construct(va, vb, vc, vd), nil
}

// collectOptions gathers declared options from the requirements that have
// any; pure-selection requirements contribute nothing.
func collectOptions(reqs ...any) []Option {
	var opts []Option
	for _, r := range reqs {
		if provider, ok := r.(OptionsProvider); ok {
			opts = append(opts, provider.DeclaredOptions()...)
		}
	}
	return opts
}
