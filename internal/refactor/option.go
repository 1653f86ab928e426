package refactor

import (
	"fmt"
)

type resolveState uint8

const (
	optionUnresolved resolveState = iota // resolver has not visited the option
	optionUnset                          // visited, no value supplied
	optionSet
)

// Option is the untyped view of a configurable input. Concrete values live
// in TypedOption; requirements and rules hold the same instance by pointer,
// so one logical option is resolved once no matter how many rules need it.
type Option interface {
	Name() string
	Description() string
	Required() bool
	// IsSet reports whether the resolver stored a concrete value.
	IsSet() bool
	// MarkUnset records that the resolver visited the option and found no
	// value. Only the resolver calls this, and only during the setup phase.
	MarkUnset()
}

// TypedOption carries one value of type T together with its resolve state.
type TypedOption[T any] struct {
	name        string
	description string
	required    bool
	state       resolveState
	value       T
}

// NewOption creates an unresolved option.
func NewOption[T any](name, description string, required bool) *TypedOption[T] {
	return &TypedOption[T]{
		name:        name,
		description: description,
		required:    required,
	}
}

func (o *TypedOption[T]) Name() string        { return o.name }
func (o *TypedOption[T]) Description() string { return o.description }
func (o *TypedOption[T]) Required() bool      { return o.required }

func (o *TypedOption[T]) IsSet() bool {
	return o.state == optionSet
}

// Resolve stores the concrete value. Resolving twice overwrites; the
// resolver visits each option once, so that only happens in tests.
func (o *TypedOption[T]) Resolve(value T) {
	o.value = value
	o.state = optionSet
}

func (o *TypedOption[T]) MarkUnset() {
	var zero T
	o.value = zero
	o.state = optionUnset
}

// Value returns the resolved value and whether one was stored.
func (o *TypedOption[T]) Value() (T, bool) {
	return o.value, o.state == optionSet
}

// OptionSet interns options by name so every rule of one action that names
// the same logical option shares a single instance and therefore a single
// resolution. One OptionSet serves one action within one invocation.
type OptionSet struct {
	byName map[string]Option
	order  []Option
}

// NewOptionSet creates an empty OptionSet.
func NewOptionSet() *OptionSet {
	return &OptionSet{byName: make(map[string]Option)}
}

// All returns the interned options in registration order.
func (s *OptionSet) All() []Option {
	return s.order
}

// Intern returns the option already registered under opt's name, or
// registers opt and returns it. Re-registering a name with a different
// concrete type is a wiring fault and panics.
func Intern[T any](set *OptionSet, opt *TypedOption[T]) *TypedOption[T] {
	if existing, ok := set.byName[opt.Name()]; ok {
		typed, ok := existing.(*TypedOption[T])
		if !ok {
			panic(fmt.Sprintf("option %q re-registered with a different type", opt.Name()))
		}
		return typed
	}
	set.byName[opt.Name()] = opt
	set.order = append(set.order, opt)
	return opt
}
