// Package rules registers the built-in refactoring actions and their
// requirement tuples.
//
// Actions and their option instances are created fresh per invocation:
// options are shared between the candidates of one action, never across
// invocations.
package rules

import (
	"errors"
	"fmt"

	"reshape/internal/refactor"
)

// ErrUnknownAction is wrapped by Lookup for unregistered action names.
var ErrUnknownAction = errors.New("unknown action")

// Builtin returns fresh instances of every registered action.
func Builtin() []*refactor.Action {
	return []*refactor.Action{
		CommentOut(),
		Wrap(),
		RenameOccurrences(),
	}
}

// Lookup returns a fresh instance of the named action.
func Lookup(name string) (*refactor.Action, error) {
	for _, action := range Builtin() {
		if action.Name() == name {
			return action, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
