package refactor

import (
	"errors"
	"fmt"
)

// NoSelectionMessage is the fixed diagnostic for selection requirements
// evaluated without a usable selection.
const NoSelectionMessage = "refactoring action can't be initiated without a selection"

// ErrNoRuleMatched is returned by Action.Invoke when the action has no
// candidate rules at all.
var ErrNoRuleMatched = errors.New("no rule matched the invocation")

// NoSelectionError reports a selection requirement that found no valid
// selection in the context.
type NoSelectionError struct{}

func (*NoSelectionError) Error() string {
	return NoSelectionMessage
}

// OptionUnavailableError reports a required option the resolver left unset.
// The resolver is contracted to enforce required-ness before evaluation
// begins, so reaching this error means the embedding skipped that step. It
// is still a plain error value, distinguishable from an optional option
// being absent (which evaluates to an absent Maybe, not an error).
type OptionUnavailableError struct {
	Option string
}

func (e *OptionUnavailableError) Error() string {
	return fmt.Sprintf("required option %q was not resolved", e.Option)
}
