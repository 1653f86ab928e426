// Package refactor implements the requirement gate that decides whether a
// refactoring rule may run against the current invocation.
//
// # Purpose
//
//   - Model rule preconditions ("a range is selected", "option X was
//     supplied") as typed requirements that either extract a value or fail
//     with a precise reason.
//   - Share one option instance across every requirement and rule of an
//     action so each logical option is resolved exactly once.
//   - Bind an ordered requirement tuple to a rule constructor so that the
//     extracted values flow positionally into the rule, with value types
//     checked at compile time.
//
// # Scope
//
// Package refactor performs no option parsing, no prompting, and no file IO.
// Option resolution lives in internal/resolve; edit application lives in
// internal/edit; concrete rules live in internal/rules.
//
// # Data model
//
// Context is per-invocation state: a file set reference plus the selection
// span. It is filled during a setup phase and treated as read-only for the
// rest of the invocation; Evaluate never writes to it.
//
// Requirement[T] is the single-operation capability every requirement kind
// implements. SourceRangeSelectionRequirement extracts the selection;
// OptionRequirement and OptionalOptionRequirement extract option values.
// New requirement kinds are added as new types, no shared base state exists.
//
// Options carry a three-state lifecycle: unresolved (the resolver has not
// visited them), unset (visited, no value), and set. Requirements only read
// that state; the resolver owns the transitions and is contracted to enforce
// required-ness before evaluation begins.
//
// # Evaluation
//
// A Binding evaluates its requirements strictly left to right and stops at
// the first failure, returning that error verbatim. Rule construction is
// all-or-nothing: the constructor runs only after every requirement
// succeeded. An Action tries its candidate bindings independently, each from
// a fresh start.
//
// Evaluation is synchronous and side-effect free. Concurrent evaluation of
// several candidates against one Context is safe because nothing writes;
// separate invocations must use separate Contexts and separate Options.
package refactor
