package refactor

// Action is a named refactoring with an ordered list of candidate rules.
// Candidates are tried independently: a failure in one never taints the
// next, and each starts evaluation from scratch.
//
// Actions are constructed fresh per invocation, together with their option
// instances; nothing here is meant to outlive one invocation.
type Action struct {
	name        string
	description string
	candidates  []Binding
}

// NewAction creates an action with candidates in the order they should be
// tried.
func NewAction(name, description string, candidates ...Binding) *Action {
	return &Action{
		name:        name,
		description: description,
		candidates:  candidates,
	}
}

func (a *Action) Name() string        { return a.name }
func (a *Action) Description() string { return a.description }

// Options returns every option any candidate may need, for upfront
// resolution. Instances shared between candidates are listed once, in
// declaration order.
func (a *Action) Options() []Option {
	seen := make(map[Option]struct{})
	var opts []Option
	for _, cand := range a.candidates {
		for _, opt := range cand.DeclaredOptions() {
			if _, ok := seen[opt]; ok {
				continue
			}
			seen[opt] = struct{}{}
			opts = append(opts, opt)
		}
	}
	return opts
}

// Invoke tries each candidate in declaration order and returns the rule
// constructed by the first one whose requirements all hold. When every
// candidate fails, the first candidate's failure is returned, since the
// leading candidate is the author's preferred shape of the action.
func (a *Action) Invoke(ctx *Context) (Rule, error) {
	var firstErr error
	for _, cand := range a.candidates {
		rule, err := cand.Evaluate(ctx)
		if err == nil {
			return rule, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		return nil, ErrNoRuleMatched
	}
	return nil, firstErr
}
