package binder

import "context"

// Action is a deferred call of an operation. It is itself a Source, so
// actions nest: an inner Action runs when the outer one resolves its arguments.
type Action struct {
	op       Operation
	args     []Source
	registry *Registry
}

// Operation returns the operation this Action targets.
func (a *Action) Operation() Operation {
	return a.op
}

// Arity returns the number of argument sources.
func (a *Action) Arity() int {
	return len(a.args)
}

// Resolve evaluates every argument source left to right, stopping at the first
// failure, then runs the target and returns its result.
func (a *Action) Resolve(ctx context.Context) (any, error) {
	values := make([]any, len(a.args))
	for i, src := range a.args {
		v, err := src.Resolve(ctx)
		if err != nil {
			return nil, &ArgumentError{Op: a.op, Index: i, Err: err}
		}
		values[i] = v
	}
	return a.registry.Execute(ctx, a.op, values)
}

// Invoke fires the Action, discarding the target's result.
func (a *Action) Invoke(ctx context.Context) error {
	_, err := a.Resolve(ctx)
	return err
}
