package binder

import "context"

// Source yields one argument value when an Action is invoked.
type Source interface {
	Resolve(ctx context.Context) (any, error)
}

// Thunk is a deferred source. The function runs on every resolution.
type Thunk func(ctx context.Context) (any, error)

// Resolve runs the thunk.
func (t Thunk) Resolve(ctx context.Context) (any, error) {
	return t(ctx)
}

// Defer wraps fn as a deferred source.
func Defer(fn func(ctx context.Context) (any, error)) Source {
	return Thunk(fn)
}

type literal struct {
	value any
}

func (l literal) Resolve(context.Context) (any, error) {
	return l.value, nil
}

// Literal returns a source that always yields v unchanged.
func Literal(v any) Source {
	return literal{value: v}
}

type group []Source

func (g group) Resolve(ctx context.Context) (any, error) {
	values := make([]any, len(g))
	for i, src := range g {
		v, err := src.Resolve(ctx)
		if err != nil {
			return nil, &ArgumentError{Index: i, Err: err}
		}
		values[i] = v
	}
	return values, nil
}

// Group bundles sources into one argument. It resolves each member in order
// and yields the results as a []any.
func Group(sources ...Source) Source {
	return group(sources)
}
