package binder

import (
	"context"
	"errors"
	"fmt"
)

// ErrOperationNotRegistered is returned when an Action fires for an operation
// that has no target.
var ErrOperationNotRegistered = errors.New("operation not registered")

// Target implements an operation. It receives the resolved arguments of the
// Action in construction order.
type Target func(ctx context.Context, args []any) (any, error)

// Registry maps operations to their targets.
type Registry struct {
	targets map[Operation]Target
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[Operation]Target),
	}
}

// Register sets the target of op, replacing any previous one.
func (r *Registry) Register(op Operation, fn Target) {
	r.targets[op] = fn
}

// Execute runs the target of op with already resolved arguments.
func (r *Registry) Execute(ctx context.Context, op Operation, args []any) (any, error) {
	fn, ok := r.targets[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOperationNotRegistered, op)
	}
	return fn(ctx, args)
}

// Missing lists the declared operations that have no target yet.
func (r *Registry) Missing() []Operation {
	var missing []Operation
	for _, op := range Operations() {
		if _, ok := r.targets[op]; !ok {
			missing = append(missing, op)
		}
	}
	return missing
}

// Bind builds a deferred Action. Nothing is resolved or executed until the
// Action is invoked; the target itself is looked up at that point too.
func (r *Registry) Bind(op Operation, args ...Source) *Action {
	return &Action{
		op:       op,
		args:     append([]Source(nil), args...),
		registry: r,
	}
}
