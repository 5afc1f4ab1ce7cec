/*
Package binder builds deferred actions: zero-argument callables that close over
an operation and an ordered list of argument sources.

A Source is either a literal value, a deferred thunk, a group of sources or
another Action. Building an Action performs no I/O; every source is resolved,
left to right and exactly once, each time the Action is invoked. This lets a
menu tree be declared once at startup while every prompt and validation runs
fresh when an item is chosen.

	reg := binder.NewRegistry()
	reg.Register(binder.OpSoftDelete, func(ctx context.Context, args []any) (any, error) {
		return nil, store.SoftDelete(ctx, args[0].(int64))
	})

	del := reg.Bind(binder.OpSoftDelete, askForID)
	err := del.Invoke(ctx) // askForID resolves now, then the target runs

Operations form a closed set (one variant per record store operation) so the
wiring can be checked exhaustively with Registry.Missing.
*/
package binder
