package merge

import "context"

// Resolver decides a conflict the engine could not settle on its own.
//
// Implementations may block (prompting a user, running a tool). They signal
// cancellation by returning errors.AbortFile or errors.AbortRun; the engine
// passes every error through unchanged.
type Resolver[T Entry[T]] interface {
	Resolve(ctx context.Context, conflict Conflict[T]) (MergeResult[T], error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc[T Entry[T]] func(ctx context.Context, conflict Conflict[T]) (MergeResult[T], error)

// Resolve implements Resolver.
func (f ResolverFunc[T]) Resolve(ctx context.Context, conflict Conflict[T]) (MergeResult[T], error) {
	return f(ctx, conflict)
}

// DuplicateResolver decides a key recorded several times in a snapshot. It
// must return a single surviving value or a deletion.
type DuplicateResolver[T Entry[T]] interface {
	ResolveDuplicates(ctx context.Context, conflict DuplicateConflict[T]) (MergeResult[T], error)
}

// DuplicateResolverFunc adapts a function to the DuplicateResolver interface.
type DuplicateResolverFunc[T Entry[T]] func(ctx context.Context, conflict DuplicateConflict[T]) (MergeResult[T], error)

// ResolveDuplicates implements DuplicateResolver.
func (f DuplicateResolverFunc[T]) ResolveDuplicates(ctx context.Context, conflict DuplicateConflict[T]) (MergeResult[T], error) {
	return f(ctx, conflict)
}
