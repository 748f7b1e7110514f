package resolvers

import (
	"context"

	"github.com/agentstation/depmerge/pkg/merge"
)

// Wrapper builds a resolver that falls back to next.
type Wrapper[T merge.Entry[T]] func(next merge.Resolver[T]) merge.Resolver[T]

// Chain wraps terminal with each wrapper in turn; the last wrapper is
// consulted first.
func Chain[T merge.Entry[T]](terminal merge.Resolver[T], wrappers ...Wrapper[T]) merge.Resolver[T] {
	r := terminal
	for _, w := range wrappers {
		r = w(r)
	}
	return r
}

// forward passes c on to next, or reports that nothing could decide it.
func forward[T merge.Entry[T]](ctx context.Context, next merge.Resolver[T], c merge.Conflict[T]) (merge.MergeResult[T], error) {
	if next == nil {
		return merge.MergeResult[T]{}, merge.ErrNoResolver
	}
	return next.Resolve(ctx, c)
}

// DuplicateWrapper builds a duplicate resolver that falls back to next.
type DuplicateWrapper[T merge.Entry[T]] func(next merge.DuplicateResolver[T]) merge.DuplicateResolver[T]

// ChainDuplicates is Chain for duplicate resolvers.
func ChainDuplicates[T merge.Entry[T]](terminal merge.DuplicateResolver[T], wrappers ...DuplicateWrapper[T]) merge.DuplicateResolver[T] {
	r := terminal
	for _, w := range wrappers {
		r = w(r)
	}
	return r
}

func forwardDuplicates[T merge.Entry[T]](ctx context.Context, next merge.DuplicateResolver[T], dc merge.DuplicateConflict[T]) (merge.MergeResult[T], error) {
	if next == nil {
		return merge.MergeResult[T]{}, merge.ErrNoResolver
	}
	return next.ResolveDuplicates(ctx, dc)
}
