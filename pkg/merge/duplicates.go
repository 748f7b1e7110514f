package merge

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// MergeAllDuplicates merges snapshots in which a key may be recorded more
// than once. Keys whose distinct values number at most one per snapshot are
// merged exactly like MergeAll, escalating to resolver. Real duplicates go
// to dupResolver, which receives the distinct values of each snapshot.
func MergeAllDuplicates[T Entry[T]](ctx context.Context, base, local, incoming map[string][]T, resolver Resolver[T], dupResolver DuplicateResolver[T], opts ...Option) ([]T, error) {
	results, err := MergeAllDuplicatesResults(ctx, base, local, incoming, resolver, dupResolver, opts...)
	if err != nil {
		return nil, err
	}
	return collect(results), nil
}

// MergeAllDuplicatesResults is MergeAllDuplicates returning the decision for
// every key.
func MergeAllDuplicatesResults[T Entry[T]](ctx context.Context, base, local, incoming map[string][]T, resolver Resolver[T], dupResolver DuplicateResolver[T], opts ...Option) ([]MergeResult[T], error) {
	o := newOptions(ctx, opts)

	keys := sortedKeys(base, local, incoming)
	results := make([]MergeResult[T], 0, len(keys))

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dc := DuplicateConflict[T]{
			Key:      key,
			Base:     distinct(base[key]),
			Local:    distinct(local[key]),
			Incoming: distinct(incoming[key]),
		}

		result, escalated, err := resolveDuplicates(ctx, dc, resolver, dupResolver, o.logger)
		if err != nil {
			return nil, err
		}

		o.report(key, resolution{
			Pattern:      result.Pattern,
			ResolvedWith: result.ResolvedWith,
			present:      result.Item.IsPresent(),
			escalated:    escalated,
		})
		results = append(results, result)
	}

	return results, nil
}

func resolveDuplicates[T Entry[T]](ctx context.Context, dc DuplicateConflict[T], resolver Resolver[T], dupResolver DuplicateResolver[T], log *zerolog.Logger) (MergeResult[T], bool, error) {
	if len(dc.Base) <= 1 && len(dc.Local) <= 1 && len(dc.Incoming) <= 1 {
		c := Conflict[T]{
			Key:      dc.Key,
			Base:     first(dc.Base),
			Local:    first(dc.Local),
			Incoming: first(dc.Incoming),
		}
		if !c.Base.IsPresent() && !c.Local.IsPresent() && !c.Incoming.IsPresent() {
			// key listed with empty collections everywhere
			return Deleted[T](dc.Key, NoChanges, SourceBase), false, nil
		}
		return resolveConflict(ctx, c, resolver, log)
	}

	if len(dc.Local) == 0 && len(dc.Incoming) == 0 {
		log.Debug().Str("key", dc.Key).Msg("Duplicate entries deleted on both sides")
		return Deleted[T](dc.Key, BothDeleted, SourceLocal|SourceIncoming), false, nil
	}

	if len(dc.Local) == 1 && len(dc.Incoming) == 1 && dc.Local[0].Equal(dc.Incoming[0]) && dc.Local[0].IsResolveOption() {
		pattern := BothAdded
		if len(dc.Base) > 0 {
			pattern = BothModified
		}
		log.Debug().
			Str("key", dc.Key).
			Stringer("pattern", pattern).
			Msg("Both sides converged on one of the duplicate entries")
		return Resolved(dc.Key, dc.Local[0], pattern, SourceLocal|SourceIncoming), false, nil
	}

	if dupResolver == nil {
		return MergeResult[T]{}, true, fmt.Errorf("merge duplicates %s: %w", dc.Key, ErrNoResolver)
	}

	log.Debug().
		Str("key", dc.Key).
		Int("base", len(dc.Base)).
		Int("local", len(dc.Local)).
		Int("incoming", len(dc.Incoming)).
		Msg("Escalating duplicate entries to resolver")

	result, err := dupResolver.ResolveDuplicates(ctx, dc)
	if err != nil {
		return MergeResult[T]{}, true, err
	}
	if err := validate(dc.Key, result); err != nil {
		return MergeResult[T]{}, true, err
	}
	if result.Key == "" {
		result.Key = dc.Key
	}
	return result, true, nil
}

// distinct returns the members of items that are not Equal to an earlier
// member, in their original order.
func distinct[T Entry[T]](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !contains(out, it) {
			out = append(out, it)
		}
	}
	return out
}
