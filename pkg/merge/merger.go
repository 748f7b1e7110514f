package merge

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agentstation/depmerge/pkg/errors"
)

// ErrNoResolver is returned when a key needs escalation but no resolver was
// supplied.
var ErrNoResolver = errors.New("no resolver configured")

// MergeAll merges three keyed snapshots and returns the surviving entries
// ordered by key. Keys resolved to a deletion are omitted.
//
// The first error stops the merge: an InvalidResolutionError for a key that
// has no valid candidate, or whatever the resolver returned (including the
// AbortFile and AbortRun signals), unchanged.
func MergeAll[T Entry[T]](ctx context.Context, base, local, incoming map[string]T, resolver Resolver[T], opts ...Option) ([]T, error) {
	results, err := MergeAllResults(ctx, base, local, incoming, resolver, opts...)
	if err != nil {
		return nil, err
	}
	return collect(results), nil
}

// MergeAllResults is MergeAll returning the decision for every key, deletions
// included, in case-insensitive key order.
func MergeAllResults[T Entry[T]](ctx context.Context, base, local, incoming map[string]T, resolver Resolver[T], opts ...Option) ([]MergeResult[T], error) {
	o := newOptions(ctx, opts)

	keys := sortedKeys(base, local, incoming)
	results := make([]MergeResult[T], 0, len(keys))

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		conflict := Conflict[T]{
			Key:      key,
			Base:     lookup(base, key),
			Local:    lookup(local, key),
			Incoming: lookup(incoming, key),
		}

		result, escalated, err := resolveConflict(ctx, conflict, resolver, o.logger)
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

// ResolveConflict settles a single conflict with the same rules MergeAll
// applies to each key.
func ResolveConflict[T Entry[T]](ctx context.Context, conflict Conflict[T], resolver Resolver[T], opts ...Option) (MergeResult[T], error) {
	o := newOptions(ctx, opts)
	result, escalated, err := resolveConflict(ctx, conflict, resolver, o.logger)
	if err != nil {
		return MergeResult[T]{}, err
	}
	o.report(conflict.Key, resolution{
		Pattern:      result.Pattern,
		ResolvedWith: result.ResolvedWith,
		present:      result.Item.IsPresent(),
		escalated:    escalated,
	})
	return result, nil
}

// resolveConflict applies the resolution rules in priority order. The bool
// reports whether the resolver was consulted.
func resolveConflict[T Entry[T]](ctx context.Context, c Conflict[T], resolver Resolver[T], log *zerolog.Logger) (MergeResult[T], bool, error) {
	base, hasBase := c.Base.Get()
	local, hasLocal := c.Local.Get()
	incoming, hasIncoming := c.Incoming.Get()

	decided := func(r MergeResult[T], rule string) (MergeResult[T], bool, error) {
		log.Debug().
			Str("key", c.Key).
			Str("rule", rule).
			Stringer("pattern", r.Pattern).
			Stringer("source", r.ResolvedWith).
			Bool("deleted", r.IsDeleted()).
			Msg("Resolved key")
		return r, false, nil
	}
	escalate := func(pattern ChangePattern) (MergeResult[T], bool, error) {
		r, err := escalateConflict(ctx, c, pattern, resolver, log)
		return r, true, err
	}

	// Unchanged everywhere. Kept as-is even when not a resolve option.
	if hasBase && hasLocal && hasIncoming && base.Equal(local) && base.Equal(incoming) {
		return decided(Resolved(c.Key, base, NoChanges, SourceBase), "unchanged")
	}

	if !hasBase {
		switch {
		case hasLocal && hasIncoming:
			if local.Equal(incoming) {
				return decided(Resolved(c.Key, local, BothAdded, SourceLocal|SourceIncoming), "same-addition")
			}
			return escalate(BothAdded)
		case hasLocal:
			if local.IsResolveOption() {
				return decided(Resolved(c.Key, local, LocalAdded, SourceLocal), "local-addition")
			}
			return escalate(LocalAdded)
		case hasIncoming:
			if incoming.IsResolveOption() {
				return decided(Resolved(c.Key, incoming, IncomingAdded, SourceIncoming), "incoming-addition")
			}
			return escalate(IncomingAdded)
		default:
			return MergeResult[T]{}, false, &errors.ConflictError{Key: c.Key, Message: "base, local and incoming are all absent"}
		}
	}

	switch {
	case !hasLocal && !hasIncoming:
		return decided(Deleted[T](c.Key, BothDeleted, SourceLocal|SourceIncoming), "both-deleted")
	case !hasLocal:
		if incoming.Equal(base) {
			return decided(Deleted[T](c.Key, LocalDeleted, SourceLocal), "local-deleted")
		}
		return escalate(LocalDeleted | IncomingModified)
	case !hasIncoming:
		if local.Equal(base) {
			return decided(Deleted[T](c.Key, IncomingDeleted, SourceIncoming), "incoming-deleted")
		}
		return escalate(LocalModified | IncomingDeleted)
	}

	if local.Equal(incoming) {
		return decided(Resolved(c.Key, local, BothModified, SourceLocal|SourceIncoming), "same-modification")
	}

	localChanged := !base.Equal(local)
	incomingChanged := !base.Equal(incoming)
	switch {
	case !localChanged:
		return decided(Resolved(c.Key, incoming, IncomingModified, SourceIncoming), "incoming-modified")
	case !incomingChanged:
		return decided(Resolved(c.Key, local, LocalModified, SourceLocal), "local-modified")
	}

	localValid, incomingValid := local.IsResolveOption(), incoming.IsResolveOption()
	switch {
	case !localValid && !incomingValid:
		return MergeResult[T]{}, false, errors.NewInvalidResolutionError(c.Key, "", "neither local nor incoming value is a valid resolution")
	case !incomingValid:
		return decided(Resolved(c.Key, local, BothModified, SourceLocal), "only-valid-local")
	case !localValid:
		return decided(Resolved(c.Key, incoming, BothModified, SourceIncoming), "only-valid-incoming")
	}

	return escalate(BothModified)
}

// escalateConflict hands the conflict to the resolver and re-checks the
// value it chose.
func escalateConflict[T Entry[T]](ctx context.Context, c Conflict[T], pattern ChangePattern, resolver Resolver[T], log *zerolog.Logger) (MergeResult[T], error) {
	if resolver == nil {
		return MergeResult[T]{}, fmt.Errorf("merge %s (%s): %w", c.Key, pattern, ErrNoResolver)
	}

	log.Debug().
		Str("key", c.Key).
		Stringer("pattern", pattern).
		Msg("Escalating conflict to resolver")

	result, err := resolver.Resolve(ctx, c)
	if err != nil {
		return MergeResult[T]{}, err
	}

	if err := validate(c.Key, result); err != nil {
		return MergeResult[T]{}, err
	}
	if result.Key == "" {
		result.Key = c.Key
	}
	return result, nil
}

// validate rejects a resolver result holding a value that is not a resolve
// option. Deletions and NoChanges results are accepted as-is.
func validate[T Entry[T]](key string, result MergeResult[T]) error {
	if result.Pattern == NoChanges {
		return nil
	}
	v, ok := result.Item.Get()
	if !ok || v.IsResolveOption() {
		return nil
	}
	return errors.NewInvalidResolutionError(key, result.ResolvedWith.String(), "resolver chose a value that is not a valid resolution")
}

// collect returns the present items of results sorted by their own key.
func collect[T Entry[T]](results []MergeResult[T]) []T {
	items := make([]T, 0, len(results))
	for _, r := range results {
		if v, ok := r.Item.Get(); ok {
			items = append(items, v)
		}
	}
	sortByKey(items)
	return items
}
