package resolvers

import (
	"context"

	"github.com/agentstation/depmerge/pkg/logging"
	"github.com/agentstation/depmerge/pkg/merge"
)

// DuplicateVersions settles duplicate entries that differ only in version
// by keeping the highest one. Every candidate from local and incoming must
// be a valid resolution and all versions must be comparable, otherwise the
// conflict is forwarded.
type DuplicateVersions[T Versioned[T]] struct {
	next    merge.DuplicateResolver[T]
	compare VersionComparer
}

// NewDuplicateVersions returns a DuplicateVersions falling back to next.
func NewDuplicateVersions[T Versioned[T]](next merge.DuplicateResolver[T], compare VersionComparer) *DuplicateVersions[T] {
	if compare == nil {
		compare = StrictVersions
	}
	return &DuplicateVersions[T]{next: next, compare: compare}
}

// DuplicateVersionsWrapper is NewDuplicateVersions as a chain link.
func DuplicateVersionsWrapper[T Versioned[T]](compare VersionComparer) DuplicateWrapper[T] {
	return func(next merge.DuplicateResolver[T]) merge.DuplicateResolver[T] {
		return NewDuplicateVersions(next, compare)
	}
}

// ResolveDuplicates implements merge.DuplicateResolver.
func (r *DuplicateVersions[T]) ResolveDuplicates(ctx context.Context, dc merge.DuplicateConflict[T]) (merge.MergeResult[T], error) {
	candidates := dc.Candidates()
	if len(candidates) == 0 {
		return forwardDuplicates(ctx, r.next, dc)
	}

	best := candidates[0]
	for _, c := range candidates {
		if !c.IsResolveOption() || !c.WithVersion(best.GetVersion()).Equal(best) {
			return forwardDuplicates(ctx, r.next, dc)
		}
	}
	for _, c := range candidates[1:] {
		cmp, ok := r.compare(c.GetVersion(), best.GetVersion())
		if !ok {
			return forwardDuplicates(ctx, r.next, dc)
		}
		if cmp > 0 {
			best = c
		}
	}

	var source merge.ResolutionSource
	for _, v := range dc.Local {
		if v.Equal(best) {
			source |= merge.SourceLocal
		}
	}
	for _, v := range dc.Incoming {
		if v.Equal(best) {
			source |= merge.SourceIncoming
		}
	}

	logging.FromContext(ctx).Info().
		Str("rule", "duplicate-versions").
		Str("key", dc.Key).
		Stringer("side", source).
		Str("version", best.GetVersion()).
		Int("candidates", len(candidates)).
		Msg("Auto-resolved duplicate entries to the highest version")

	return merge.Resolved(dc.Key, best, dc.Pattern(), source), nil
}
