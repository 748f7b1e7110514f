package resolvers

import (
	"context"

	"github.com/agentstation/depmerge/pkg/constants"
	"github.com/agentstation/depmerge/pkg/logging"
	"github.com/agentstation/depmerge/pkg/merge"
)

// VersionOnly settles conflicts where local and incoming differ only in their
// version by keeping the higher version.
type VersionOnly[T Versioned[T]] struct {
	next    merge.Resolver[T]
	compare VersionComparer
}

// NewVersionOnly returns a VersionOnly resolver comparing with compare and
// falling back to next.
func NewVersionOnly[T Versioned[T]](next merge.Resolver[T], compare VersionComparer) *VersionOnly[T] {
	if compare == nil {
		compare = StrictVersions
	}
	return &VersionOnly[T]{next: next, compare: compare}
}

// VersionOnlyWrapper is NewVersionOnly as a chain link.
func VersionOnlyWrapper[T Versioned[T]](compare VersionComparer) Wrapper[T] {
	return func(next merge.Resolver[T]) merge.Resolver[T] {
		return NewVersionOnly(next, compare)
	}
}

// Resolve implements merge.Resolver.
func (r *VersionOnly[T]) Resolve(ctx context.Context, c merge.Conflict[T]) (merge.MergeResult[T], error) {
	local, hasLocal := c.Local.Get()
	incoming, hasIncoming := c.Incoming.Get()
	if !hasLocal || !hasIncoming {
		return forward(ctx, r.next, c)
	}

	// replace local's version with incoming's; anything left over is a real
	// difference
	if !local.WithVersion(incoming.GetVersion()).Equal(incoming) {
		return forward(ctx, r.next, c)
	}

	cmp, ok := r.compare(local.GetVersion(), incoming.GetVersion())
	if !ok {
		logging.FromContext(ctx).Debug().
			Str("key", c.Key).
			Str(constants.LabelLocal, local.GetVersion()).
			Str(constants.LabelIncoming, incoming.GetVersion()).
			Msg("Versions not comparable, forwarding")
		return forward(ctx, r.next, c)
	}

	winner, side, source := local, constants.LabelLocal, merge.SourceLocal
	if cmp < 0 {
		winner, side, source = incoming, constants.LabelIncoming, merge.SourceIncoming
	}
	if !winner.IsResolveOption() {
		return forward(ctx, r.next, c)
	}

	logging.FromContext(ctx).Info().
		Str("rule", "version-only").
		Str("key", c.Key).
		Str("side", side).
		Str("version", winner.GetVersion()).
		Msg("Auto-resolved version-only conflict")

	return merge.Resolved(c.Key, winner, c.Pattern(), source), nil
}
