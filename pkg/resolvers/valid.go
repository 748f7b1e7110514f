package resolvers

import (
	"context"

	"github.com/agentstation/depmerge/pkg/constants"
	"github.com/agentstation/depmerge/pkg/logging"
	"github.com/agentstation/depmerge/pkg/merge"
)

// ValidCandidate picks the only present local/incoming value that is a valid
// resolution.
type ValidCandidate[T merge.Entry[T]] struct {
	next merge.Resolver[T]
}

// NewValidCandidate returns a ValidCandidate falling back to next.
func NewValidCandidate[T merge.Entry[T]](next merge.Resolver[T]) *ValidCandidate[T] {
	return &ValidCandidate[T]{next: next}
}

// ValidCandidateWrapper is NewValidCandidate as a chain link.
func ValidCandidateWrapper[T merge.Entry[T]]() Wrapper[T] {
	return func(next merge.Resolver[T]) merge.Resolver[T] {
		return NewValidCandidate(next)
	}
}

// Resolve implements merge.Resolver.
func (r *ValidCandidate[T]) Resolve(ctx context.Context, c merge.Conflict[T]) (merge.MergeResult[T], error) {
	local, hasLocal := c.Local.Get()
	incoming, hasIncoming := c.Incoming.Get()
	localValid := hasLocal && local.IsResolveOption()
	incomingValid := hasIncoming && incoming.IsResolveOption()

	var (
		winner T
		side   string
		source merge.ResolutionSource
	)
	switch {
	case localValid && !incomingValid:
		winner, side, source = local, constants.LabelLocal, merge.SourceLocal
	case incomingValid && !localValid:
		winner, side, source = incoming, constants.LabelIncoming, merge.SourceIncoming
	default:
		return forward(ctx, r.next, c)
	}

	logging.FromContext(ctx).Info().
		Str("rule", "valid-candidate").
		Str("key", c.Key).
		Str("side", side).
		Msg("Auto-resolved to the only valid candidate")

	return merge.Resolved(c.Key, winner, c.Pattern(), source), nil
}
