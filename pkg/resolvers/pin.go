package resolvers

import (
	"context"

	"golang.org/x/text/cases"

	"github.com/agentstation/depmerge/pkg/constants"
	"github.com/agentstation/depmerge/pkg/logging"
	"github.com/agentstation/depmerge/pkg/merge"
	"github.com/agentstation/depmerge/pkg/version"
)

// ConstraintPin settles conflicts on pinned keys: when exactly one present
// side satisfies the key's semver constraint, that side wins.
type ConstraintPin[T Versioned[T]] struct {
	next merge.Resolver[T]
	pins map[string]string
}

// NewConstraintPin returns a ConstraintPin with pins mapping keys to
// constraints such as "~1.2" or ">=2.0, <3". Keys match case-insensitively.
func NewConstraintPin[T Versioned[T]](next merge.Resolver[T], pins map[string]string) *ConstraintPin[T] {
	folded := make(map[string]string, len(pins))
	for k, v := range pins {
		folded[foldKey(k)] = v
	}
	return &ConstraintPin[T]{next: next, pins: folded}
}

func foldKey(key string) string {
	return cases.Fold().String(key)
}

// ConstraintPinWrapper is NewConstraintPin as a chain link.
func ConstraintPinWrapper[T Versioned[T]](pins map[string]string) Wrapper[T] {
	return func(next merge.Resolver[T]) merge.Resolver[T] {
		return NewConstraintPin(next, pins)
	}
}

// Resolve implements merge.Resolver.
func (r *ConstraintPin[T]) Resolve(ctx context.Context, c merge.Conflict[T]) (merge.MergeResult[T], error) {
	constraint, ok := r.pins[foldKey(c.Key)]
	if !ok {
		return forward(ctx, r.next, c)
	}

	log := logging.FromContext(ctx)
	satisfies := func(o merge.Optional[T]) bool {
		v, ok := o.Get()
		if !ok || !v.IsResolveOption() {
			return false
		}
		parsed, err := version.Parse(v.GetVersion())
		if err != nil {
			return false
		}
		match, err := version.Satisfies(parsed, constraint)
		if err != nil {
			log.Debug().Err(err).Str("key", c.Key).Msg("Pin not applicable")
			return false
		}
		return match
	}

	localOK, incomingOK := satisfies(c.Local), satisfies(c.Incoming)

	var (
		winner T
		side   string
		source merge.ResolutionSource
	)
	switch {
	case localOK && !incomingOK:
		winner, side, source = c.Local.Value(), constants.LabelLocal, merge.SourceLocal
	case incomingOK && !localOK:
		winner, side, source = c.Incoming.Value(), constants.LabelIncoming, merge.SourceIncoming
	default:
		return forward(ctx, r.next, c)
	}

	log.Info().
		Str("rule", "constraint-pin").
		Str("key", c.Key).
		Str("constraint", constraint).
		Str("side", side).
		Msg("Auto-resolved by pinned constraint")

	return merge.Resolved(c.Key, winner, c.Pattern(), source), nil
}
