package resolvers

import (
	"context"
	"fmt"
	"slices"

	"github.com/agentstation/depmerge/pkg/constants"
	"github.com/agentstation/depmerge/pkg/errors"
	"github.com/agentstation/depmerge/pkg/logging"
	"github.com/agentstation/depmerge/pkg/merge"
)

// Strategies lists the non-interactive strategies.
var Strategies = []string{
	constants.StrategyLocal,
	constants.StrategyIncoming,
	constants.StrategyBase,
	constants.StrategyFail,
}

// ValidateStrategy checks that name is a known strategy, interactive
// included.
func ValidateStrategy(name string) error {
	if name == constants.StrategyPrompt || slices.Contains(Strategies, name) {
		return nil
	}
	return errors.NewValidationError("strategy", name,
		fmt.Sprintf("must be one of %s, %v", constants.StrategyPrompt, Strategies))
}

// Strategy is a terminal resolver that always takes the same side. Taking an
// absent side deletes the key. The fail strategy skips the manifest.
type Strategy[T merge.Entry[T]] struct {
	strategy string
}

// NewStrategy returns a Strategy resolver for one of Strategies.
func NewStrategy[T merge.Entry[T]](strategy string) (*Strategy[T], error) {
	if !slices.Contains(Strategies, strategy) {
		return nil, errors.NewValidationError("strategy", strategy,
			fmt.Sprintf("must be one of %v", Strategies))
	}
	return &Strategy[T]{strategy: strategy}, nil
}

// Resolve implements merge.Resolver.
func (s *Strategy[T]) Resolve(ctx context.Context, c merge.Conflict[T]) (merge.MergeResult[T], error) {
	var (
		side   merge.Optional[T]
		source merge.ResolutionSource
	)
	switch s.strategy {
	case constants.StrategyLocal:
		side, source = c.Local, merge.SourceLocal
	case constants.StrategyIncoming:
		side, source = c.Incoming, merge.SourceIncoming
	case constants.StrategyBase:
		side, source = c.Base, merge.SourceBase
	default:
		return merge.MergeResult[T]{}, errors.AbortFile(
			fmt.Sprintf("unresolved conflict on %s (%s)", c.Key, c.Pattern()))
	}

	logging.FromContext(ctx).Info().
		Str("rule", "strategy").
		Str("key", c.Key).
		Str("side", s.strategy).
		Bool("deleted", !side.IsPresent()).
		Msg("Resolved conflict by strategy")

	if v, ok := side.Get(); ok {
		return merge.Resolved(c.Key, v, c.Pattern(), source), nil
	}
	return merge.Deleted[T](c.Key, c.Pattern(), source), nil
}

// DuplicateStrategy is the duplicate-aware Strategy: it keeps the first valid
// member of the chosen side, or deletes the key when that side is empty.
type DuplicateStrategy[T merge.Entry[T]] struct {
	strategy string
}

// NewDuplicateStrategy returns a DuplicateStrategy for one of Strategies.
func NewDuplicateStrategy[T merge.Entry[T]](strategy string) (*DuplicateStrategy[T], error) {
	if !slices.Contains(Strategies, strategy) {
		return nil, errors.NewValidationError("strategy", strategy,
			fmt.Sprintf("must be one of %v", Strategies))
	}
	return &DuplicateStrategy[T]{strategy: strategy}, nil
}

// ResolveDuplicates implements merge.DuplicateResolver.
func (s *DuplicateStrategy[T]) ResolveDuplicates(ctx context.Context, dc merge.DuplicateConflict[T]) (merge.MergeResult[T], error) {
	var (
		side   []T
		source merge.ResolutionSource
	)
	switch s.strategy {
	case constants.StrategyLocal:
		side, source = dc.Local, merge.SourceLocal
	case constants.StrategyIncoming:
		side, source = dc.Incoming, merge.SourceIncoming
	case constants.StrategyBase:
		side, source = dc.Base, merge.SourceBase
	default:
		return merge.MergeResult[T]{}, errors.AbortFile(
			fmt.Sprintf("unresolved duplicate entries for %s", dc.Key))
	}

	if len(side) == 0 {
		return merge.Deleted[T](dc.Key, dc.Pattern(), source), nil
	}
	for _, v := range side {
		if v.IsResolveOption() {
			logging.FromContext(ctx).Info().
				Str("rule", "strategy").
				Str("key", dc.Key).
				Str("side", s.strategy).
				Int("candidates", len(side)).
				Msg("Resolved duplicate entries by strategy")
			return merge.Resolved(dc.Key, v, dc.Pattern(), source), nil
		}
	}
	return merge.MergeResult[T]{}, errors.NewInvalidResolutionError(dc.Key, source.String(), "no valid entry on the chosen side")
}
