// Package depmerge merges dependency manifests left conflicted by a
// version-control merge, rebase or cherry-pick.
//
// A Merger takes three revisions of a manifest (base, local and incoming),
// settles every package and reference entry it can decide on its own, and
// escalates the rest through a resolver chain ending in a fixed strategy or
// an interactive prompt. Runs over many manifests honour the two abort
// signals: a skipped manifest is recorded and the run continues, a quit
// stops the run.
//
// Example usage:
//
//	m, err := depmerge.New(
//	    depmerge.WithStrategy(constants.StrategyIncoming),
//	    depmerge.WithPins(map[string]string{"Newtonsoft.Json": "^13"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := m.MergeFiles(ctx, depmerge.Job{
//	    Base:     "base.yaml",
//	    Local:    "packages.yaml",
//	    Incoming: "theirs.yaml",
//	})
package depmerge

import (
	"github.com/agentstation/depmerge/pkg/constants"
	"github.com/agentstation/depmerge/pkg/manifest"
	"github.com/agentstation/depmerge/pkg/merge"
	"github.com/agentstation/depmerge/pkg/resolvers"
)

// Merger merges manifests with a fixed resolver configuration. It is not
// safe for concurrent use when the prompt strategy is selected.
type Merger struct {
	options *options
	hooks   *hooks

	// shared by every prompt of the run
	term *resolvers.Terminal

	packages      merge.Resolver[manifest.Package]
	packageDups   merge.DuplicateResolver[manifest.Package]
	references    merge.Resolver[manifest.Reference]
	referenceDups merge.DuplicateResolver[manifest.Reference]
}

// New creates a Merger.
func New(opts ...Option) (*Merger, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	m := &Merger{
		options: o,
		hooks:   newHooks(),
		term:    resolvers.NewTerminal(o.in, o.out),
	}

	if m.packages, m.packageDups, err = buildChain[manifest.Package](o, m.term, resolvers.StrictVersions); err != nil {
		return nil, err
	}
	if m.references, m.referenceDups, err = buildChain[manifest.Reference](o, m.term, resolvers.WildcardVersions); err != nil {
		return nil, err
	}
	return m, nil
}

// buildChain assembles the resolvers for one entry kind. Consulted in order:
// constraint pins, version-only, single valid candidate, then the terminal
// strategy or prompt.
func buildChain[T resolvers.Versioned[T]](o *options, term *resolvers.Terminal, compare resolvers.VersionComparer) (merge.Resolver[T], merge.DuplicateResolver[T], error) {
	var (
		terminal    merge.Resolver[T]
		dupTerminal merge.DuplicateResolver[T]
	)
	if o.strategy == constants.StrategyPrompt {
		terminal = resolvers.NewPrompt[T](term, nil)
		dupTerminal = resolvers.NewDuplicatePrompt[T](term, nil)
	} else {
		s, err := resolvers.NewStrategy[T](o.strategy)
		if err != nil {
			return nil, nil, err
		}
		ds, err := resolvers.NewDuplicateStrategy[T](o.strategy)
		if err != nil {
			return nil, nil, err
		}
		terminal, dupTerminal = s, ds
	}

	r := resolvers.Chain(terminal,
		resolvers.ValidCandidateWrapper[T](),
		resolvers.VersionOnlyWrapper[T](compare),
	)
	if len(o.pins) > 0 {
		r = resolvers.ConstraintPinWrapper[T](o.pins)(r)
	}
	dr := resolvers.ChainDuplicates(dupTerminal, resolvers.DuplicateVersionsWrapper[T](compare))
	return r, dr, nil
}
