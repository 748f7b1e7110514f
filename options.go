package depmerge

import (
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"

	"github.com/agentstation/depmerge/pkg/constants"
	"github.com/agentstation/depmerge/pkg/errors"
	"github.com/agentstation/depmerge/pkg/logging"
	"github.com/agentstation/depmerge/pkg/resolvers"
)

// Option is a function that configures a Merger.
type Option func(*options) error

// options holds the Merger configuration.
type options struct {
	kind     string
	strategy string
	pins     map[string]string
	in       io.Reader
	out      io.Writer
	logger   *zerolog.Logger
}

func defaults() *options {
	return &options{
		kind:     constants.DefaultKind,
		strategy: constants.DefaultStrategy,
		in:       os.Stdin,
		out:      os.Stderr,
	}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.logger == nil {
		o.logger = logging.Default()
	}
	return o, nil
}

// Kinds lists the accepted manifest kinds.
var Kinds = []string{constants.KindPackages, constants.KindReferences, constants.KindAll}

// WithKind limits merging to package entries, reference entries or both.
// Entries of an excluded kind are taken from the local revision unchanged.
func WithKind(kind string) Option {
	return func(o *options) error {
		if !slices.Contains(Kinds, kind) {
			return errors.NewValidationError("kind", kind, "must be one of packages, references, all")
		}
		o.kind = kind
		return nil
	}
}

// WithStrategy selects the terminal resolver: prompt, local, incoming, base
// or fail.
func WithStrategy(strategy string) Option {
	return func(o *options) error {
		if err := resolvers.ValidateStrategy(strategy); err != nil {
			return err
		}
		o.strategy = strategy
		return nil
	}
}

// WithPins sets semver constraints per key. A conflict on a pinned key where
// exactly one side satisfies the constraint resolves to that side.
func WithPins(pins map[string]string) Option {
	return func(o *options) error {
		o.pins = pins
		return nil
	}
}

// WithConsole sets where the prompt reads answers and writes questions.
// Defaults to stdin and stderr.
func WithConsole(in io.Reader, out io.Writer) Option {
	return func(o *options) error {
		o.in = in
		o.out = out
		return nil
	}
}

// WithLogger sets the logger for the run.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
