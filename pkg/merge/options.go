package merge

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/depmerge/pkg/logging"
)

// Decision summarizes how one key was settled. It is handed to a Reporter
// after every key.
type Decision struct {
	Key       string           `json:"key" yaml:"key"`
	Pattern   ChangePattern    `json:"pattern" yaml:"pattern"`
	Source    ResolutionSource `json:"source" yaml:"source"`
	Escalated bool             `json:"escalated" yaml:"escalated"`
	Deleted   bool             `json:"deleted" yaml:"deleted"`
}

// Reporter observes decisions as the engine makes them.
type Reporter interface {
	Report(Decision)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Decision)

// Report implements Reporter.
func (f ReporterFunc) Report(d Decision) {
	f(d)
}

// Option configures a merge run.
type Option func(*options)

type options struct {
	logger   *zerolog.Logger
	reporter Reporter
}

// WithLogger sets the logger used for per-key decisions. By default the
// logger stored in the context is used.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithReporter registers an observer for every decision.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

func newOptions(ctx context.Context, opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.FromContext(ctx)
	}
	return o
}

func (o *options) report(key string, r resolution) {
	if o.reporter == nil {
		return
	}
	o.reporter.Report(Decision{
		Key:       key,
		Pattern:   r.Pattern,
		Source:    r.ResolvedWith,
		Escalated: r.escalated,
		Deleted:   !r.present,
	})
}

// resolution is the type-erased view of a MergeResult used for reporting.
type resolution struct {
	Pattern      ChangePattern
	ResolvedWith ResolutionSource
	present      bool
	escalated    bool
}
