package depmerge

import (
	"context"

	"github.com/agentstation/depmerge/pkg/constants"
	"github.com/agentstation/depmerge/pkg/errors"
	"github.com/agentstation/depmerge/pkg/logging"
	"github.com/agentstation/depmerge/pkg/manifest"
	"github.com/agentstation/depmerge/pkg/merge"
	"github.com/agentstation/depmerge/pkg/resolvers"
)

// MergeSnapshots merges three revisions of the manifest called name. The
// report is filled even when an error is returned.
func (m *Merger) MergeSnapshots(ctx context.Context, name string, base, local, incoming *manifest.Snapshot) (*manifest.Snapshot, *Report, error) {
	report := newReport(name)
	out, err := m.mergeSnapshots(ctx, report, base, local, incoming)
	report.finish(statusOf(err), err)
	m.hooks.report(report)
	if err != nil {
		return nil, report, err
	}
	return out, report, nil
}

func (m *Merger) mergeSnapshots(ctx context.Context, report *Report, base, local, incoming *manifest.Snapshot) (*manifest.Snapshot, error) {
	ctx = logging.WithLogger(ctx, m.options.logger)
	ctx = logging.WithManifest(ctx, report.Manifest)

	out := &manifest.Snapshot{
		Packages:   local.Packages,
		References: local.References,
	}

	var err error
	if m.options.kind != constants.KindReferences {
		out.Packages, err = mergeKind(logging.WithKind(ctx, constants.KindPackages), m, report, constants.KindPackages,
			base.Packages, local.Packages, incoming.Packages, m.packages, m.packageDups)
		if err != nil {
			return nil, err
		}
	}
	if m.options.kind != constants.KindPackages {
		out.References, err = mergeKind(logging.WithKind(ctx, constants.KindReferences), m, report, constants.KindReferences,
			base.References, local.References, incoming.References, m.references, m.referenceDups)
		if err != nil {
			return nil, err
		}
	}

	logging.FromContext(ctx).Info().
		Int("packages", len(out.Packages)).
		Int("references", len(out.References)).
		Int("decisions", len(report.Decisions)).
		Msg("Manifest merged")
	return out, nil
}

// mergeKind merges one entry kind, taking the duplicate-aware path when any
// revision records a key twice.
func mergeKind[T resolvers.Versioned[T]](ctx context.Context, m *Merger, report *Report, kind string, base, local, incoming []T, r merge.Resolver[T], dr merge.DuplicateResolver[T]) ([]T, error) {
	reporter := merge.ReporterFunc(func(d merge.Decision) {
		report.Decisions = append(report.Decisions, Decision{Kind: kind, Decision: d})
		m.hooks.decision(report.Manifest, kind, d)
	})
	opts := []merge.Option{merge.WithReporter(reporter), merge.WithLogger(logging.FromContext(ctx))}

	if manifest.HasDuplicateKeys(base) || manifest.HasDuplicateKeys(local) || manifest.HasDuplicateKeys(incoming) {
		logging.FromContext(ctx).Debug().Msg("Duplicate keys present, using duplicate-aware merge")
		return merge.MergeAllDuplicates(ctx,
			manifest.GroupByKey(base), manifest.GroupByKey(local), manifest.GroupByKey(incoming),
			r, dr, opts...)
	}
	return merge.MergeAll(ctx,
		manifest.IndexByKey(base), manifest.IndexByKey(local), manifest.IndexByKey(incoming),
		r, opts...)
}

// statusOf maps a merge error to the manifest outcome.
func statusOf(err error) Status {
	switch {
	case err == nil:
		return StatusMerged
	case errors.IsAbortRun(err):
		return StatusAborted
	case errors.IsAbortFile(err), errors.IsInvalidResolution(err):
		return StatusSkipped
	default:
		return StatusFailed
	}
}
