package merge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/depmerge/pkg/errors"
	"github.com/agentstation/depmerge/pkg/logging"
	"github.com/agentstation/depmerge/pkg/merge"
)

func snapshot(entries ...dep) map[string]dep {
	m := make(map[string]dep, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return m
}

func TestMergeAllAutomaticRules(t *testing.T) {
	a, b, c := v("P", "1.0"), v("P", "1.1"), v("P", "1.2")
	missing := dep{ID: "P", Version: "2.0", Missing: true}

	tests := []struct {
		name       string
		base       map[string]dep
		local      map[string]dep
		incoming   map[string]dep
		want       []dep
		wantPat    merge.ChangePattern
		wantSource merge.ResolutionSource
	}{
		{
			name: "unchanged", base: snapshot(a), local: snapshot(a), incoming: snapshot(a),
			want: []dep{a}, wantPat: merge.NoChanges, wantSource: merge.SourceBase,
		},
		{
			name: "unchanged invalid value kept", base: snapshot(missing), local: snapshot(missing), incoming: snapshot(missing),
			want: []dep{missing}, wantPat: merge.NoChanges, wantSource: merge.SourceBase,
		},
		{
			name: "same addition", base: snapshot(), local: snapshot(a), incoming: snapshot(a),
			want: []dep{a}, wantPat: merge.BothAdded, wantSource: merge.SourceLocal | merge.SourceIncoming,
		},
		{
			name: "local addition", base: snapshot(), local: snapshot(a), incoming: snapshot(),
			want: []dep{a}, wantPat: merge.LocalAdded, wantSource: merge.SourceLocal,
		},
		{
			name: "incoming addition", base: snapshot(), local: snapshot(), incoming: snapshot(b),
			want: []dep{b}, wantPat: merge.IncomingAdded, wantSource: merge.SourceIncoming,
		},
		{
			name: "both deleted", base: snapshot(a), local: snapshot(), incoming: snapshot(),
			want: []dep{}, wantPat: merge.BothDeleted, wantSource: merge.SourceLocal | merge.SourceIncoming,
		},
		{
			name: "local deleted", base: snapshot(a), local: snapshot(), incoming: snapshot(a),
			want: []dep{}, wantPat: merge.LocalDeleted, wantSource: merge.SourceLocal,
		},
		{
			name: "incoming deleted", base: snapshot(a), local: snapshot(a), incoming: snapshot(),
			want: []dep{}, wantPat: merge.IncomingDeleted, wantSource: merge.SourceIncoming,
		},
		{
			name: "same modification", base: snapshot(a), local: snapshot(b), incoming: snapshot(b),
			want: []dep{b}, wantPat: merge.BothModified, wantSource: merge.SourceLocal | merge.SourceIncoming,
		},
		{
			name: "local modified", base: snapshot(a), local: snapshot(b), incoming: snapshot(a),
			want: []dep{b}, wantPat: merge.LocalModified, wantSource: merge.SourceLocal,
		},
		{
			name: "incoming modified", base: snapshot(a), local: snapshot(a), incoming: snapshot(c),
			want: []dep{c}, wantPat: merge.IncomingModified, wantSource: merge.SourceIncoming,
		},
		{
			name: "only incoming valid", base: snapshot(a), local: snapshot(missing), incoming: snapshot(c),
			want: []dep{c}, wantPat: merge.BothModified, wantSource: merge.SourceIncoming,
		},
		{
			name: "only local valid", base: snapshot(a), local: snapshot(b), incoming: snapshot(missing),
			want: []dep{b}, wantPat: merge.BothModified, wantSource: merge.SourceLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			results, err := merge.MergeAllResults(ctx, tt.base, tt.local, tt.incoming, failing(t))
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, "P", results[0].Key)
			assert.Equal(t, tt.wantPat, results[0].Pattern)
			assert.Equal(t, tt.wantSource, results[0].ResolvedWith)
			assert.True(t, results[0].IsResolved)

			got, err := merge.MergeAll(ctx, tt.base, tt.local, tt.incoming, failing(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeAllEscalates(t *testing.T) {
	a, b, c := v("P", "1.0"), v("P", "1.1"), v("P", "1.2")
	missing := dep{ID: "P", Version: "2.0", Missing: true}

	tests := []struct {
		name     string
		base     map[string]dep
		local    map[string]dep
		incoming map[string]dep
		wantPat  merge.ChangePattern
	}{
		{"different additions", snapshot(), snapshot(b), snapshot(c), merge.BothAdded},
		{"invalid local addition", snapshot(), snapshot(missing), snapshot(), merge.LocalAdded},
		{"invalid incoming addition", snapshot(), snapshot(), snapshot(missing), merge.IncomingAdded},
		{"local deleted incoming modified", snapshot(a), snapshot(), snapshot(c), merge.LocalDeleted | merge.IncomingModified},
		{"local modified incoming deleted", snapshot(a), snapshot(b), snapshot(), merge.LocalModified | merge.IncomingDeleted},
		{"both modified differently", snapshot(a), snapshot(b), snapshot(c), merge.BothModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{answer: func(c merge.Conflict[dep]) (merge.MergeResult[dep], error) {
				return merge.Deleted[dep](c.Key, c.Pattern(), merge.SourceCustom), nil
			}}
			_, err := merge.MergeAll(context.Background(), tt.base, tt.local, tt.incoming, r)
			require.NoError(t, err)
			require.Equal(t, 1, r.calls())
			assert.Equal(t, "P", r.conflicts[0].Key)
			assert.Equal(t, tt.wantPat, r.conflicts[0].Pattern())
		})
	}
}

func TestMergeAllBothAddedWithDifferentFieldsEscalatesOnce(t *testing.T) {
	local := snapshot(dep{ID: "P", Version: "1.0", Extra: "X"})
	incoming := snapshot(dep{ID: "P", Version: "2.0", Extra: "Y"})

	r := &recorder{}
	got, err := merge.MergeAll(context.Background(), snapshot(), local, incoming, r)
	require.NoError(t, err)
	require.Equal(t, 1, r.calls())
	assert.Equal(t, "P", r.conflicts[0].Key)
	assert.Equal(t, []dep{{ID: "P", Version: "1.0", Extra: "X"}}, got)
}

func TestMergeAllBothInvalidFails(t *testing.T) {
	base := snapshot(v("P", "1.0"))
	local := snapshot(dep{ID: "P", Version: "1.1", Missing: true})
	incoming := snapshot(dep{ID: "P", Version: "1.2", Missing: true})

	_, err := merge.MergeAll(context.Background(), base, local, incoming, failing(t))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidResolution(err))

	var ire *errors.InvalidResolutionError
	require.True(t, errors.As(err, &ire))
	assert.Equal(t, "P", ire.Key)
}

func TestMergeAllRevalidatesResolverChoice(t *testing.T) {
	base := snapshot()
	local := snapshot(v("P", "1.0"))
	incoming := snapshot(v("P", "2.0"))

	t.Run("invalid value rejected", func(t *testing.T) {
		r := merge.ResolverFunc[dep](func(_ context.Context, c merge.Conflict[dep]) (merge.MergeResult[dep], error) {
			return merge.Resolved(c.Key, dep{ID: "P", Version: "3.0", Missing: true}, merge.BothAdded, merge.SourceCustom), nil
		})
		_, err := merge.MergeAll(context.Background(), base, local, incoming, r)
		assert.True(t, errors.IsInvalidResolution(err))
	})

	t.Run("NoChanges result trusted", func(t *testing.T) {
		bad := dep{ID: "P", Version: "3.0", Missing: true}
		r := merge.ResolverFunc[dep](func(_ context.Context, c merge.Conflict[dep]) (merge.MergeResult[dep], error) {
			return merge.Resolved(c.Key, bad, merge.NoChanges, merge.SourceCustom), nil
		})
		got, err := merge.MergeAll(context.Background(), base, local, incoming, r)
		require.NoError(t, err)
		assert.Equal(t, []dep{bad}, got)
	})

	t.Run("deletion never validated", func(t *testing.T) {
		r := merge.ResolverFunc[dep](func(_ context.Context, c merge.Conflict[dep]) (merge.MergeResult[dep], error) {
			return merge.MergeResult[dep]{Pattern: merge.BothAdded, ResolvedWith: merge.SourceCustom, IsResolved: true}, nil
		})
		results, err := merge.MergeAllResults(context.Background(), base, local, incoming, r)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].IsDeleted())
		assert.Equal(t, "P", results[0].Key)
	})
}

func TestMergeAllPassesAbortsThrough(t *testing.T) {
	base := snapshot(v("P", "1.0"))
	local := snapshot(v("P", "1.1"))
	incoming := snapshot(v("P", "1.2"))

	for _, sig := range []*errors.AbortError{errors.AbortFile("skip"), errors.AbortRun("quit")} {
		t.Run(sig.Scope.String(), func(t *testing.T) {
			r := merge.ResolverFunc[dep](func(context.Context, merge.Conflict[dep]) (merge.MergeResult[dep], error) {
				return merge.MergeResult[dep]{}, sig
			})
			_, err := merge.MergeAll(context.Background(), base, local, incoming, r)
			assert.Same(t, sig, err)
		})
	}
}

func TestMergeAllWithoutResolver(t *testing.T) {
	_, err := merge.MergeAll(context.Background(), snapshot(), snapshot(v("P", "1")), snapshot(v("P", "2")), nil)
	assert.ErrorIs(t, err, merge.ErrNoResolver)
}

func TestMergeAllOrdering(t *testing.T) {
	entries := []dep{v("beta", "1"), v("Alpha", "1"), v("gamma", "1"), v("alpha", "1"), v("Beta", "1")}
	m := snapshot(entries...)

	got, err := merge.MergeAll(context.Background(), m, m, m, failing(t))
	require.NoError(t, err)

	var keys []string
	for _, e := range got {
		keys = append(keys, e.ID)
	}
	assert.Equal(t, []string{"Alpha", "alpha", "Beta", "beta", "gamma"}, keys)
}

func TestMergeAllRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := snapshot(v("P", "1"))
	_, err := merge.MergeAll(ctx, m, m, m, failing(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMergeAllReportsDecisions(t *testing.T) {
	base := snapshot(v("A", "1"), v("B", "1"), v("C", "1"))
	local := snapshot(v("A", "1"), v("B", "2"), v("C", "2"))
	incoming := snapshot(v("A", "1"), v("C", "3"))

	var decisions []merge.Decision
	reporter := merge.ReporterFunc(func(d merge.Decision) {
		decisions = append(decisions, d)
	})

	r := &recorder{}
	_, err := merge.MergeAll(context.Background(), base, local, incoming, r, merge.WithReporter(reporter))
	require.NoError(t, err)

	require.Len(t, decisions, 3)
	assert.Equal(t, merge.Decision{Key: "A", Pattern: merge.NoChanges, Source: merge.SourceBase}, decisions[0])
	assert.Equal(t, "B", decisions[1].Key)
	assert.True(t, decisions[1].Escalated)
	assert.Equal(t, merge.LocalModified|merge.IncomingDeleted, decisions[1].Pattern)
	assert.Equal(t, merge.BothModified, decisions[2].Pattern)
	assert.True(t, decisions[2].Escalated)
}

func TestMergeAllLogsRules(t *testing.T) {
	tl := logging.NewTestLogger(t)

	m := snapshot(v("P", "1"))
	_, err := merge.MergeAll(context.Background(), m, m, m, failing(t), merge.WithLogger(tl.Logger))
	require.NoError(t, err)
	tl.AssertContains(t, "unchanged")
}

func TestResolveConflict(t *testing.T) {
	c := merge.Conflict[dep]{
		Key:   "P",
		Base:  merge.Some(v("P", "1")),
		Local: merge.Some(v("P", "2")),
	}
	r := &recorder{}
	result, err := merge.ResolveConflict(context.Background(), c, r)
	require.NoError(t, err)
	assert.Equal(t, 1, r.calls())
	assert.Equal(t, "2", result.Item.Value().Version)
}
