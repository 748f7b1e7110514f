package merge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/depmerge/pkg/merge"
)

// dupRecorder records escalated duplicate conflicts and keeps the first
// candidate.
type dupRecorder struct {
	conflicts []merge.DuplicateConflict[dep]
}

func (r *dupRecorder) ResolveDuplicates(_ context.Context, dc merge.DuplicateConflict[dep]) (merge.MergeResult[dep], error) {
	r.conflicts = append(r.conflicts, dc)
	return merge.Resolved(dc.Key, dc.Candidates()[0], merge.BothModified, merge.SourceCustom), nil
}

func groups(entries ...dep) map[string][]dep {
	m := make(map[string][]dep)
	for _, e := range entries {
		m[e.ID] = append(m[e.ID], e)
	}
	return m
}

func TestMergeAllDuplicates(t *testing.T) {
	a, b, c := v("P", "1.0"), v("P", "1.1"), v("P", "1.2")

	tests := []struct {
		name          string
		base          map[string][]dep
		local         map[string][]dep
		incoming      map[string][]dep
		want          []dep
		wantPattern   merge.ChangePattern
		wantEscalated bool
	}{
		{
			name: "repeated identical entry collapses",
			base: groups(a), local: groups(a), incoming: groups(a, a),
			want: []dep{a}, wantPattern: merge.NoChanges,
		},
		{
			name: "both sides converge on one value",
			base: groups(a, b), local: groups(c), incoming: groups(c),
			want: []dep{c}, wantPattern: merge.BothModified,
		},
		{
			name: "both sides converge without base",
			base: groups(), local: groups(c), incoming: groups(c, c),
			want: []dep{c}, wantPattern: merge.BothAdded,
		},
		{
			name: "diverging sides against duplicated base escalate",
			base: groups(a, b), local: groups(a), incoming: groups(c),
			want: []dep{a}, wantPattern: merge.BothModified, wantEscalated: true,
		},
		{
			name: "duplicated base degrades to single item",
			base: groups(a, a), local: groups(a), incoming: groups(b),
			want: []dep{b}, wantPattern: merge.IncomingModified,
		},
		{
			name: "duplicates removed on both sides",
			base: groups(a, b), local: groups(), incoming: groups(),
			want: []dep{}, wantPattern: merge.BothDeleted,
		},
		{
			name: "duplicates added locally escalate",
			base: groups(), local: groups(a, b), incoming: groups(),
			want: []dep{a}, wantPattern: merge.BothModified, wantEscalated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr := &dupRecorder{}
			results, err := merge.MergeAllDuplicatesResults(context.Background(), tt.base, tt.local, tt.incoming, failing(t), dr)
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, tt.wantPattern, results[0].Pattern)
			assert.Equal(t, tt.wantEscalated, len(dr.conflicts) == 1)

			got, err := merge.MergeAllDuplicates(context.Background(), tt.base, tt.local, tt.incoming, failing(t), &dupRecorder{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeAllDuplicatesPassesDistinctCollections(t *testing.T) {
	a, b, c := v("P", "1.0"), v("P", "1.1"), v("P", "1.2")

	dr := &dupRecorder{}
	_, err := merge.MergeAllDuplicates(context.Background(),
		groups(a, b, a), groups(a, a, c), groups(b),
		failing(t), dr)
	require.NoError(t, err)
	require.Len(t, dr.conflicts, 1)

	got := dr.conflicts[0]
	assert.Equal(t, "P", got.Key)
	assert.Equal(t, []dep{a, b}, got.Base)
	assert.Equal(t, []dep{a, c}, got.Local)
	assert.Equal(t, []dep{b}, got.Incoming)
}

func TestMergeAllDuplicatesInvalidConvergence(t *testing.T) {
	a, b := v("P", "1.0"), v("P", "1.1")
	missing := dep{ID: "P", Version: "2.0", Missing: true}

	dr := &dupRecorder{}
	_, err := merge.MergeAllDuplicates(context.Background(),
		groups(a, b), groups(missing), groups(missing),
		failing(t), merge.DuplicateResolverFunc[dep](func(_ context.Context, dc merge.DuplicateConflict[dep]) (merge.MergeResult[dep], error) {
			dr.conflicts = append(dr.conflicts, dc)
			return merge.Deleted[dep](dc.Key, merge.BothModified, merge.SourceCustom), nil
		}))
	require.NoError(t, err)
	assert.Len(t, dr.conflicts, 1)
}

func TestMergeAllDuplicatesSingleItemEscalation(t *testing.T) {
	a, b, c := v("P", "1.0"), v("P", "1.1"), v("P", "1.2")

	r := &recorder{}
	got, err := merge.MergeAllDuplicates(context.Background(),
		groups(a, a), groups(b), groups(c, c),
		r, &dupRecorder{})
	require.NoError(t, err)
	require.Equal(t, 1, r.calls())
	assert.Equal(t, merge.BothModified, r.conflicts[0].Pattern())
	assert.Equal(t, []dep{b}, got)
}
