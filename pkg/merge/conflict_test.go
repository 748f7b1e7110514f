package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/depmerge/pkg/errors"
	"github.com/agentstation/depmerge/pkg/merge"
)

func TestClassify(t *testing.T) {
	a, b, c := v("P", "1.0"), v("P", "1.1"), v("P", "1.2")
	some := merge.Some[dep]
	none := merge.None[dep]()

	tests := []struct {
		name     string
		base     merge.Optional[dep]
		local    merge.Optional[dep]
		incoming merge.Optional[dep]
		want     merge.ChangePattern
	}{
		{"unchanged", some(a), some(a), some(a), merge.NoChanges},
		{"local added", none, some(a), none, merge.LocalAdded},
		{"incoming added", none, none, some(a), merge.IncomingAdded},
		{"both added", none, some(a), some(b), merge.BothAdded},
		{"local modified", some(a), some(b), some(a), merge.LocalModified},
		{"incoming modified", some(a), some(a), some(b), merge.IncomingModified},
		{"both modified", some(a), some(b), some(c), merge.BothModified},
		{"local deleted", some(a), none, some(a), merge.LocalDeleted},
		{"incoming deleted", some(a), some(a), none, merge.IncomingDeleted},
		{"both deleted", some(a), none, none, merge.BothDeleted},
		{"deleted and modified", some(a), none, some(b), merge.LocalDeleted | merge.IncomingModified},
		{"modified and deleted", some(a), some(b), none, merge.LocalModified | merge.IncomingDeleted},
		{"nothing anywhere", none, none, none, merge.NoChanges},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, merge.Classify(tt.base, tt.local, tt.incoming))
		})
	}
}

func TestNewConflict(t *testing.T) {
	c, err := merge.NewConflict("P", merge.None[dep](), merge.Some(v("P", "1.0")), merge.None[dep]())
	require.NoError(t, err)
	assert.Equal(t, merge.LocalAdded, c.Pattern())

	_, err = merge.NewConflict("P", merge.None[dep](), merge.None[dep](), merge.None[dep]())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConflict))
}

func TestDuplicateConflictCandidates(t *testing.T) {
	a, b, c := v("P", "1.0"), v("P", "1.1"), v("P", "1.2")
	dc := merge.DuplicateConflict[dep]{
		Key:      "P",
		Local:    []dep{a, b},
		Incoming: []dep{b, c},
	}
	assert.Equal(t, []dep{a, b, c}, dc.Candidates())
}

func TestOptional(t *testing.T) {
	o := merge.Some(v("P", "1.0"))
	got, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, "1.0", got.Version)

	var zero merge.Optional[dep]
	assert.False(t, zero.IsPresent())
	assert.Equal(t, dep{}, zero.Value())
}

func TestDuplicateConflictPattern(t *testing.T) {
	a, b, c := v("P", "1.0"), v("P", "1.1"), v("P", "1.2")

	tests := []struct {
		name string
		dc   merge.DuplicateConflict[dep]
		want merge.ChangePattern
	}{
		{"added locally", merge.DuplicateConflict[dep]{Local: []dep{a, b}}, merge.LocalAdded},
		{"added on both sides", merge.DuplicateConflict[dep]{Local: []dep{a, b}, Incoming: []dep{c}}, merge.BothAdded},
		{"same set reordered", merge.DuplicateConflict[dep]{Base: []dep{a, b}, Local: []dep{b, a}, Incoming: []dep{a, b}}, merge.NoChanges},
		{"incoming modified", merge.DuplicateConflict[dep]{Base: []dep{a, b}, Local: []dep{a, b}, Incoming: []dep{c}}, merge.IncomingModified},
		{"local deleted", merge.DuplicateConflict[dep]{Base: []dep{a, b}, Incoming: []dep{a, c}}, merge.LocalDeleted | merge.IncomingModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dc.Pattern())
		})
	}
}
