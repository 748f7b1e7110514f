package compare

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/depmerge/internal/appcontext"
	"github.com/agentstation/depmerge/pkg/errors"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b     string
		wildcard bool
		want     string
	}{
		{"1.0.0", "1.0.1", false, "<"},
		{"1.0.0-beta.11", "1.0.0-beta.2", false, ">"},
		{"1.0.0", "1.0.0", false, "="},
		{"1.2.*", "1.2.3", true, "incomparable"},
		{"1.2", "1.2.0", true, "="},
		{"1.3", "1.2.9", true, ">"},
	}
	for _, tt := range tests {
		t.Run(tt.a+" "+tt.b, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b, tt.wildcard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Ordering)
		})
	}
}

func TestCompareInvalid(t *testing.T) {
	_, err := Compare("1.x", "1.0", false)
	assert.True(t, errors.IsInvalidVersion(err))
}

func TestCompareCommand(t *testing.T) {
	app := &appcontext.Mock{OutputFormatFunc: func() string { return "json" }}
	cmd := NewCommand(app)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"2.0.0", "10.0.0"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"left":"2.0.0","right":"10.0.0","ordering":"<","wildcard":false}`, stdout.String())
}
