package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/depmerge/pkg/errors"
	"github.com/agentstation/depmerge/pkg/version"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input      string
		components []uint64
		prerelease string
		build      string
	}{
		{"1", []uint64{1}, "", ""},
		{"1.0", []uint64{1, 0}, "", ""},
		{"4.0.30319.1", []uint64{4, 0, 30319, 1}, "", ""},
		{"1.0.0-alpha", []uint64{1, 0, 0}, "alpha", ""},
		{"1.0.0-alpha.1+build.5", []uint64{1, 0, 0}, "alpha.1", "build.5"},
		{"2.1+sha-abc123", []uint64{2, 1}, "", "sha-abc123"},
		{"1.0.0-rc-1", []uint64{1, 0, 0}, "rc-1", ""},
		{"  3.2.1  ", []uint64{3, 2, 1}, "", ""},
		{"01.002", []uint64{1, 2}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := version.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.components, v.Components())
			assert.Equal(t, tt.prerelease, v.Prerelease())
			assert.Equal(t, tt.build, v.Build())
			assert.Equal(t, tt.prerelease != "", v.IsPrerelease())
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"v1.0.0",
		"1..0",
		"1.0.",
		".1",
		"1.a",
		"1.*",
		"1.0.0-",
		"1.0.0+",
		"1.0.0-alpha..1",
		"1.0.0-al_pha",
		"-alpha",
		"+build",
		"99999999999999999999",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := version.Parse(input)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidVersion(err), "want ErrInvalidVersion, got %v", err)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { version.MustParse("not-a-version") })
	assert.NotPanics(t, func() { version.MustParse("1.2.3") })
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"1",
		"1.0",
		"1.2.3",
		"4.0.30319.1",
		"1.0.0-alpha.1",
		"1.0.0-alpha+001",
		"2.0+build.7",
		"007.1",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v := version.MustParse(input)
			again, err := version.Parse(v.String())
			require.NoError(t, err)
			assert.Equal(t, 0, version.ComparePrecedence(v, again))
			assert.True(t, v.Equal(again))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, version.MustParse("1.2.3").Equal(version.MustParse("1.2.3")))
	assert.True(t, version.MustParse("1.2.3-rc.1+b").Equal(version.MustParse("1.2.3-rc.1+b")))

	// same precedence, different text
	assert.False(t, version.MustParse("1.0").Equal(version.MustParse("1.0.0")))
	assert.False(t, version.MustParse("1.0.0+a").Equal(version.MustParse("1.0.0+b")))
	assert.False(t, version.MustParse("1.0.0-a").Equal(version.MustParse("1.0.0-b")))
}

func TestTextMarshaling(t *testing.T) {
	var v version.Version
	require.NoError(t, v.UnmarshalText([]byte("1.4.0-beta")))
	assert.Equal(t, "1.4.0-beta", v.String())

	text, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.4.0-beta", string(text))

	assert.Error(t, v.UnmarshalText([]byte("1.4.x")))
}

func TestIsZero(t *testing.T) {
	var v version.Version
	assert.True(t, v.IsZero())
	assert.False(t, version.MustParse("0").IsZero())
}
