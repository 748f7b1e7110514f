package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/depmerge/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestInvalidResolutionError(t *testing.T) {
	t.Run("with source", func(t *testing.T) {
		err := pkgerrors.NewInvalidResolutionError("Newtonsoft.Json", "Local", "not installed")
		assert.Equal(t, "invalid resolution for Newtonsoft.Json (Local): not installed", err.Error())
		assert.True(t, pkgerrors.IsInvalidResolution(err))
	})

	t.Run("without source", func(t *testing.T) {
		err := &pkgerrors.InvalidResolutionError{Key: "P", Reason: "no valid candidate"}
		assert.Equal(t, "invalid resolution for P: no valid candidate", err.Error())
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewInvalidResolutionError("P", "", "x")
		wrapped := fmt.Errorf("merge packages.yaml: %w", base)
		assert.True(t, pkgerrors.IsInvalidResolution(wrapped))

		var target *pkgerrors.InvalidResolutionError
		require.True(t, errors.As(wrapped, &target))
		assert.Equal(t, "P", target.Key)
	})
}

func TestAbortError(t *testing.T) {
	tests := []struct {
		name      string
		err       *pkgerrors.AbortError
		wantFile  bool
		wantRun   bool
		wantMsg   string
		wantScope string
	}{
		{
			name:      "file abort",
			err:       pkgerrors.AbortFile("user skipped"),
			wantFile:  true,
			wantMsg:   "manifest merge aborted: user skipped",
			wantScope: "file",
		},
		{
			name:      "run abort",
			err:       pkgerrors.AbortRun(""),
			wantRun:   true,
			wantMsg:   "merge run aborted",
			wantScope: "run",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFile, pkgerrors.IsAbortFile(tt.err))
			assert.Equal(t, tt.wantRun, pkgerrors.IsAbortRun(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.Equal(t, tt.wantScope, tt.err.Scope.String())
		})
	}

	t.Run("sentinels match directly", func(t *testing.T) {
		assert.True(t, pkgerrors.IsAbortFile(pkgerrors.ErrAbortFile))
		assert.False(t, pkgerrors.IsAbortRun(pkgerrors.ErrAbortFile))
	})
}

func TestVersionError(t *testing.T) {
	err := pkgerrors.NewVersionError("1..2", "empty numeric component")
	assert.Equal(t, `invalid version "1..2": empty numeric component`, err.Error())
	assert.True(t, pkgerrors.IsInvalidVersion(err))
	assert.False(t, pkgerrors.IsInvalidResolution(err))
}

func TestConflictError(t *testing.T) {
	err := &pkgerrors.ConflictError{Key: "P", Message: "no side present"}
	assert.Equal(t, "conflict P: no side present", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrInvalidConflict))
}

func TestWrapHelpers(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapIO("read", "a.yaml", nil))
	assert.Nil(t, pkgerrors.WrapParse("yaml", "a.yaml", nil))
	assert.Nil(t, pkgerrors.WrapValidation("kind", nil))

	base := errors.New("boom")

	ioErr := pkgerrors.WrapIO("read", "a.yaml", base)
	assert.Equal(t, "IO error during read of a.yaml: boom", ioErr.Error())
	assert.ErrorIs(t, ioErr, base)

	parseErr := pkgerrors.WrapParse("yaml", "a.yaml", base)
	assert.Equal(t, "parse error in yaml file a.yaml: boom", parseErr.Error())
	assert.ErrorIs(t, parseErr, base)

	valErr := pkgerrors.WrapValidation("kind", base)
	assert.True(t, pkgerrors.IsValidationError(valErr))
}

func TestConfigError(t *testing.T) {
	base := errors.New("unknown strategy")
	err := pkgerrors.NewConfigError("resolver", "strategy \"x\"", base)
	assert.Equal(t, `configuration error in resolver: strategy "x"`, err.Error())
	assert.ErrorIs(t, err, base)
}
