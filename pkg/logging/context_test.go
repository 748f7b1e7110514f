package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/depmerge/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Same(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithLogger nil uses default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Same(t, logging.Default(), logging.Ctx(ctx))
	})

	t.Run("WithFields adds every field", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithFields(ctx, map[string]any{
			"kind":    "packages",
			"keys":    3,
			"dry_run": true,
		})

		logging.FromContext(ctx).Info().Msg("merging")

		tl.AssertContains(t, `"kind":"packages"`)
		tl.AssertContains(t, `"keys":3`)
		tl.AssertContains(t, `"dry_run":true`)
	})

	t.Run("WithError ignores nil", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, logging.WithError(ctx, nil))
	})

	t.Run("WithError adds error field", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithKind(ctx, "references")
		ctx = logging.WithError(ctx, errors.New("boom"))

		logging.FromContext(ctx).Error().Msg("failed")

		tl.AssertContains(t, `"error":"boom"`)
		tl.AssertContains(t, `"kind":"references"`)
	})
}
