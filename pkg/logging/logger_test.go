package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/depmerge/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.InfoLevel)
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if strings.Contains(output, "debug message") {
		t.Errorf("Debug message should be filtered at info level, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithManifest(ctx, "packages.yaml")
	ctx = logging.WithKey(ctx, "Newtonsoft.Json")

	logging.FromContext(ctx).Info().Msg("resolved")

	testLogger.AssertContains(t, `"manifest":"packages.yaml"`)
	testLogger.AssertContains(t, `"key":"Newtonsoft.Json"`)
	testLogger.AssertContains(t, "resolved")
}

func TestCaptureLoggingForTest(t *testing.T) {
	captured := logging.CaptureLoggingForTest(t)

	logging.Warn().Str("side", "incoming").Msg("picked incoming")

	captured.AssertContains(t, "picked incoming")
	if len(captured.Lines()) != 1 {
		t.Errorf("expected 1 log line, got %d", len(captured.Lines()))
	}
}
