package logging_test

import (
	"context"
	"testing"

	"github.com/yaklabco/mdlive/internal/logging"
)

func TestWithLoggerRoundTrip(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)

	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext did not return the attached logger")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != logging.Default() {
		t.Error("expected default logger for a bare context")
	}

	//nolint:staticcheck // Verifying the nil-context guard.
	if got := logging.FromContext(nil); got != logging.Default() {
		t.Error("expected default logger for a nil context")
	}
}

func TestWithLoggerNilContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("warn")

	//nolint:staticcheck // Verifying the nil-context guard.
	ctx := logging.WithLogger(nil, logger)
	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext did not return the attached logger")
	}
}
