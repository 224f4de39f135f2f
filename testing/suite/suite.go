package suite

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/attt-engine/internal/logging"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	trace *bytes.Buffer
}

// New - switches tracing on for the duration of the test and captures it.
// Tests using the suite must not run in parallel: the switch is process-wide.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	trace := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(trace, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logging.SetOutput(logger)
	logging.Switch(true)

	t.Cleanup(func() {
		t.Helper()

		logging.Switch(false)
		logging.SetOutput(nil)

		if t.Failed() {
			t.Logf("trace:\n%s", trace.String())
		}
	})

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		trace:  trace,
	}
}

// Traced - reports whether any captured record contains the given text.
func (that *Suite) Traced(text string) bool {
	return strings.Contains(that.trace.String(), text)
}
