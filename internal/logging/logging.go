// Package logging holds the process-wide diagnostic switch. Engine components
// write their trace records through it; when the switch is off nothing reaches
// the installed output. Outcomes never depend on it.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var (
	switchedOn atomic.Bool
	output     atomic.Pointer[slog.Logger]
)

func init() {
	SetOutput(nil)
}

// Switch - turns trace output on or off for the whole process.
func Switch(on bool) {
	switchedOn.Store(on)
}

func IsOn() bool {
	return switchedOn.Load()
}

// SetOutput installs the logger trace records are written to. A nil logger
// restores the default text output on stderr.
func SetOutput(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	output.Store(logger)
}

// Discard - a logger that drops everything, handy for callers without output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// For - returns a logger for the given component that obeys the switch.
func For(component string) *slog.Logger {
	return slog.New(&switchHandler{}).With("component", component)
}

// switchHandler resolves the installed output on every record, so loggers
// created before SetOutput still follow it.
type switchHandler struct {
	chain []func(slog.Handler) slog.Handler
}

func (that *switchHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return switchedOn.Load() && output.Load().Handler().Enabled(ctx, level)
}

func (that *switchHandler) Handle(ctx context.Context, record slog.Record) error {
	if !switchedOn.Load() {
		return nil
	}

	handler := output.Load().Handler()
	for _, wrap := range that.chain {
		handler = wrap(handler)
	}

	return handler.Handle(ctx, record)
}

func (that *switchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return that.with(func(handler slog.Handler) slog.Handler {
		return handler.WithAttrs(attrs)
	})
}

func (that *switchHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return that
	}

	return that.with(func(handler slog.Handler) slog.Handler {
		return handler.WithGroup(name)
	})
}

func (that *switchHandler) with(wrap func(slog.Handler) slog.Handler) *switchHandler {
	chain := make([]func(slog.Handler) slog.Handler, 0, len(that.chain)+1)
	chain = append(chain, that.chain...)

	return &switchHandler{chain: append(chain, wrap)}
}
