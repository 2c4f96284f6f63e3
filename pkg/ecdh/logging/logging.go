// Package logging provides optional hex tracing for the ecdh package.
//
// It exists only to aid debugging the wire layout during development;
// every call site is compiled out by default. Build with the
// "debugtrace" tag to enable it, and never in a hardened build — the
// traces include KDF input and wrap-engine framing, which is safe to
// print, but the package intentionally has no entry point for logging
// key material itself (see pkg/ecdh/trace_debugtrace.go and
// pkg/ecdh/trace_off.go).
package logging

import (
	"context"
	"log/slog"
)

// Logger is the subset of slog functionality the ecdh package uses for
// its optional tracing. The interface is small so callers can supply
// their own implementation (or a no-op) without pulling in slog.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the given slog.Logger. Passing nil
// binds to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}
