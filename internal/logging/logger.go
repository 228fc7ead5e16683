// Package logging defines the structured-logging interface used across
// Studify. Components accept a Logger and never talk to log/slog directly.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Warn(ctx, "snapshot import rejected", "key", "sessions")
type Logger interface {
	// Debug logs fine-grained diagnostics (cache hits, provider URLs).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a degraded but handled condition, such as a fallback being used.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure that was swallowed on behalf of the caller.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
