package core

import "context"

// Context keys for pipeline options
type contextKey string

const quietKey contextKey = "quiet"

// WithQuiet suppresses progress output on stdout for the run. The MCP
// server uses this because stdout carries the protocol stream.
func WithQuiet(ctx context.Context) context.Context {
	return context.WithValue(ctx, quietKey, true)
}

// isQuiet returns whether progress output should be suppressed
func isQuiet(ctx context.Context) bool {
	val := ctx.Value(quietKey)
	if val == nil {
		return false // default: show progress
	}
	quiet, ok := val.(bool)
	return ok && quiet
}
