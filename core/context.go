package core

import "context"

// Context keys for grading options
type contextKey string

const runIDKey contextKey = "runID"

// withRunID stores the active history run ID in the context
func withRunID(ctx context.Context, runID int64) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// runIDFromContext returns the active history run ID, or 0 when history is off
func runIDFromContext(ctx context.Context) int64 {
	val := ctx.Value(runIDKey)
	if val == nil {
		return 0
	}
	runID, ok := val.(int64)
	if !ok {
		return 0
	}
	return runID
}
