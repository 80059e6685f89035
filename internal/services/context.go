package services

import "context"

type contextKey string

const (
	candidateKey contextKey = "candidate"
	requestIDKey contextKey = "request_id"
)

// WithCandidate annotates context with the 1-based position of the name being resolved.
func WithCandidate(ctx context.Context, position int) context.Context {
	return context.WithValue(ctx, candidateKey, position)
}

// CandidateFromContext extracts the candidate position if present.
func CandidateFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(candidateKey).(int)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
