// Package logging assembles structured slog loggers and formatting helpers used
// across mbidify.
//
// It owns the console/JSON handlers, centralizes level and output plumbing, and
// exposes context-aware helpers so resolver code can tag log lines with the
// candidate position and run correlation ID. Logs are written to stderr; stdout
// carries only the run summary.
package logging
