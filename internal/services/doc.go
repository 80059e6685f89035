// Package services defines shared utilities consumed by the resolver and the
// registry client.
//
// Key responsibilities:
//   - Context helpers that stamp candidate positions and run correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that classify registry
//     failures so log lines can carry a consistent operator hint.
//
// Use these helpers when wiring new lookup logic so error handling and
// observability stay uniform across the pipeline.
package services
