// Package preflight provides readiness checks for the paths and the registry
// a resolution run depends on.
//
// These checks run in two contexts:
//   - The root command calls CheckDirectoryAccess on the output directory
//     before the first lookup, so a long run never ends in an unwritable path.
//   - "mbidify config validate --online" calls RunAll to also probe the
//     MusicBrainz endpoint with the configured client identifier.
package preflight
