// Package config loads, normalizes, and validates mbidify configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// MBIDIFY_USER_AGENT. A missing configuration file is not an error: the
// defaults already describe a polite MusicBrainz client.
package config
