// Package main hosts the mbidify CLI entrypoint.
//
// The root command takes an input file of artist names and an output path,
// resolves every name against MusicBrainz, and writes a Lidarr-ready MBID list
// with a tab-separated audit file beside it. A config subcommand scaffolds the
// optional TOML configuration.
package main
