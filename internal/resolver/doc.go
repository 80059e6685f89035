// Package resolver maps candidate artist names to MusicBrainz identifiers.
//
// Each name costs exactly one registry search followed by one pacing wait.
// The highest-scoring candidate wins, first in response order on ties; a
// candidate without an identifier, an empty result list, and a failed request
// all become a Miss carrying the reason, so every name yields exactly one
// Outcome and a bad lookup never stops the run.
package resolver
