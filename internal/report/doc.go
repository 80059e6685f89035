// Package report writes the two output artifacts of a resolution run and
// renders the closing summary.
//
// The primary file lists one MusicBrainz identifier per line and is meant to
// be handed to Lidarr as a custom import list. The detail file sits next to it
// as a tab-separated audit trail with one row per match. Both files are
// written only after every outcome has been consumed; a cancelled run leaves
// the output paths untouched.
package report
