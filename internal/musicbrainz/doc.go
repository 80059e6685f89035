// Package musicbrainz wraps the MusicBrainz artist search web service.
//
// The client sends one exact-phrase search per call with the configured
// User-Agent and a bounded timeout, decodes the loosely structured response
// into Artist values with empty-string defaults for absent fields, and tags
// failures with services markers so callers can log them consistently. It
// never retries; pacing between calls belongs to the caller.
package musicbrainz
