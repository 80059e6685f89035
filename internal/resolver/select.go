package resolver

import "mbidify/internal/musicbrainz"

// SelectBest returns the candidate with the highest score. On tied scores the
// earliest candidate in response order wins, so the registry's own ranking
// breaks ties. ok is false when artists is empty.
func SelectBest(artists []musicbrainz.Artist) (best musicbrainz.Artist, ok bool) {
	for i, artist := range artists {
		if i == 0 || artist.Score > best.Score {
			best = artist
		}
	}
	return best, len(artists) > 0
}
