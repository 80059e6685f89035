package musicbrainz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Artist is one search candidate. Every field the registry may omit is
// defaulted here: strings to "" and the score to 0.
type Artist struct {
	ID             string
	Name           string
	Score          float64
	Disambiguation string
	Country        string
	Type           string
}

// HasID reports whether the candidate carries a usable identifier.
func (a Artist) HasID() bool {
	return strings.TrimSpace(a.ID) != ""
}

type searchResponse struct {
	Created string        `json:"created"`
	Count   int           `json:"count"`
	Offset  int           `json:"offset"`
	Artists []artistEntry `json:"artists"`
}

type artistEntry struct {
	ID             *string `json:"id"`
	Name           *string `json:"name"`
	Score          score   `json:"score"`
	Disambiguation *string `json:"disambiguation"`
	Country        *string `json:"country"`
	Type           *string `json:"type"`
}

func (e artistEntry) toArtist() Artist {
	return Artist{
		ID:             deref(e.ID),
		Name:           deref(e.Name),
		Score:          float64(e.Score),
		Disambiguation: deref(e.Disambiguation),
		Country:        deref(e.Country),
		Type:           deref(e.Type),
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// score accepts the numeric form the JSON API documents as well as the quoted
// form older mirrors emit. null and absent both decode to zero.
type score float64

func (s *score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			*s = 0
			return nil
		}
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("score %q is not numeric", text)
		}
		*s = score(value)
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	*s = score(value)
	return nil
}
