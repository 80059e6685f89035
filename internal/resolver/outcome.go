package resolver

import "strings"

// Miss reasons. A failed lookup's reason is LookupFailedPrefix followed by the
// error text.
const (
	ReasonNoResult     = "no result returned"
	ReasonMissingID    = "result returned but missing an identifier"
	LookupFailedPrefix = "lookup failed with error"
)

// Match is the chosen registry candidate for one input name. ID is never empty.
type Match struct {
	Query          string
	ID             string
	Name           string
	Score          float64
	Disambiguation string
	Country        string
	Type           string
}

// Miss records an input name that could not be resolved.
type Miss struct {
	Query  string
	Reason string
	// Err is set when the lookup itself failed.
	Err error
}

// Outcome is the result for one input name: exactly one of Match and Miss is set.
type Outcome struct {
	// Position is the 1-based index of the name in the filtered input.
	Position int
	Match    *Match
	Miss     *Miss
}

// Matched reports whether the outcome carries a Match.
func (o Outcome) Matched() bool {
	return o.Match != nil
}

// Query returns the input name the outcome belongs to.
func (o Outcome) Query() string {
	switch {
	case o.Match != nil:
		return o.Match.Query
	case o.Miss != nil:
		return o.Miss.Query
	default:
		return ""
	}
}

func lookupFailedReason(err error) string {
	detail := "unknown error"
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			detail = msg
		}
	}
	return LookupFailedPrefix + " " + detail
}
