package resolver

import (
	"context"
	"iter"
	"log/slog"
	"strings"
	"time"

	"mbidify/internal/logging"
	"mbidify/internal/musicbrainz"
	"mbidify/internal/pacing"
	"mbidify/internal/services"
)

const defaultInterval = time.Second

// Resolver turns artist names into outcomes, one registry lookup per name.
type Resolver struct {
	searcher musicbrainz.Searcher
	pacer    pacing.Pacer
	limit    int
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLimit overrides the number of candidates requested per lookup.
func WithLimit(limit int) Option {
	return func(r *Resolver) {
		if limit > 0 {
			r.limit = limit
		}
	}
}

// WithLogger attaches a logger; outcomes are logged under the resolver component.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New builds a Resolver. A nil pacer falls back to the one-second sleep the
// MusicBrainz usage policy asks for.
func New(searcher musicbrainz.Searcher, pacer pacing.Pacer, opts ...Option) *Resolver {
	if pacer == nil {
		pacer = pacing.Sleep{Interval: defaultInterval}
	}
	r := &Resolver{
		searcher: searcher,
		pacer:    pacer,
		limit:    musicbrainz.DefaultLimit,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "resolver")
	return r
}

// Resolve looks up one name and then waits on the pacer, whatever the lookup
// produced. Lookup failures never escape: they become a Miss.
func (r *Resolver) Resolve(ctx context.Context, name string) Outcome {
	outcome := r.lookup(ctx, name)
	if err := r.pacer.Pace(ctx); err != nil {
		r.logger.Debug("pacing interrupted", logging.Error(err))
	}
	return outcome
}

// ResolveAll lazily resolves names in order, strictly one at a time. The
// sequence ends early when the consumer stops or ctx is cancelled; an outcome
// produced after cancellation is dropped.
func (r *Resolver) ResolveAll(ctx context.Context, names iter.Seq[string]) iter.Seq[Outcome] {
	return func(yield func(Outcome) bool) {
		position := 0
		for name := range names {
			if ctx.Err() != nil {
				return
			}
			position++
			outcome := r.Resolve(services.WithCandidate(ctx, position), name)
			if ctx.Err() != nil {
				return
			}
			if !yield(outcome) {
				return
			}
		}
	}
}

func (r *Resolver) lookup(ctx context.Context, name string) Outcome {
	position, _ := services.CandidateFromContext(ctx)
	logger := logging.WithContext(ctx, r.logger)
	outcome := Outcome{Position: position}

	logger.Debug("searching registry", logging.String(logging.FieldQuery, name), logging.Int("limit", r.limit))

	result, err := r.searcher.SearchArtists(ctx, name, r.limit)
	if err != nil {
		outcome.Miss = &Miss{Query: name, Reason: lookupFailedReason(err), Err: err}
		logging.WarnWithContext(logger, "artist lookup failed", "artist_lookup_failed",
			logging.String(logging.FieldQuery, name),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, services.ErrorHint(err)),
		)
		return outcome
	}

	var artists []musicbrainz.Artist
	if result != nil {
		artists = result.Artists
	}
	best, ok := SelectBest(artists)
	if !ok {
		outcome.Miss = &Miss{Query: name, Reason: ReasonNoResult}
		logging.WarnWithContext(logger, "no artist found", "artist_not_found",
			logging.String(logging.FieldQuery, name),
			logging.String(logging.FieldErrorHint, "check the spelling or look the artist up manually"),
		)
		return outcome
	}
	if !best.HasID() {
		outcome.Miss = &Miss{Query: name, Reason: ReasonMissingID}
		logging.WarnWithContext(logger, "best candidate has no identifier", "artist_missing_id",
			logging.String(logging.FieldQuery, name),
			logging.String("candidate_name", best.Name),
			logging.Float64("score", best.Score),
		)
		return outcome
	}

	outcome.Match = &Match{
		Query:          name,
		ID:             strings.TrimSpace(best.ID),
		Name:           best.Name,
		Score:          best.Score,
		Disambiguation: best.Disambiguation,
		Country:        best.Country,
		Type:           best.Type,
	}
	logger.Info("artist matched",
		logging.String(logging.FieldQuery, name),
		logging.String("mbid", outcome.Match.ID),
		logging.String("name", best.Name),
		logging.Float64("score", best.Score),
		logging.Int("candidates", len(artists)),
	)
	return outcome
}
