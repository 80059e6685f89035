package report

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"mbidify/internal/fileutil"
	"mbidify/internal/logging"
	"mbidify/internal/resolver"
	"mbidify/internal/textutil"
)

const (
	detailSuffix = "_debug.tsv"
	lockSuffix   = ".lock"
	fileMode     = 0o644
)

// DetailHeader is the first line of the detail file.
var DetailHeader = []string{"query", "mbid", "name", "score", "type", "country", "disambiguation"}

// ReviewItem is a name that needs manual attention.
type ReviewItem struct {
	Position int
	Query    string
	Reason   string
}

// Summary describes what a Write call produced.
type Summary struct {
	PrimaryPath string
	DetailPath  string
	Matches     []resolver.Match
	Review      []ReviewItem
}

// Total returns the number of outcomes consumed.
func (s Summary) Total() int {
	return len(s.Matches) + len(s.Review)
}

// ErrOutputLocked is returned when another run holds the output lock.
var ErrOutputLocked = errors.New("output is locked by another run")

type options struct {
	logger *slog.Logger
}

// Option configures Write.
type Option func(*options)

// WithLogger attaches a logger for the report component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// DetailPath derives the detail file path from the primary path. A trailing
// ".txt" is replaced; any other path gets the suffix appended, so the result
// never equals the primary path.
func DetailPath(primary string) string {
	if base, ok := strings.CutSuffix(primary, ".txt"); ok {
		return base + detailSuffix
	}
	return primary + detailSuffix
}

// Write consumes outcomes once, then writes the primary and detail files.
// Matches keep the order in which they arrive. Nothing is written when ctx is
// cancelled before the sequence is exhausted.
func Write(ctx context.Context, outcomes iter.Seq[resolver.Outcome], primaryPath string, opts ...Option) (Summary, error) {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.NewComponentLogger(o.logger, "report")

	primaryPath = strings.TrimSpace(primaryPath)
	if primaryPath == "" {
		return Summary{}, errors.New("report: output path is empty")
	}
	summary := Summary{
		PrimaryPath: primaryPath,
		DetailPath:  DetailPath(primaryPath),
	}

	for outcome := range outcomes {
		switch {
		case outcome.Match != nil:
			summary.Matches = append(summary.Matches, *outcome.Match)
		case outcome.Miss != nil:
			summary.Review = append(summary.Review, ReviewItem{
				Position: outcome.Position,
				Query:    outcome.Miss.Query,
				Reason:   outcome.Miss.Reason,
			})
		}
	}
	if err := ctx.Err(); err != nil {
		logger.Warn("run interrupted; no output written",
			logging.Int("matched", len(summary.Matches)),
			logging.Int("needs_review", len(summary.Review)),
		)
		return summary, fmt.Errorf("report: %w", err)
	}

	if err := writeFiles(summary); err != nil {
		return summary, err
	}

	logger.Info("report written",
		logging.String("primary", summary.PrimaryPath),
		logging.String("detail", summary.DetailPath),
		logging.Int("matched", len(summary.Matches)),
		logging.Int("needs_review", len(summary.Review)),
	)
	return summary, nil
}

func writeFiles(summary Summary) (err error) {
	if err := fileutil.EnsureParent(summary.PrimaryPath); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	lockPath := summary.PrimaryPath + lockSuffix
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutputLocked, lockPath)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = fmt.Errorf("release output lock: %w", unlockErr)
		}
		_ = os.Remove(lockPath)
	}()

	if err := fileutil.WriteFileAtomic(summary.PrimaryPath, primaryContent(summary.Matches), fileMode); err != nil {
		return fmt.Errorf("write %s: %w", summary.PrimaryPath, err)
	}
	if err := fileutil.WriteFileAtomic(summary.DetailPath, detailContent(summary.Matches), fileMode); err != nil {
		return fmt.Errorf("write %s: %w", summary.DetailPath, err)
	}
	return nil
}

func primaryContent(matches []resolver.Match) []byte {
	var b strings.Builder
	for _, m := range matches {
		b.WriteString(strings.TrimSpace(m.ID))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func detailContent(matches []resolver.Match) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(DetailHeader, "\t"))
	b.WriteByte('\n')
	for _, m := range matches {
		b.WriteString(textutil.JoinFields(
			m.Query,
			strings.TrimSpace(m.ID),
			m.Name,
			FormatScore(m.Score),
			m.Type,
			m.Country,
			m.Disambiguation,
		))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// FormatScore renders a score without a trailing fraction when it is whole.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
