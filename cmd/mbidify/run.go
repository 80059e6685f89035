package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mbidify/internal/fileutil"
	"mbidify/internal/logging"
	"mbidify/internal/musicbrainz"
	"mbidify/internal/names"
	"mbidify/internal/pacing"
	"mbidify/internal/preflight"
	"mbidify/internal/report"
	"mbidify/internal/resolver"
	"mbidify/internal/services"
)

// newPacer is swapped out by tests that cannot afford a one-second wait per name.
var newPacer = pacing.New

func runResolve(ctx context.Context, cmdCtx *commandContext, inputPath, outputPath string, stdout, stderr io.Writer) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cmdCtx.logger(stderr)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	ctx = services.WithRequestID(ctx, runID)
	logger = logging.WithContext(ctx, logger)

	src, err := names.Open(inputPath)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := checkOutputDir(outputPath); err != nil {
		return err
	}

	client, err := musicbrainz.New(cfg.MusicBrainz.BaseURL, cfg.MusicBrainz.UserAgent,
		musicbrainz.WithTimeout(cfg.RequestTimeout()))
	if err != nil {
		return err
	}
	pacer, err := newPacer(cfg.Pacing.Mode, cfg.PacingInterval())
	if err != nil {
		return err
	}
	res := resolver.New(client, pacer,
		resolver.WithLimit(cfg.MusicBrainz.ResultLimit),
		resolver.WithLogger(logger),
	)

	logger.Info("resolution started",
		logging.String("input", inputPath),
		logging.String("output", outputPath),
		logging.String("config", cmdCtx.configPath),
		logging.String("pacing", cfg.Pacing.Mode),
		logging.Duration("interval", cfg.PacingInterval()),
		logging.Bool("review_table", logging.IsTerminal(stdout)),
	)
	started := time.Now()

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	summary, err := report.Write(runCtx, res.ResolveAll(runCtx, readAll(src, cancel)), outputPath,
		report.WithLogger(logger))
	if err != nil {
		if cause := context.Cause(runCtx); cause != nil && !errors.Is(cause, context.Canceled) {
			return cause
		}
		return err
	}

	logger.Info("resolution finished",
		logging.Int("names", summary.Total()),
		logging.Int("matched", len(summary.Matches)),
		logging.Int("needs_review", len(summary.Review)),
		logging.Duration("elapsed", time.Since(started)),
	)

	if logging.IsTerminal(stdout) {
		return report.RenderReviewTable(stdout, summary)
	}
	return report.RenderSummary(stdout, summary)
}

// readAll yields the input names and cancels the run if reading fails part way,
// so a truncated input never produces output files.
func readAll(src *names.Source, cancel context.CancelCauseFunc) iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range src.Names() {
			if !yield(name) {
				return
			}
		}
		if err := src.Err(); err != nil {
			cancel(fmt.Errorf("read input: %w", err))
		}
	}
}

func checkOutputDir(outputPath string) error {
	if err := fileutil.EnsureParent(outputPath); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	check := preflight.CheckDirectoryAccess("Output directory", filepath.Dir(outputPath))
	if !check.Passed {
		return fmt.Errorf("output directory not usable: %s", check.Detail)
	}
	return nil
}
