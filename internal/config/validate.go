package config

import (
	"errors"
	"fmt"
	"net/url"

	"mbidify/internal/services"
)

// Validate ensures the configuration is usable. Failures are tagged with
// services.ErrConfiguration.
func (c *Config) Validate() error {
	for _, check := range []func() error{c.validateMusicBrainz, c.validatePacing, c.validateLogging} {
		if err := check(); err != nil {
			return services.Wrap(services.ErrConfiguration, "config", "validate", "", err)
		}
	}
	return nil
}

func (c *Config) validateMusicBrainz() error {
	parsed, err := url.Parse(c.MusicBrainz.BaseURL)
	if err != nil {
		return fmt.Errorf("musicbrainz.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("musicbrainz.base_url must be an http(s) URL, got %q", c.MusicBrainz.BaseURL)
	}
	if c.MusicBrainz.UserAgent == "" {
		return errors.New("musicbrainz.user_agent must be set")
	}
	if c.MusicBrainz.TimeoutSeconds <= 0 {
		return errors.New("musicbrainz.timeout_seconds must be positive")
	}
	if c.MusicBrainz.ResultLimit <= 0 || c.MusicBrainz.ResultLimit > maxResultLimit {
		return fmt.Errorf("musicbrainz.result_limit must be between 1 and %d", maxResultLimit)
	}
	return nil
}

func (c *Config) validatePacing() error {
	switch c.Pacing.Mode {
	case PacingSleep, PacingToken:
	default:
		return fmt.Errorf("pacing.mode: unsupported value %q (want %q or %q)", c.Pacing.Mode, PacingSleep, PacingToken)
	}
	if c.Pacing.IntervalMS < minPacingIntervalMS {
		return fmt.Errorf("pacing.interval_ms must be at least %d to respect the MusicBrainz rate limit", minPacingIntervalMS)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
