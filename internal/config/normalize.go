package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeMusicBrainz()
	c.normalizePacing()
	c.normalizeLogging()
}

func (c *Config) normalizeMusicBrainz() {
	c.MusicBrainz.BaseURL = strings.TrimSpace(c.MusicBrainz.BaseURL)
	if value, ok := os.LookupEnv("MUSICBRAINZ_BASE_URL"); ok && strings.TrimSpace(value) != "" {
		c.MusicBrainz.BaseURL = strings.TrimSpace(value)
	}
	if c.MusicBrainz.BaseURL == "" {
		c.MusicBrainz.BaseURL = defaultMusicBrainzURL
	}
	c.MusicBrainz.BaseURL = strings.TrimRight(c.MusicBrainz.BaseURL, "/")

	c.MusicBrainz.UserAgent = strings.TrimSpace(c.MusicBrainz.UserAgent)
	if value, ok := os.LookupEnv("MBIDIFY_USER_AGENT"); ok && strings.TrimSpace(value) != "" {
		c.MusicBrainz.UserAgent = strings.TrimSpace(value)
	}
	if c.MusicBrainz.UserAgent == "" {
		c.MusicBrainz.UserAgent = defaultUserAgent
	}
	if c.MusicBrainz.TimeoutSeconds == 0 {
		c.MusicBrainz.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.MusicBrainz.ResultLimit == 0 {
		c.MusicBrainz.ResultLimit = defaultResultLimit
	}
}

func (c *Config) normalizePacing() {
	c.Pacing.Mode = strings.ToLower(strings.TrimSpace(c.Pacing.Mode))
	if c.Pacing.Mode == "" {
		c.Pacing.Mode = defaultPacingMode
	}
	if c.Pacing.IntervalMS == 0 {
		c.Pacing.IntervalMS = defaultPacingIntervalMS
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "console", "text", "pretty":
		c.Logging.Format = "console"
	case "json":
		c.Logging.Format = "json"
	default:
		c.Logging.Format = format
	}
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}

// OverrideLogging replaces the logging settings with non-empty command line
// values and normalizes the result.
func (c *Config) OverrideLogging(format, level string) {
	if strings.TrimSpace(format) != "" {
		c.Logging.Format = format
	}
	if strings.TrimSpace(level) != "" {
		c.Logging.Level = level
	}
	c.normalizeLogging()
}
