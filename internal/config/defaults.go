package config

const (
	defaultConfigPath       = "~/.config/mbidify/config.toml"
	projectConfigName       = "mbidify.toml"
	defaultMusicBrainzURL   = "https://musicbrainz.org/ws/2"
	defaultUserAgent        = "mbidify/1.0 (MBID builder for Lidarr import lists)"
	defaultTimeoutSeconds   = 30
	defaultResultLimit      = 5
	maxResultLimit          = 100
	defaultPacingMode       = PacingSleep
	defaultPacingIntervalMS = 1000
	minPacingIntervalMS     = 1000
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Pacing modes accepted by pacing.mode.
const (
	PacingSleep = "sleep"
	PacingToken = "token"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		MusicBrainz: MusicBrainz{
			BaseURL:        defaultMusicBrainzURL,
			UserAgent:      defaultUserAgent,
			TimeoutSeconds: defaultTimeoutSeconds,
			ResultLimit:    defaultResultLimit,
		},
		Pacing: Pacing{
			Mode:       defaultPacingMode,
			IntervalMS: defaultPacingIntervalMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
