package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"mbidify/internal/config"
	"mbidify/internal/services"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MBIDIFY_USER_AGENT", "")
	t.Setenv("MUSICBRAINZ_BASE_URL", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(home, ".config", "mbidify", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.MusicBrainz.BaseURL != "https://musicbrainz.org/ws/2" {
		t.Fatalf("unexpected base url: %q", cfg.MusicBrainz.BaseURL)
	}
	if cfg.MusicBrainz.ResultLimit != 5 {
		t.Fatalf("expected result limit 5, got %d", cfg.MusicBrainz.ResultLimit)
	}
	if got := cfg.RequestTimeout(); got != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", got)
	}
	if got := cfg.PacingInterval(); got != time.Second {
		t.Fatalf("expected 1s pacing interval, got %s", got)
	}
	if cfg.Pacing.Mode != config.PacingSleep {
		t.Fatalf("expected sleep pacing, got %q", cfg.Pacing.Mode)
	}
	if !strings.HasPrefix(cfg.MusicBrainz.UserAgent, "mbidify/") {
		t.Fatalf("unexpected default user agent %q", cfg.MusicBrainz.UserAgent)
	}
}

func TestLoadReadsExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")

	cfgVal := config.Default()
	cfgVal.MusicBrainz.BaseURL = "http://localhost:5000/ws/2/"
	cfgVal.MusicBrainz.UserAgent = "  catalog-import/2.0 (ops@example.com)  "
	cfgVal.Pacing.Mode = "TOKEN"
	cfgVal.Pacing.IntervalMS = 1500
	cfgVal.Logging.Format = "JSON"
	data, err := toml.Marshal(cfgVal)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit path to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.MusicBrainz.BaseURL != "http://localhost:5000/ws/2" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.MusicBrainz.BaseURL)
	}
	if cfg.MusicBrainz.UserAgent != "catalog-import/2.0 (ops@example.com)" {
		t.Fatalf("expected trimmed user agent, got %q", cfg.MusicBrainz.UserAgent)
	}
	if cfg.Pacing.Mode != config.PacingToken {
		t.Fatalf("expected token pacing, got %q", cfg.Pacing.Mode)
	}
	if cfg.PacingInterval() != 1500*time.Millisecond {
		t.Fatalf("unexpected interval %s", cfg.PacingInterval())
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %q", cfg.Logging.Format)
	}
}

func TestLoadPrefersProjectFileWhenHomeConfigMissing(t *testing.T) {
	isolate(t)
	content := "[musicbrainz]\nuser_agent = \"project-agent/1.0\"\n"
	if err := os.WriteFile("mbidify.toml", []byte(content), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "mbidify.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if cfg.MusicBrainz.UserAgent != "project-agent/1.0" {
		t.Fatalf("unexpected user agent %q", cfg.MusicBrainz.UserAgent)
	}
}

func TestEnvironmentOverridesFileValues(t *testing.T) {
	isolate(t)
	t.Setenv("MBIDIFY_USER_AGENT", "env-agent/3.0")
	t.Setenv("MUSICBRAINZ_BASE_URL", "https://mirror.example.org/ws/2")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MusicBrainz.UserAgent != "env-agent/3.0" {
		t.Fatalf("expected env user agent, got %q", cfg.MusicBrainz.UserAgent)
	}
	if cfg.MusicBrainz.BaseURL != "https://mirror.example.org/ws/2" {
		t.Fatalf("expected env base url, got %q", cfg.MusicBrainz.BaseURL)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"interval too short": "[pacing]\ninterval_ms = 200\n",
		"unknown mode":       "[pacing]\nmode = \"adaptive\"\n",
		"limit too large":    "[musicbrainz]\nresult_limit = 500\n",
		"negative timeout":   "[musicbrainz]\ntimeout_seconds = -1\n",
		"bad scheme":         "[musicbrainz]\nbase_url = \"ftp://musicbrainz.org\"\n",
		"bad log format":     "[logging]\nformat = \"xml\"\n",
		"unknown key":        "[musicbrainz]\napi_key = \"nope\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatalf("expected error for %s", name)
			}
			if !errors.Is(err, services.ErrConfiguration) {
				t.Fatalf("expected configuration marker for %s, got %v", name, err)
			}
		})
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	want := config.Default()
	if cfg.MusicBrainz != want.MusicBrainz || cfg.Pacing != want.Pacing || cfg.Logging != want.Logging {
		t.Fatalf("sample config diverges from defaults: %+v", cfg)
	}
}

func TestOverrideLogging(t *testing.T) {
	cfg := config.Default()
	cfg.OverrideLogging(" TEXT ", "")
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging after format override: %+v", cfg.Logging)
	}
	cfg.OverrideLogging("", "WARN")
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected normalized level, got %q", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate after override: %v", err)
	}
}
