package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mbidify/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	dir := isolateCLI(t)
	target := filepath.Join(dir, "conf", "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, _, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "Pacing: sleep every 1s")
	requireContains(t, out, "Configuration valid")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dir := isolateCLI(t)
	target := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(target, []byte("# mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, "config", "init", "--path", target)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already exists error, got %v", err)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[musicbrainz]") {
		t.Fatalf("expected sample config, got %q", data)
	}
}

func TestConfigValidateOnline(t *testing.T) {
	dir := isolateCLI(t)
	registry := testsupport.NewRegistry(t, map[string]testsupport.RegistryResponse{
		"Radiohead": {Body: `{"artists":[{"id":"rh","name":"Radiohead","score":100}]}`},
	})
	configPath := writeConfig(t, dir, registry.BaseURL())

	out, _, err := runCLI(t, "--config", configPath, "config", "validate", "--online")
	if err != nil {
		t.Fatalf("config validate --online: %v", err)
	}
	requireContains(t, out, "MusicBrainz: reachable")
	requireContains(t, out, "Configuration valid")
	if got := registry.Queries(); len(got) != 1 {
		t.Fatalf("expected one probe request, got %q", got)
	}
}
