package preflight

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mbidify/internal/musicbrainz"
	"mbidify/internal/services"
	"mbidify/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckRegistry_OK(t *testing.T) {
	registry := testsupport.NewRegistry(t, map[string]testsupport.RegistryResponse{
		"Radiohead": {Body: `{"artists":[{"id":"rh","name":"Radiohead","score":100}]}`},
	})
	client, err := musicbrainz.New(registry.BaseURL(), "mbidify-test/1.0")
	if err != nil {
		t.Fatalf("musicbrainz.New: %v", err)
	}

	result := CheckRegistry(context.Background(), client)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckRegistry_ServerError(t *testing.T) {
	registry := testsupport.NewRegistry(t, map[string]testsupport.RegistryResponse{
		"Radiohead": {Status: 403, Body: `{"error":"blocked"}`},
	})
	client, err := musicbrainz.New(registry.BaseURL(), "mbidify-test/1.0")
	if err != nil {
		t.Fatalf("musicbrainz.New: %v", err)
	}

	result := CheckRegistry(context.Background(), client)
	if result.Passed {
		t.Fatal("expected failure for forbidden response")
	}
	if !strings.Contains(result.Detail, "user agent") {
		t.Fatalf("expected user agent hint, got %q", result.Detail)
	}
}

type timeoutSearcher struct{}

func (timeoutSearcher) SearchArtists(context.Context, string, int) (*musicbrainz.SearchResult, error) {
	return nil, services.Wrap(services.ErrTimeout, "musicbrainz", "search artist", "request timed out", errors.New("deadline"))
}

func TestRunAll(t *testing.T) {
	results := RunAll(context.Background(), timeoutSearcher{}, t.TempDir())
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "MusicBrainz" {
		t.Fatalf("expected only the registry check to fail, got %+v", failed)
	}
	if !strings.Contains(failed[0].Detail, "timed out") {
		t.Fatalf("unexpected detail %q", failed[0].Detail)
	}

	if got := RunAll(context.Background(), nil, ""); len(got) != 0 {
		t.Fatalf("expected no checks, got %+v", got)
	}
}
