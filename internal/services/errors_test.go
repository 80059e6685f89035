package services_test

import (
	"errors"
	"strings"
	"testing"

	"mbidify/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalService, "musicbrainz", "search artist", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"musicbrainz", "search artist", "failed", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToTransientMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestErrorHintMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		substr string
	}{
		{"nil", nil, ""},
		{"timeout", services.Wrap(services.ErrTimeout, "musicbrainz", "search", "", nil), "timeout_seconds"},
		{"transient", services.Wrap(services.ErrTransient, "musicbrainz", "search", "", nil), "network"},
		{"validation", services.Wrap(services.ErrValidation, "musicbrainz", "decode", "", nil), "base_url"},
		{"external", services.Wrap(services.ErrExternalService, "musicbrainz", "search", "", nil), "user agent"},
		{"unclassified", errors.New("plain"), "check logs"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hint := services.ErrorHint(tc.err)
			if tc.substr == "" {
				if hint != "" {
					t.Fatalf("expected empty hint, got %q", hint)
				}
				return
			}
			if !strings.Contains(hint, tc.substr) {
				t.Fatalf("expected hint containing %q, got %q", tc.substr, hint)
			}
		})
	}
}
