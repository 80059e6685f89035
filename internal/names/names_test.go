package names_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"mbidify/internal/names"
	"mbidify/internal/testsupport"
)

func TestOpenFiltersBlankAndCommentLines(t *testing.T) {
	path := testsupport.WriteLines(t, filepath.Join(t.TempDir(), "names.txt"),
		"Radiohead", "", "# comment", "Some Obscure Name123")

	src, err := names.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer src.Close()

	got, err := src.Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	want := []string{"Radiohead", "Some Obscure Name123"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadTrimsAndKeepsDuplicatesInOrder(t *testing.T) {
	input := "  Björk \r\n\t\n   # indented comment\nPortishead\nBjörk\n#\nMassive Attack"
	got, err := names.Read(strings.NewReader(input)).Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	want := []string{"Björk", "Portishead", "Björk", "Massive Attack"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadKeepsInteriorHash(t *testing.T) {
	got, err := names.Read(strings.NewReader("Sharp #9\n")).Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if !slices.Equal(got, []string{"Sharp #9"}) {
		t.Fatalf("got %q", got)
	}
}

func TestReadStripsByteOrderMark(t *testing.T) {
	got, err := names.Read(strings.NewReader("\ufeffRadiohead\nBlur\n")).Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if !slices.Equal(got, []string{"Radiohead", "Blur"}) {
		t.Fatalf("got %q", got)
	}
}

func TestNamesIsSingleUse(t *testing.T) {
	src := names.Read(strings.NewReader("A\nB\n"))
	var first []string
	for name := range src.Names() {
		first = append(first, name)
	}
	var second []string
	for name := range src.Names() {
		second = append(second, name)
	}
	if len(first) != 2 || len(second) != 0 {
		t.Fatalf("expected single pass, got first=%q second=%q", first, second)
	}
}

func TestNamesIsLazy(t *testing.T) {
	src := names.Read(strings.NewReader("A\nB\nC\n"))
	var got []string
	for name := range src.Names() {
		got = append(got, name)
		if name == "B" {
			break
		}
	}
	if !slices.Equal(got, []string{"A", "B"}) {
		t.Fatalf("got %q", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := names.Open(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestCandidateFilter(t *testing.T) {
	cases := map[string]struct {
		name string
		ok   bool
	}{
		"":              {"", false},
		"   ":           {"", false},
		"#x":            {"", false},
		"  # spaced":    {"", false},
		" Radiohead  ":  {"Radiohead", true},
		"Sigur Rós":     {"Sigur Rós", true},
		"\tTabbed Name": {"Tabbed Name", true},
	}
	for line, want := range cases {
		name, ok := names.Candidate(line)
		if name != want.name || ok != want.ok {
			t.Fatalf("Candidate(%q) = (%q, %v), want (%q, %v)", line, name, ok, want.name, want.ok)
		}
	}
}
