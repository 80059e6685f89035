package names

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// commentPrefix marks lines that never produce a name.
const commentPrefix = "#"

// Source yields candidate names from a newline-delimited input. It is lazy and
// single-use: Names may be ranged over once; later calls yield nothing.
type Source struct {
	scanner *bufio.Scanner
	closer  io.Closer
	used    bool
	err     error
}

// Open opens path for reading. Failing to open is fatal for the run and is
// reported before any name is produced.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	src := Read(file)
	src.closer = file
	return src, nil
}

// Read wraps an already open reader. A leading UTF-8 byte-order mark is dropped.
func Read(r io.Reader) *Source {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Source{scanner: scanner}
}

// Names yields trimmed names in file order, skipping blank and comment lines.
// Duplicates are yielded as often as they appear.
func (s *Source) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil || s.used {
			return
		}
		s.used = true
		for s.scanner.Scan() {
			name, ok := Candidate(s.scanner.Text())
			if !ok {
				continue
			}
			if !yield(name) {
				return
			}
		}
		if err := s.scanner.Err(); err != nil {
			s.err = fmt.Errorf("read input: %w", err)
		}
	}
}

// Err returns the first read error hit while iterating Names.
func (s *Source) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Close releases the underlying file when the Source was created by Open.
func (s *Source) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// Candidate applies the per-line filter: surrounding whitespace is trimmed and
// empty or comment lines are rejected.
func Candidate(line string) (string, bool) {
	name := strings.TrimSpace(line)
	if name == "" || strings.HasPrefix(name, commentPrefix) {
		return "", false
	}
	return name, true
}

// Collect drains the source into a slice. It is a convenience for callers that
// need the full list up front.
func (s *Source) Collect() ([]string, error) {
	var out []string
	for name := range s.Names() {
		out = append(out, name)
	}
	return out, s.Err()
}
