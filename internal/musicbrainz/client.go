package musicbrainz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mbidify/internal/services"
)

const (
	// DefaultBaseURL is the public MusicBrainz web service root.
	DefaultBaseURL = "https://musicbrainz.org/ws/2"
	// DefaultTimeout bounds a single search request.
	DefaultTimeout = 30 * time.Second
	// DefaultLimit is the number of candidates requested per search.
	DefaultLimit = 5

	component = "musicbrainz"
)

// Searcher defines the registry operation used by the resolver.
type Searcher interface {
	SearchArtists(ctx context.Context, name string, limit int) (*SearchResult, error)
}

// SearchResult is a decoded artist search response.
type SearchResult struct {
	Count   int
	Offset  int
	Artists []Artist
}

// Client provides access to the MusicBrainz artist search endpoint.
type Client struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates a MusicBrainz client. userAgent identifies the application on
// every request as the MusicBrainz usage policy requires.
func New(baseURL, userAgent string, opts ...Option) (*Client, error) {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, errors.New("musicbrainz: user agent is required")
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("musicbrainz: parse base url: %w", err)
	}
	client := &Client{
		baseURL:    parsed,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ArtistQuery builds the exact-phrase Lucene query scoped to the artist field.
// Quotes and backslashes inside the name are escaped so the phrase stays intact.
func ArtistQuery(name string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(name)
	return `artist:"` + escaped + `"`
}

// SearchArtists runs one artist search for name, requesting at most limit
// candidates. Failures are tagged with services markers: ErrTimeout,
// ErrTransient (network, 429, 5xx), ErrExternalService (other statuses) and
// ErrValidation (undecodable payload).
func (c *Client) SearchArtists(ctx context.Context, name string, limit int) (*SearchResult, error) {
	if c == nil {
		return nil, errors.New("musicbrainz: client is nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("musicbrainz: artist name must not be empty")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	endpoint := c.baseURL.JoinPath("artist/")
	params := url.Values{}
	params.Set("query", ArtistQuery(name))
	params.Set("fmt", "json")
	params.Set("limit", strconv.Itoa(limit))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, component, "search artist", "build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart).Round(time.Millisecond)
	if err != nil {
		marker := services.ErrTransient
		if isTimeout(err) {
			marker = services.ErrTimeout
		}
		return nil, services.Wrap(marker, component, "search artist", fmt.Sprintf("request failed (latency=%v)", latency), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		marker := services.ErrExternalService
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			marker = services.ErrTransient
		}
		message := fmt.Sprintf("unexpected status %s", resp.Status)
		if snippet := strings.TrimSpace(string(body)); snippet != "" {
			message += ": " + snippet
		}
		return nil, services.Wrap(marker, component, "search artist", message, nil)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrValidation, component, "search artist", "decode response", err)
	}

	artists := make([]Artist, 0, len(payload.Artists))
	for _, entry := range payload.Artists {
		artists = append(artists, entry.toArtist())
	}
	return &SearchResult{
		Count:   payload.Count,
		Offset:  payload.Offset,
		Artists: artists,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
