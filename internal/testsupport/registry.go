package testsupport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Registry is a fake MusicBrainz artist search endpoint. Responses are keyed
// by artist name; unknown names get an empty artist list.
type Registry struct {
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]RegistryResponse
	queries   []string
}

// RegistryResponse is the canned reply for one artist name.
type RegistryResponse struct {
	Status int
	Body   string
}

// NewRegistry starts a fake registry that is closed when the test ends.
func NewRegistry(t testing.TB, responses map[string]RegistryResponse) *Registry {
	t.Helper()

	reg := &Registry{responses: responses}
	reg.Server = httptest.NewServer(http.HandlerFunc(reg.serve))
	t.Cleanup(reg.Server.Close)
	return reg
}

// BaseURL returns the web service root to hand to the client.
func (r *Registry) BaseURL() string {
	return r.Server.URL + "/ws/2"
}

// Queries returns the raw query parameters received, in order.
func (r *Registry) Queries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.queries))
	copy(out, r.queries)
	return out
}

func (r *Registry) serve(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query().Get("query")
	r.mu.Lock()
	r.queries = append(r.queries, query)
	r.mu.Unlock()

	name := strings.TrimSuffix(strings.TrimPrefix(query, `artist:"`), `"`)
	resp, ok := r.responses[name]
	if !ok {
		resp = RegistryResponse{Body: `{"count":0,"offset":0,"artists":[]}`}
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp.Body))
}
