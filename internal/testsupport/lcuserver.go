package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hexctl/internal/lcu"
)

// FakeClient hosts an httptest server speaking the subset of the local
// game-client API that tests exercise. Every request must carry the riot basic
// auth credentials or the server replies 401.
type FakeClient struct {
	Server   *httptest.Server
	Password string

	mux *http.ServeMux
}

// NewFakeClient starts a fake client API and registers cleanup with t.
func NewFakeClient(t testing.TB) *FakeClient {
	t.Helper()

	fake := &FakeClient{
		Password: "local-secret",
		mux:      http.NewServeMux(),
	}
	fake.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "riot" || pass != fake.Password {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fake.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(fake.Server.Close)
	return fake
}

// Handle registers a handler for the given pattern.
func (f *FakeClient) Handle(pattern string, handler http.HandlerFunc) {
	f.mux.HandleFunc(pattern, handler)
}

// RespondJSON registers a handler that always answers with the JSON encoding
// of v.
func (f *FakeClient) RespondJSON(pattern string, v any) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	})
}

// Credentials returns lockfile credentials matching the fake server.
func (f *FakeClient) Credentials() lcu.Credentials {
	return lcu.Credentials{
		Name:     "LeagueClient",
		PID:      4242,
		Port:     443,
		Password: f.Password,
		Protocol: "https",
	}
}

// Options returns client options pointed at the fake server.
func (f *FakeClient) Options() lcu.Options {
	return lcu.Options{BaseURL: f.Server.URL}
}

// NewClient builds an lcu.Client wired to the fake server.
func (f *FakeClient) NewClient() *lcu.Client {
	return lcu.New(f.Credentials(), f.Options())
}
