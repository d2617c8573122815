package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeClientEnv is a fake game-client API listening on loopback TLS plus a
// config file whose lockfile points at it.
type fakeClientEnv struct {
	mux        *stubMux
	server     *httptest.Server
	configPath string
	dataDir    string
	backupDir  string
}

// stubMux routes "METHOD /path" patterns (a net/http feature only available
// from Go 1.22) on the Go 1.21 toolchain this module builds with. Patterns
// ending in "/" match by prefix, like net/http. Responses that never set a
// Content-Type default to application/json, since the lcu client's resty
// decoder only unmarshals JSON-typed responses.
type stubMux struct {
	exact  map[string][]stubRoute
	prefix map[string][]stubRoute
}

type stubRoute struct {
	method  string
	handler http.HandlerFunc
}

func newStubMux() *stubMux {
	return &stubMux{
		exact:  map[string][]stubRoute{},
		prefix: map[string][]stubRoute{},
	}
}

func (m *stubMux) HandleFunc(pattern string, handler http.HandlerFunc) {
	method, path := "", pattern
	if before, after, ok := strings.Cut(pattern, " "); ok {
		method, path = before, after
	}
	route := stubRoute{method: method, handler: handler}
	if strings.HasSuffix(path, "/") {
		m.prefix[path] = append(m.prefix[path], route)
	} else {
		m.exact[path] = append(m.exact[path], route)
	}
}

func (m *stubMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	routes := m.exact[r.URL.Path]
	if len(routes) == 0 {
		best := ""
		for p := range m.prefix {
			if strings.HasPrefix(r.URL.Path, p) && len(p) > len(best) {
				best = p
			}
		}
		routes = m.prefix[best]
	}
	if len(routes) == 0 {
		http.NotFound(w, r)
		return
	}
	for _, route := range routes {
		if route.method == "" || route.method == r.Method {
			route.handler(&jsonDefaultWriter{ResponseWriter: w}, r)
			return
		}
	}
	w.WriteHeader(http.StatusMethodNotAllowed)
}

// jsonDefaultWriter sets Content-Type to application/json unless the handler
// chose one, so stub bodies are not content-sniffed to text/plain.
type jsonDefaultWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *jsonDefaultWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *jsonDefaultWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

const testClientPassword = "local-secret"

func setupFakeClientEnv(t *testing.T) *fakeClientEnv {
	t.Helper()

	env := &fakeClientEnv{mux: newStubMux()}
	env.server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "riot" || pass != testClientPassword {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		env.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(env.server.Close)

	serverURL, err := url.Parse(env.server.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}

	base := t.TempDir()
	lockfilePath := filepath.Join(base, "lockfile")
	lockfile := fmt.Sprintf("LeagueClient:4242:%s:%s:https", serverURL.Port(), testClientPassword)
	if err := os.WriteFile(lockfilePath, []byte(lockfile), 0o644); err != nil {
		t.Fatalf("write lockfile: %v", err)
	}

	env.dataDir = filepath.Join(base, "data")
	env.backupDir = filepath.Join(base, "backups")
	env.configPath = filepath.Join(base, "config.toml")
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nbackup_dir = %q\nlog_dir = %q\n\n[client]\nlockfile = %q\n",
		env.dataDir,
		env.backupDir,
		filepath.Join(base, "logs"),
		lockfilePath,
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
