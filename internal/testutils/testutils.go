// Package testutils holds helpers shared by package tests: a fake REST
// backend, dashboard dependencies and rendering shortcuts.
package testutils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/config"
	"github.com/nfrund/octofit/internal/decor"
	"github.com/nfrund/octofit/internal/module"
)

// ConfigForTests reads .env.test from the project root into a validated
// config. Values from the real environment are ignored.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	require.NoError(t, err, "failed to load .env.test file")

	cfg, err := config.FromEnv(func(k string) string { return env[k] })
	require.NoError(t, err)
	return cfg
}

// Response is what the fake backend answers for one endpoint.
type Response struct {
	Status int
	Body   string
}

// Backend is a fake OctoFit REST API.
type Backend struct {
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	hits      map[string]int
}

// NewBackend serves body for each resource name given, e.g.
// {"activities": `[...]`}. Unlisted resources answer 404.
func NewBackend(t *testing.T, bodies map[string]string) *Backend {
	t.Helper()
	b := &Backend{responses: make(map[string]Response), hits: make(map[string]int)}
	for resource, body := range bodies {
		b.Set(resource, Response{Status: http.StatusOK, Body: body})
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Server.Close)
	return b
}

// Set replaces the response of a resource.
func (b *Backend) Set(resource string, r Response) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses["/"+apiclient.Paths[resource]] = r
}

// Hits counts requests made for a resource.
func (b *Backend) Hits(resource string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits["/"+apiclient.Paths[resource]]
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.hits[r.URL.Path]++
	res, ok := b.responses[r.URL.Path]
	b.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)
	_, _ = w.Write([]byte(res.Body))
}

// Client returns an API client pointed at the backend.
func (b *Backend) Client(t *testing.T) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(b.Server.URL + "/")
	require.NoError(t, err)
	return c
}

// Deps returns dashboard dependencies without presentation delays and with
// seeded decoration.
func (b *Backend) Deps(t *testing.T) module.Dependencies {
	return module.Dependencies{
		Client:     b.Client(t),
		DelayScale: 0,
		Decor:      func() *decor.Source { return decor.Seeded(42) },
		Now:        func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC) },
	}
}

// Settle mounts p and waits for its load to finish. The panel is
// unmounted when the test ends.
func Settle(t *testing.T, p module.Panel) module.Panel {
	t.Helper()
	p.Mount(t.Context())
	t.Cleanup(p.Unmount)
	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("panel did not settle")
	}
	return p
}

// Render renders n to a string.
func Render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

// StatValue returns the value of the stat titled title, or "".
func StatValue(stats []module.Stat, title string) string {
	for _, s := range stats {
		if strings.EqualFold(s.Title, title) {
			return s.Value
		}
	}
	return ""
}
