package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"howitworks/internal/cli"
	"howitworks/internal/content"
	"howitworks/internal/layout"
	"howitworks/internal/output"
	"howitworks/internal/steps"
)

func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	s := New(cfg, content.NewStaticStore(steps.DefaultSection()))
	ts := httptest.NewServer(s.routes("http://example.test"))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRoutes(t *testing.T) {
	ts := newTestServer(t, Config{Breakpoint: layout.DefaultBreakpoint()})

	tests := []struct {
		name        string
		path        string
		wantStatus  int
		contentType string
		contains    []string
		excludes    []string
	}{
		{
			name:        "page",
			path:        "/",
			wantStatus:  http.StatusOK,
			contentType: "text/html",
			contains:    []string{"<!doctype html>", `<section id="how-it-works"`, "Accomplish more"},
			excludes:    []string{`class="dark"`},
		},
		{
			name:        "page dark via query",
			path:        "/?theme=dark",
			wantStatus:  http.StatusOK,
			contentType: "text/html",
			contains:    []string{`<html lang="en" class="dark">`},
		},
		{
			name:        "fragment",
			path:        "/section",
			wantStatus:  http.StatusOK,
			contentType: "text/html",
			contains:    []string{`<section id="how-it-works"`},
			excludes:    []string{"<!doctype"},
		},
		{
			name:        "tree json",
			path:        "/api/tree",
			wantStatus:  http.StatusOK,
			contentType: "application/json",
			contains:    []string{`"rows"`},
		},
		{
			name:        "tree yaml",
			path:        "/api/tree?format=yaml",
			wantStatus:  http.StatusOK,
			contentType: "application/yaml",
			contains:    []string{"rows:"},
		},
		{
			name:       "tree bad format",
			path:       "/api/tree?format=xml",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "healthz",
			path:        "/healthz",
			wantStatus:  http.StatusOK,
			contentType: "application/json",
			contains:    []string{`"status":"ok"`},
		},
		{
			name:       "unknown path",
			path:       "/nope",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "mcp disabled",
			path:       "/sse",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.contentType != "" {
				assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), tt.contentType), resp.Header.Get("Content-Type"))
			}
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestRoutes_ConfiguredDarkTheme(t *testing.T) {
	ts := newTestServer(t, Config{Dark: true})

	_, body := get(t, ts.URL+"/")
	assert.Contains(t, body, `class="dark"`)

	_, body = get(t, ts.URL+"/?theme=light")
	assert.NotContains(t, body, `class="dark"`)
}

func TestRoutes_TreeDecodes(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/api/tree")
	require.NoError(t, err)
	defer resp.Body.Close()

	var tree layout.Tree
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tree))
	assert.Equal(t, layout.Render(steps.Default()), tree)
}

func TestServer_Lifecycle(t *testing.T) {
	s := New(Config{Host: "127.0.0.1", Port: 0}, content.NewStaticStore(steps.DefaultSection()))
	ctx := context.Background()

	assert.ErrorIs(t, s.Stop(ctx), ErrNotStarted)
	assert.Empty(t, s.Addr())

	require.NoError(t, s.Start(ctx))
	assert.ErrorIs(t, s.Start(ctx), ErrAlreadyStarted)

	addr := s.Addr()
	require.NotEmpty(t, addr)
	resp, body := get(t, "http://"+addr+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "ok")

	require.NoError(t, s.Stop(ctx))
	assert.ErrorIs(t, s.Stop(ctx), ErrNotStarted)

	// A stopped server can be started again.
	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.Stop(ctx))
}

func TestServer_MCPOverSSE(t *testing.T) {
	s := New(Config{Host: "127.0.0.1", MCPEnabled: true, Breakpoint: layout.DefaultBreakpoint(), Version: "test"},
		content.NewStaticStore(steps.DefaultSection()))
	ctx := context.Background()
	require.NoError(t, s.Start(ctx))
	defer s.Stop(ctx)

	c := cli.NewClient("http://"+s.Addr()+"/sse", "test")
	require.NoError(t, c.Connect(ctx))
	defer c.Close()

	text, err := c.Render(ctx, output.FormatText, 100)
	require.NoError(t, err)
	assert.Contains(t, text, "How It Works")
	assert.Equal(t, 4, strings.Count(text, "●"))
}

func TestServer_WatchReloadsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`title: Erste
steps:
  - number: "01"
    title: Anlegen
    description: Aufgaben erfassen.
`), 0644))

	store, err := content.NewStore(path)
	require.NoError(t, err)

	s := New(Config{Host: "127.0.0.1", Watch: true}, store)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx))
	defer s.Stop(ctx)

	require.NoError(t, os.WriteFile(path, []byte(`title: Zweite
steps:
  - number: "01"
    title: Anlegen
    description: Aufgaben erfassen.
  - number: "02"
    title: Ordnen
    description: Prioritäten setzen.
`), 0644))

	assert.Eventually(t, func() bool {
		_, body := get(t, "http://"+s.Addr()+"/section")
		return strings.Contains(body, "Zweite") && strings.Contains(body, "Ordnen")
	}, 5*time.Second, 50*time.Millisecond)
}

func TestStatusRecorder_Flush(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: rr, status: http.StatusOK}

	var w http.ResponseWriter = rec
	_, ok := w.(http.Flusher)
	require.True(t, ok)

	rec.WriteHeader(http.StatusTeapot)
	rec.Flush()
	assert.Equal(t, http.StatusTeapot, rec.status)
	assert.True(t, rr.Flushed)
}
