package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/version"
	"termfolio/pkg/termtypes"
)

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()
	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/client/info", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, termtypes.ClientInfo{Username: "alice", IPAddress: "10.0.0.1", Hostname: "example.dev", UserAgent: r.UserAgent()})
	})
	mux.HandleFunc("GET /api/server/info", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, termtypes.ServerInfo{Hostname: "backend", CPU: termtypes.ServerCPU{Cores: 8}})
	})
	mux.HandleFunc("GET /api/server/boot-info", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, termtypes.BootInfo{Hostname: "backend", CPUCores: 8})
	})
	mux.HandleFunc("GET /api/content/directory/{name}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("name") != "blog" {
			writeJSON(w, http.StatusOK, termtypes.DirectoryListing{Error: "Directory not found"})
			return
		}
		writeJSON(w, http.StatusOK, termtypes.DirectoryListing{Path: "blog", Contents: []string{"a.md", "b.md"}})
	})
	mux.HandleFunc("GET /api/content/file", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("path") != "blog/a.md" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "File not found"})
			return
		}
		writeJSON(w, http.StatusOK, termtypes.FileContent{Path: "blog/a.md", Content: "A"})
	})
	mux.HandleFunc("GET /api/content/blog/list", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []termtypes.BlogMetadata{{Filename: "a.md", Title: "A"}})
	})
	mux.HandleFunc("GET /api/content/blog/search", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []termtypes.BlogMetadata{{Filename: "a.md", Title: r.URL.Query().Get("term")}})
	})
	mux.HandleFunc("GET /api/content/portfolio/list", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []termtypes.PortfolioMetadata{{Filename: "p.md", Title: "P"}})
	})
	mux.HandleFunc("GET /api/content/portfolio/filter", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []termtypes.PortfolioMetadata{{Filename: "p.md", Technologies: []string{r.URL.Query().Get("tech")}}})
	})
	mux.HandleFunc("GET /api/content/resume", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, termtypes.Resume{Text: "CV", DownloadURL: "/api/content/resume/download"})
	})
	mux.HandleFunc("POST /api/contact", func(w http.ResponseWriter, r *http.Request) {
		var req termtypes.ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			writeJSON(w, http.StatusBadRequest, termtypes.ContactResponse{Error: "Name is required"})
			return
		}
		writeJSON(w, http.StatusOK, termtypes.ContactResponse{ID: "id-1", EmailSent: true})
	})
	mux.HandleFunc("GET /api/slow", func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, url string) *ContentClient {
	t.Helper()
	client := NewContentClient(url+"/", time.Second)
	require.NoError(t, client.Initialize())
	return client
}

func TestContentClient_Initialize(t *testing.T) {
	client := NewContentClient("ftp://example.com", 0)
	assert.Error(t, client.Initialize())
	assert.Equal(t, DefaultTimeout, client.timeout)

	client = NewContentClient("https://example.com/", time.Second)
	require.NoError(t, client.Initialize())
	assert.Equal(t, "https://example.com", client.BaseURL())
	assert.Equal(t, "content_client", client.Name())
}

func TestContentClient_NotInitialized(t *testing.T) {
	client := NewContentClient("http://example.com", time.Second)
	_, err := client.BlogList(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestContentClient_Endpoints(t *testing.T) {
	server := newTestBackend(t)
	client := newTestClient(t, server.URL)
	ctx := context.Background()

	info, err := client.ClientInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, version.UserAgent(), info.UserAgent)

	serverInfo, err := client.ServerInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, serverInfo.CPU.Cores)

	boot, err := client.BootInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "backend", boot.Hostname)

	files, err := client.DirectoryContents(ctx, "blog")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.md"}, files)

	_, err = client.DirectoryContents(ctx, "other")
	assert.ErrorContains(t, err, "Directory not found")

	content, err := client.FileContent(ctx, "blog/a.md")
	require.NoError(t, err)
	assert.Equal(t, "A", content)

	posts, err := client.BlogSearch(ctx, "go & rust")
	require.NoError(t, err)
	assert.Equal(t, "go & rust", posts[0].Title)

	list, err := client.BlogList(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	projects, err := client.PortfolioFilter(ctx, "Go")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, projects[0].Technologies)

	all, err := client.PortfolioList(ctx)
	require.NoError(t, err)
	assert.Equal(t, "P", all[0].Title)

	resume, err := client.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/api/content/resume/download", resume.DownloadURL)

	resp, err := client.SubmitContact(ctx, termtypes.ContactRequest{Name: "Bob", Email: "b@x.io", Message: "hi"})
	require.NoError(t, err)
	assert.True(t, resp.EmailSent)
}

func TestContentClient_StatusErrors(t *testing.T) {
	server := newTestBackend(t)
	client := newTestClient(t, server.URL)

	_, err := client.FileContent(context.Background(), "blog/missing.md")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "Request failed with status code 404: File not found", err.Error())

	_, err = client.SubmitContact(context.Background(), termtypes.ContactRequest{})
	assert.ErrorContains(t, err, "Name is required")
}

func TestContentClient_ContextCancel(t *testing.T) {
	server := newTestBackend(t)
	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := client.get(ctx, "/api/slow", nil, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
