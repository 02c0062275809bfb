package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRenderCommand(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":2,"cover_img":"https://x/y.webp","title":"湮灭 Annihilation (2018)","desc":"莉娜是一名生物学家"}`))
	}))
	defer srv.Close()

	out, err := executeRoot(t, "render", "--server", srv.URL, "--id", "2")
	require.NoError(t, err)
	assert.Equal(t, "/movies/2", gotPath)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "湮灭 Annihilation (2018)", doc.Find(".movie-container h1").Text())
	assert.Equal(t, 5, doc.Find(".star-rating .star").Length())
}

func TestRenderCommand_WithoutRating(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"Ready Player One"}`))
	}))
	defer srv.Close()

	out, err := executeRoot(t, "render", "--server", srv.URL, "--rating=false")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Ready Player One</h1>")
	assert.NotContains(t, out, "star-rating")
}

func TestRenderCommand_EndpointError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	out, err := executeRoot(t, "render", "--server", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie 1 failed to load")
	assert.Contains(t, out, `class="movie-error"`)
}

func TestRenderCommand_RejectsArgs(t *testing.T) {
	_, err := executeRoot(t, "render", "extra")
	assert.Error(t, err)
}
