package handlers

import (
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRouter(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "index.html", "home")
	writeDoc(t, root, "others/英雄联盟语录/index.html", "quotes")
	writeDoc(t, root, "assets/logo.jpg", "jpeg")
	writeDoc(t, root, "404.html", "missing")

	router := NewStaticRouter(root, zerolog.Nop())

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/", http.StatusOK, "home"},
		{"/others/英雄联盟语录", http.StatusOK, "quotes"},
		{"/others/英雄联盟语录/", http.StatusOK, "quotes"},
		{"/assets/logo.jpg", http.StatusOK, "jpeg"},
		{"/others", http.StatusNotFound, "missing"},
		{"/../etc/passwd", http.StatusNotFound, "missing"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, router, tt.path)
			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestStaticRouterWithout404Page(t *testing.T) {
	router := NewStaticRouter(t.TempDir(), zerolog.Nop())
	rec := get(t, router, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
