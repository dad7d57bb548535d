package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSitemapContent(t *testing.T) {
	out, err := GenerateSitemapContent("https://example.com/", []string{"/", "/others/英雄联盟语录"}, "2026-10-17")
	require.NoError(t, err)

	var sitemap Sitemap
	require.NoError(t, xml.Unmarshal([]byte(out), &sitemap))
	require.Len(t, sitemap.Urls, 2)
	assert.Equal(t, "https://example.com/", sitemap.Urls[0].Loc)
	assert.Equal(t, "https://example.com/others/%E8%8B%B1%E9%9B%84%E8%81%94%E7%9B%9F%E8%AF%AD%E5%BD%95", sitemap.Urls[1].Loc)
	assert.Equal(t, "2026-10-17", sitemap.Urls[1].LastMod)

	again, err := GenerateSitemapContent("https://example.com/", []string{"/", "/others/英雄联盟语录"}, "2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateSitemap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "sitemap.xml")
	require.NoError(t, GenerateSitemap(path, "https://example.com", []string{"/"}, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))
	assert.Contains(t, string(data), "<loc>https://example.com/</loc>")
	assert.NotContains(t, string(data), "lastmod")
}
