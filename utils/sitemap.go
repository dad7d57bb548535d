package utils

import (
	"encoding/xml"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemap writes the sitemap for routes to path.
func GenerateSitemap(path, origin string, routes []string, lastMod string) error {
	xmlOutput, err := GenerateSitemapContent(origin, routes, lastMod)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(renameio.WriteFile(path, []byte(xml.Header+xmlOutput+"\n"), 0644))
}

// GenerateSitemapContent renders routes as a sitemap urlset. lastMod is
// passed in so equal inputs give equal output.
func GenerateSitemapContent(origin string, routes []string, lastMod string) (string, error) {
	baseURL := strings.TrimSuffix(origin, "/")
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	for _, route := range routes {
		loc := (&url.URL{Path: route}).EscapedPath()
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     baseURL + loc,
			LastMod: lastMod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}
