package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesSite(t *testing.T) {
	site, err := Load(filepath.Join(t.TempDir(), "site.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(Site(), site); diff != "" {
		t.Fatalf("unexpected site (-want +got):\n%s", diff)
	}

	site, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "H&C", site.Title)
}

func TestLoadOverridesPresentKeys(t *testing.T) {
	path := writeFile(t, "site.yaml", `
title: Notes
theme_config:
  nav:
    - text: 首页
      link: /
    - text: 关于
      link: /about
`)
	site, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Notes", site.Title)
	assert.Equal(t, Site().Description, site.Description)
	require.Len(t, site.ThemeConfig.Nav, 2)
	assert.Equal(t, "/about", site.ThemeConfig.Nav[1].Link)
	assert.Len(t, site.ThemeConfig.Sidebar, 2)
	assert.Equal(t, "/assets/logo.jpg", site.ThemeConfig.Logo)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "site.yaml", "title: [unterminated")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing site file")
}

func TestEncodeYAMLRoundTripsThroughLoad(t *testing.T) {
	site := Site()
	site.Title = "Round trip"
	site.ThemeConfig.Sidebar = site.ThemeConfig.Sidebar[1:]

	out, err := EncodeYAML(site)
	require.NoError(t, err)

	loaded, err := Load(writeFile(t, "site.yaml", string(out)))
	require.NoError(t, err)
	if diff := cmp.Diff(site, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "site.yaml", `
title: Notes
themeConfig:
  socialLinks:
    - icon: gitlab
      link: https://gitlab.com/gonghongchen
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing site file")
	assert.Contains(t, err.Error(), "themeConfig")
}
