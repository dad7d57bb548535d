package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gonghongchen/hc-site/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestBuildSite(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "public")
	writeDoc(t, src, "index.md", "# H&C\n\nhello\n")
	writeDoc(t, src, "others/英雄联盟语录.md", "# 英雄联盟语录\n\n德玛西亚\n")
	writeDoc(t, src, "front-end/Git实用命令指南.md", "# Git\n\n`git log`\n")
	writeDoc(t, src, "public/assets/logo.jpg", "jpeg")

	options := config.Options{Origin: "https://example.com", SrcDir: src, OutDir: out}
	require.NoError(t, buildSite(config.Site(), options, "2026-10-17", zerolog.Nop()))

	assert.Contains(t, readFile(t, filepath.Join(out, "index.html")), "hello")
	assert.Contains(t, readFile(t, filepath.Join(out, "others", "英雄联盟语录", "index.html")), "德玛西亚")
	assert.Contains(t, readFile(t, filepath.Join(out, "front-end", "Git实用命令指南", "index.html")), "<code>git log</code>")
	assert.Equal(t, "jpeg", readFile(t, filepath.Join(out, "assets", "logo.jpg")))
	assert.Contains(t, readFile(t, filepath.Join(out, "404.html")), "页面不存在")
	assert.Contains(t, readFile(t, filepath.Join(out, "config.mjs")), "export default defineConfig(")

	// Pages without a document are left out of the output and the sitemap.
	_, err := os.Stat(filepath.Join(out, "front-end", "nrm安装过程遇到的问题及解决方案", "index.html"))
	assert.True(t, os.IsNotExist(err))

	sitemap := readFile(t, filepath.Join(out, "sitemap.xml"))
	assert.Contains(t, sitemap, "<loc>https://example.com/</loc>")
	assert.Contains(t, sitemap, "<lastmod>2026-10-17</lastmod>")
	assert.NotContains(t, sitemap, "nrm")
}

func TestBuildSiteRejectsInvalidConfig(t *testing.T) {
	site := config.Site()
	site.ThemeConfig.Nav[0].Link = "index"

	options := config.Options{SrcDir: t.TempDir(), OutDir: t.TempDir()}
	err := buildSite(site, options, "", zerolog.Nop())
	require.Error(t, err)
	assert.IsType(t, &config.LintError{}, err)
}
