package content

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: Git实用命令指南\ndescription: 常用命令\n---\n\n## 分支\n\n`git switch -c dev`\n"))
	require.NoError(t, err)

	assert.Equal(t, "Git实用命令指南", doc.Meta.Title)
	assert.Equal(t, "常用命令", doc.Meta.Description)
	assert.NotContains(t, string(doc.Body), "title:")

	html := doc.Render()
	assert.Contains(t, html, `<h2 id="分支">分支</h2>`)
	assert.Contains(t, html, "<code>git switch -c dev</code>")
}

func TestParseWithoutFrontMatter(t *testing.T) {
	doc, err := Parse([]byte("# 英雄联盟语录\n\n> 德玛西亚！\n"))
	require.NoError(t, err)

	assert.Equal(t, "英雄联盟语录", doc.Meta.Title)
	assert.Contains(t, doc.Render(), "<blockquote>")
}

func TestRenderIsRepeatable(t *testing.T) {
	doc, err := Parse([]byte("# Title\r\n\r\ntext\r\n"))
	require.NoError(t, err)
	assert.Equal(t, doc.Render(), doc.Render())
}

func TestReadFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "index.md")

	doc, err := ReadFile(filepath.Join(root, "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "index.md", doc.Meta.Title)

	_, err = ReadFile(filepath.Join(root, "missing.md"))
	assert.Error(t, err)
}
