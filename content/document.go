package content

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/pkg/errors"
)

type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Layout      string `yaml:"layout"`
}

// Document is a markdown page split into its front matter and body.
type Document struct {
	Meta Meta
	Body []byte
}

// Parse splits optional front matter from data. Without an explicit title
// the first level-one heading is used.
func Parse(data []byte) (Document, error) {
	var doc Document
	body, err := frontmatter.Parse(bytes.NewReader(data), &doc.Meta)
	if err != nil {
		return Document{}, errors.Wrap(err, "parsing front matter")
	}
	doc.Body = body

	if doc.Meta.Title == "" {
		doc.Meta.Title = firstHeading(body)
	}

	return doc, nil
}

func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.WithStack(err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, errors.Wrap(err, path)
	}
	return doc, nil
}

// Render converts the body to HTML.
func (d Document) Render() string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	return string(markdown.ToHTML(append([]byte(nil), d.Body...), p, nil))
}

func firstHeading(body []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
