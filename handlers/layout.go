package handlers

import (
	"embed"
	"html"
	"html/template"
	"sort"
	"strings"

	"github.com/gobuffalo/plush"
	"github.com/gonghongchen/hc-site/config"
	"github.com/pkg/errors"
)

//go:embed templates/*.plush.html
var templates embed.FS

func renderTemplate(name string, ctx *plush.Context) (string, error) {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return "", errors.WithStack(err)
	}

	tmpl, err := plush.Parse(string(content))
	if err != nil {
		return "", errors.Wrapf(err, "parsing %s", name)
	}

	out, err := tmpl.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "executing %s", name)
	}
	return out, nil
}

// layoutContext holds the values shared by every page of the site.
func layoutContext(site config.SiteConfig, currentPath string) *plush.Context {
	ctx := plush.NewContext()
	ctx.Set("site", site)
	ctx.Set("currentPath", currentPath)
	ctx.Set("pageTitle", "")
	ctx.Set("description", site.Description)
	ctx.Set("headTags", renderHeadTags(site.Head))
	return ctx
}

func renderLayout(ctx *plush.Context, body string) (string, error) {
	ctx.Set("yield", template.HTML(body))
	return renderTemplate("base.plush.html", ctx)
}

// renderHeadTags writes each tag with its attributes in name order.
func renderHeadTags(tags []config.HeadTag) template.HTML {
	var b strings.Builder
	for i, tag := range tags {
		if i > 0 {
			b.WriteString("\n  ")
		}
		names := make([]string, 0, len(tag.Attributes))
		for name := range tag.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("<" + html.EscapeString(tag.TagName))
		for _, name := range names {
			b.WriteString(" " + html.EscapeString(name) + `="` + html.EscapeString(tag.Attributes[name]) + `"`)
		}
		b.WriteString(">")
	}
	return template.HTML(b.String())
}
