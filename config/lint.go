package config

import (
	"fmt"
	"net/url"
	"strings"
)

var knownIcons = map[string]bool{
	"discord":   true,
	"facebook":  true,
	"github":    true,
	"gitlab":    true,
	"instagram": true,
	"linkedin":  true,
	"mastodon":  true,
	"npm":       true,
	"slack":     true,
	"twitter":   true,
	"x":         true,
	"youtube":   true,
}

type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// LintError collects every problem found by Lint.
type LintError struct {
	Issues []Issue
}

func (e *LintError) Error() string {
	if len(e.Issues) == 1 {
		return "site config: " + e.Issues[0].String()
	}
	lines := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		lines = append(lines, issue.String())
	}
	return fmt.Sprintf("site config: %d issues:\n  %s", len(e.Issues), strings.Join(lines, "\n  "))
}

// IsExternal reports whether link points outside the site.
func IsExternal(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}

// Lint checks the configuration for authoring mistakes. It returns nil or a
// *LintError.
func Lint(site SiteConfig) error {
	var issues []Issue
	add := func(path, format string, args ...interface{}) {
		issues = append(issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(site.Title) == "" {
		add("title", "must not be empty")
	}

	checkItem := func(path string, item NavItem) {
		if strings.TrimSpace(item.Text) == "" {
			add(path+".text", "must not be empty")
		}
		switch {
		case item.Link == "":
			add(path+".link", "must not be empty")
		case IsExternal(item.Link):
		case !strings.HasPrefix(item.Link, "/"):
			add(path+".link", "%q must be site-root-relative (start with /)", item.Link)
		case strings.ContainsAny(item.Link, "{}"):
			add(path+".link", "%q must not contain { or }", item.Link)
		}
	}

	for i, item := range site.ThemeConfig.Nav {
		checkItem(fmt.Sprintf("nav[%d]", i), item)
	}

	seen := make(map[string]int)
	for i, group := range site.ThemeConfig.Sidebar {
		path := fmt.Sprintf("sidebar[%d]", i)
		if strings.TrimSpace(group.Text) == "" {
			add(path+".text", "must not be empty")
		} else if first, ok := seen[group.Text]; ok {
			add(path+".text", "duplicate group label %q (first used by sidebar[%d])", group.Text, first)
		} else {
			seen[group.Text] = i
		}
		if len(group.Items) == 0 {
			add(path+".items", "group has no items")
		}
		for j, item := range group.Items {
			checkItem(fmt.Sprintf("%s.items[%d]", path, j), item)
		}
	}

	for i, social := range site.ThemeConfig.SocialLinks {
		path := fmt.Sprintf("socialLinks[%d]", i)
		if !knownIcons[social.Icon] {
			add(path+".icon", "unknown icon %q", social.Icon)
		}
		u, err := url.Parse(social.Link)
		if err != nil || !IsExternal(social.Link) || u.Host == "" {
			add(path+".link", "%q must be an absolute http(s) URL", social.Link)
		}
	}

	if logo := site.ThemeConfig.Logo; logo != "" && !strings.HasPrefix(logo, "/") && !IsExternal(logo) {
		add("logo", "%q must be site-root-relative (start with /)", logo)
	}

	for i, tag := range site.Head {
		if strings.TrimSpace(tag.TagName) == "" {
			add(fmt.Sprintf("head[%d].tag", i), "must not be empty")
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &LintError{Issues: issues}
}
