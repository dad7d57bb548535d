package config

// Page is a document of the site reachable from the nav or the sidebar.
type Page struct {
	Link  string
	Text  string
	Group string // sidebar group label, empty for nav entries
}

// Pages lists the internal links of the nav followed by the sidebar, in
// display order. A link appearing twice is reported once, at its first
// position.
func (s SiteConfig) Pages() []Page {
	var pages []Page
	seen := make(map[string]bool)

	add := func(item NavItem, group string) {
		if item.Link == "" || IsExternal(item.Link) || seen[item.Link] {
			return
		}
		seen[item.Link] = true
		pages = append(pages, Page{Link: item.Link, Text: item.Text, Group: group})
	}

	for _, item := range s.ThemeConfig.Nav {
		add(item, "")
	}
	for _, group := range s.ThemeConfig.Sidebar {
		for _, item := range group.Items {
			add(item, group.Text)
		}
	}

	return pages
}
