package config

// config/site.go

type SiteConfig struct {
	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description" json:"description"`
	ThemeConfig ThemeConfig `yaml:"theme_config" json:"themeConfig"`
	Head        []HeadTag   `yaml:"head" json:"head,omitempty"`
}

type ThemeConfig struct {
	Nav         []NavItem      `yaml:"nav" json:"nav,omitempty"`
	Sidebar     []SidebarGroup `yaml:"sidebar" json:"sidebar,omitempty"`
	SocialLinks []SocialLink   `yaml:"social_links" json:"socialLinks,omitempty"`
	Logo        string         `yaml:"logo,omitempty" json:"logo,omitempty"`
}

type NavItem struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
}

type SidebarGroup struct {
	Text  string    `yaml:"text" json:"text"`
	Items []NavItem `yaml:"items" json:"items,omitempty"`
}

type SocialLink struct {
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

// HeadTag is an element injected into the <head> of every generated page.
type HeadTag struct {
	TagName    string            `yaml:"tag"`
	Attributes map[string]string `yaml:"attrs"`
}

const logoPath = "/assets/logo.jpg"

// Site returns the site configuration. Every call builds a fresh value, so
// callers are free to modify what they get back.
func Site() SiteConfig {
	return SiteConfig{
		Title:       "H&C",
		Description: "会记录一些值得记录的技术文章、生活分享",
		ThemeConfig: ThemeConfig{
			Nav: []NavItem{
				{Text: "主页", Link: "/"},
			},
			Sidebar: []SidebarGroup{
				{
					Text: "杂谈",
					Items: []NavItem{
						{Text: "英雄联盟语录", Link: "/others/英雄联盟语录"},
					},
				},
				{
					Text: "前端",
					Items: []NavItem{
						{Text: "nrm安装过程遇到的问题及解决方案", Link: "/front-end/nrm安装过程遇到的问题及解决方案"},
						{Text: "Git实用命令指南", Link: "/front-end/Git实用命令指南"},
						{Text: "基于SharedWorker的前端项目跨窗口消息通信方案", Link: "/front-end/基于SharedWorker的前端项目跨窗口消息通信方案"},
					},
				},
			},
			SocialLinks: []SocialLink{
				{Icon: "github", Link: "https://github.com/gonghongchen/"},
			},
			Logo: logoPath,
		},
		Head: []HeadTag{
			{TagName: "link", Attributes: map[string]string{"rel": "icon", "href": logoPath}},
		},
	}
}
