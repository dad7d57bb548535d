package content

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gonghongchen/hc-site/config"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

var ErrNotFound = errors.New("document not found")

// Resolve maps a site-root-relative link to the markdown document that
// serves it: "/" is index.md, "/a/b" is a/b.md or a/b/index.md. File names
// are tried in both NFC and NFD form since macOS stores the latter.
func Resolve(srcDir, link string) (string, error) {
	if config.IsExternal(link) {
		return "", errors.Errorf("%s is an external link", link)
	}
	if !strings.HasPrefix(link, "/") {
		return "", errors.Errorf("%s is not site-root-relative", link)
	}

	for _, candidate := range candidates(link) {
		for _, form := range []norm.Form{norm.NFC, norm.NFD} {
			p := filepath.Join(srcDir, filepath.FromSlash(form.String(candidate)))
			info, err := os.Stat(p)
			if err == nil && !info.IsDir() {
				return p, nil
			}
		}
	}

	return "", errors.Wrapf(ErrNotFound, "%s in %s", link, srcDir)
}

func candidates(link string) []string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	if unescaped, err := url.PathUnescape(link); err == nil {
		link = unescaped
	}

	dir := strings.HasSuffix(link, "/")
	clean := strings.TrimPrefix(path.Clean(link), "/")
	if clean == "" || dir {
		return []string{path.Join(clean, "index.md")}
	}

	clean = strings.TrimSuffix(clean, ".html")
	clean = strings.TrimSuffix(clean, ".md")
	return []string{clean + ".md", path.Join(clean, "index.md")}
}

type BrokenLink struct {
	Page config.Page
	Err  error
}

// CheckLinks returns every page of site whose document is missing from srcDir.
func CheckLinks(site config.SiteConfig, srcDir string) []BrokenLink {
	var broken []BrokenLink
	for _, page := range site.Pages() {
		if _, err := Resolve(srcDir, page.Link); err != nil {
			broken = append(broken, BrokenLink{Page: page, Err: err})
		}
	}
	return broken
}
