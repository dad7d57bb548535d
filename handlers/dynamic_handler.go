package handlers

import (
	"encoding/xml"
	"net/http"
	"path/filepath"

	"github.com/gonghongchen/hc-site/config"
	"github.com/gonghongchen/hc-site/content"
	"github.com/gonghongchen/hc-site/utils"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Preview renders the site's markdown documents on request.
type Preview struct {
	site   config.SiteConfig
	opts   config.Options
	logger zerolog.Logger
}

func NewPreview(site config.SiteConfig, opts config.Options, logger zerolog.Logger) *Preview {
	return &Preview{site: site, opts: opts, logger: logger}
}

// Routes returns the page paths served by the router, in display order.
func (p *Preview) Routes() []string {
	var routes []string
	for _, page := range p.site.Pages() {
		routes = append(routes, page.Link)
	}
	return routes
}

func (p *Preview) Router() (*mux.Router, error) {
	router := mux.NewRouter()

	router.NotFoundHandler = http.HandlerFunc(p.NotFound)

	assets := filepath.Join(p.opts.SrcDir, "public", "assets")
	router.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", http.FileServer(http.Dir(assets))))

	for _, page := range p.site.Pages() {
		route := router.HandleFunc(page.Link, p.PageHandler(page)).Methods("GET", "HEAD")
		if err := route.GetError(); err != nil {
			return nil, errors.Wrapf(err, "registering %s", page.Link)
		}
	}

	sitemap, err := utils.GenerateSitemapContent(p.opts.Origin, p.Routes(), "")
	if err != nil {
		return nil, errors.Wrap(err, "generating sitemap")
	}
	router.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Write([]byte(xml.Header + sitemap))
	}).Methods("GET", "HEAD")

	return router, nil
}

func (p *Preview) PageHandler(page config.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		source, err := content.Resolve(p.opts.SrcDir, page.Link)
		if err != nil {
			p.logger.Warn().Err(err).Str("page", page.Link).Msg("document missing")
			p.NotFound(w, r)
			return
		}

		doc, err := content.ReadFile(source)
		if err != nil {
			p.logger.Error().Err(err).Str("source", source).Msg("reading document")
			http.Error(w, "Error reading document", http.StatusInternalServerError)
			return
		}

		ctx := layoutContext(p.site, page.Link)
		title := doc.Meta.Title
		if title == "" {
			title = page.Text
		}
		ctx.Set("pageTitle", title)
		if doc.Meta.Description != "" {
			ctx.Set("description", doc.Meta.Description)
		}

		pageHtml, err := renderLayout(ctx, `<article class="doc">`+doc.Render()+`</article>`)
		if err != nil {
			p.logger.Error().Err(err).Str("page", page.Link).Msg("rendering page")
			http.Error(w, "Error rendering page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, err = w.Write([]byte(pageHtml))
		if err != nil {
			p.logger.Debug().Err(err).Str("page", page.Link).Msg("writing response")
		}
	}
}
