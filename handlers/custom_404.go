package handlers

import (
	"net/http"
)

func (p *Preview) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx := layoutContext(p.site, r.URL.Path)
	ctx.Set("pageTitle", "404")

	notFoundContent, err := renderTemplate("404.plush.html", ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("rendering 404 template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pageHtml, err := renderLayout(ctx, notFoundContent)
	if err != nil {
		p.logger.Error().Err(err).Msg("rendering 404 layout")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(pageHtml))
}
