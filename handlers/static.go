package handlers

import (
	"io"
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
)

// NewStaticRouter serves a built site from dir. "/a/b" is answered by
// a/b, a/b/index.html or a/b.html; anything else gets dir/404.html.
func NewStaticRouter(dir string, logger zerolog.Logger) *httprouter.Router {
	s := &staticSite{root: http.Dir(dir), logger: logger}

	router := httprouter.New()
	router.RedirectTrailingSlash = false
	router.GET("/*filepath", s.serve)
	router.HEAD("/*filepath", s.serve)
	return router
}

type staticSite struct {
	root   http.Dir
	logger zerolog.Logger
}

func (s *staticSite) serve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := path.Clean("/" + ps.ByName("filepath"))
	for _, candidate := range []string{name, path.Join(name, "index.html"), name + ".html"} {
		if s.serveFile(w, r, candidate, http.StatusOK) {
			return
		}
	}

	s.logger.Debug().Str("path", r.URL.Path).Msg("not found")
	if !s.serveFile(w, r, "/404.html", http.StatusNotFound) {
		http.NotFound(w, r)
	}
}

func (s *staticSite) serveFile(w http.ResponseWriter, r *http.Request, name string, status int) bool {
	f, err := s.root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	if status == http.StatusOK {
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
		return true
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		if _, err := io.Copy(w, f); err != nil {
			s.logger.Debug().Err(err).Str("file", name).Msg("writing response")
		}
	}
	return true
}
