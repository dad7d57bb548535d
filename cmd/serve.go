package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gonghongchen/hc-site/config"
	"github.com/gonghongchen/hc-site/handlers"
	"github.com/gonghongchen/hc-site/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the site, or serve a built copy with --built",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		built, _ := cmd.Flags().GetBool("built")
		if port == "" {
			port = opts.Port
		}
		logger := logging.WithComponent("serve")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var handler http.Handler
		if built {
			handler = handlers.NewStaticRouter(opts.OutDir, logger)
		} else {
			reloader := &reloadingHandler{opts: opts, logger: logger}
			if err := reloader.reload(); err != nil {
				return err
			}
			if err := reloader.watch(ctx); err != nil {
				logger.Warn().Err(err).Msg("site file changes will not be picked up")
			}
			handler = reloader
		}

		server := &http.Server{Addr: ":" + port, Handler: handler}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(shutdownCtx)
		}()

		logger.Info().Str("addr", "http://localhost:"+port).Bool("built", built).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.WithStack(err)
		}
		return nil
	},
}

// reloadingHandler serves the preview router and swaps it when the site
// file changes.
type reloadingHandler struct {
	opts    config.Options
	logger  zerolog.Logger
	current atomic.Pointer[http.Handler]
}

func (h *reloadingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	(*h.current.Load()).ServeHTTP(w, r)
}

func (h *reloadingHandler) reload() error {
	site, err := config.Load(h.opts.SiteFile)
	if err != nil {
		return err
	}
	if err := config.Lint(site); err != nil {
		h.logger.Warn().Err(err).Msg("site configuration has problems")
	}

	router, err := handlers.NewPreview(site, h.opts, h.logger).Router()
	if err != nil {
		return err
	}
	var handler http.Handler = router
	h.current.Store(&handler)
	return nil
}

func (h *reloadingHandler) watch(ctx context.Context) error {
	if h.opts.SiteFile == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WithStack(err)
	}
	// Editors replace files on save, so watch the directory.
	dir := filepath.Dir(h.opts.SiteFile)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return errors.Wrapf(err, "watching %s", dir)
	}

	siteFile := filepath.Clean(h.opts.SiteFile)
	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != siteFile {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(300*time.Millisecond, func() {
					if err := h.reload(); err != nil {
						h.logger.Error().Err(err).Msg("reloading site file, keeping previous configuration")
						return
					}
					h.logger.Info().Str("file", siteFile).Msg("site file reloaded")
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				h.logger.Warn().Err(err).Msg("watcher error")
			}
		}
	}()

	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "port to run the server on (default from options, 9010)")
	serveCmd.Flags().Bool("built", false, "serve the built output directory instead of rendering documents")
}
