package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gonghongchen/hc-site/config"
	"github.com/gonghongchen/hc-site/content"
	"github.com/gonghongchen/hc-site/handlers"
	"github.com/gonghongchen/hc-site/javascript"
	"github.com/gonghongchen/hc-site/logging"
	"github.com/gonghongchen/hc-site/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static version of the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		lastMod, _ := cmd.Flags().GetString("lastmod")
		if lastMod == "" {
			lastMod = time.Now().Format("2006-01-02")
		}

		site, err := loadSite()
		if err != nil {
			return err
		}
		return buildSite(site, opts, lastMod, logging.WithComponent("build"))
	},
}

func buildSite(site config.SiteConfig, opts config.Options, lastMod string, logger zerolog.Logger) error {
	logger.Info().Str("src_dir", opts.SrcDir).Str("out_dir", opts.OutDir).Msg("building static site")

	if err := config.Lint(site); err != nil {
		return err
	}
	for _, broken := range content.CheckLinks(site, opts.SrcDir) {
		logger.Warn().Str("link", broken.Page.Link).Msg("no document for link, page skipped")
	}

	preview := handlers.NewPreview(site, opts, logger)
	router, err := preview.Router()
	if err != nil {
		return errors.Wrap(err, "setting up router")
	}

	if err := os.MkdirAll(opts.OutDir, os.ModePerm); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	// Files under <srcDir>/public are published at the site root.
	publicDir := filepath.Join(opts.SrcDir, "public")
	if _, err := os.Stat(publicDir); err == nil {
		if err := copyDir(publicDir, opts.OutDir, logger); err != nil {
			return errors.Wrap(err, "copying public files")
		}
	}

	server := httptest.NewServer(router)
	defer server.Close()

	generated := make([]string, 0, len(preview.Routes()))
	for _, route := range preview.Routes() {
		dest := filepath.Join(opts.OutDir, filepath.FromSlash(route), "index.html")
		err := generateStaticPage(server, route, http.StatusOK, dest)
		if err != nil {
			logger.Error().Err(err).Str("route", route).Msg("generating page")
			continue
		}
		logger.Debug().Str("file", dest).Msg("generated")
		generated = append(generated, route)
	}

	err = generateStaticPage(server, "/404.html", http.StatusNotFound, filepath.Join(opts.OutDir, "404.html"))
	if err != nil {
		return errors.Wrap(err, "generating 404 page")
	}

	err = utils.GenerateSitemap(filepath.Join(opts.OutDir, "sitemap.xml"), opts.Origin, generated, lastMod)
	if err != nil {
		return errors.Wrap(err, "generating sitemap")
	}

	module, err := javascript.RenderModule(site, false)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(opts.OutDir, "config.mjs"), module); err != nil {
		return err
	}

	logger.Info().Int("pages", len(generated)).Str("out_dir", opts.OutDir).Msg("static site generated")
	return nil
}

func generateStaticPage(server *httptest.Server, route string, wantStatus int, dest string) error {
	resp, err := http.Get(server.URL + (&url.URL{Path: route}).EscapedPath())
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return errors.Errorf("GET %s: status %d", route, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	return writeFile(dest, body)
}

func copyDir(src, dst string, logger zerolog.Logger) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		input, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		logger.Debug().Str("file", rel).Msg("copying")
		return writeFile(filepath.Join(dst, rel), input)
	})
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().String("lastmod", "", "sitemap lastmod date (default today)")
}
