package cmd

import (
	"os"
	"path/filepath"

	"github.com/gonghongchen/hc-site/config"
	"github.com/gonghongchen/hc-site/javascript"
	"github.com/gonghongchen/hc-site/logging"
	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site configuration for the site generator",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		minify, _ := cmd.Flags().GetBool("minify")

		site, err := loadSite()
		if err != nil {
			return err
		}

		data, err := encodeSite(site, format, minify)
		if err != nil {
			return err
		}

		if out == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return errors.WithStack(err)
		}

		if err := writeFile(out, data); err != nil {
			return err
		}
		logger := logging.WithComponent("export")
		logger.Info().Str("file", out).Str("format", format).Msg("configuration written")
		return nil
	},
}

func encodeSite(site config.SiteConfig, format string, minify bool) ([]byte, error) {
	switch format {
	case "js":
		return javascript.RenderModule(site, minify)
	case "json":
		data, err := config.EncodeJSON(site)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return config.EncodeYAML(site)
	default:
		return nil, errors.Errorf("unsupported format %q (want js, json or yaml)", format)
	}
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return errors.WithStack(err)
	}
	return errors.Wrapf(renameio.WriteFile(path, data, 0644), "writing %s", path)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", "js", "output format: js, json or yaml")
	exportCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	exportCmd.Flags().Bool("minify", false, "minify the js module")
}
