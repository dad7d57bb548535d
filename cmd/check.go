package cmd

import (
	"github.com/gonghongchen/hc-site/config"
	"github.com/gonghongchen/hc-site/content"
	"github.com/gonghongchen/hc-site/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the site configuration and check every link has a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.WithComponent("check")

		site, err := loadSite()
		if err != nil {
			return err
		}

		problems := 0
		if err := config.Lint(site); err != nil {
			lintErr, ok := err.(*config.LintError)
			if !ok {
				return err
			}
			for _, issue := range lintErr.Issues {
				logger.Error().Str("path", issue.Path).Msg(issue.Message)
			}
			problems += len(lintErr.Issues)
		}

		for _, broken := range content.CheckLinks(site, opts.SrcDir) {
			logger.Error().Err(broken.Err).Str("link", broken.Page.Link).Str("text", broken.Page.Text).Msg("broken link")
			problems++
		}

		if problems > 0 {
			return errors.Errorf("check found %d problem(s)", problems)
		}

		logger.Info().Int("pages", len(site.Pages())).Msg("site configuration ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
