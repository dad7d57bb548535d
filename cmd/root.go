package cmd

import (
	"fmt"
	"os"

	"github.com/gonghongchen/hc-site/config"
	"github.com/gonghongchen/hc-site/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	pretty   bool
	opts     config.Options
)

var rootCmd = &cobra.Command{
	Use:           "hc",
	Short:         "H&C - site configuration and preview tool",
	Long:          `hc holds the configuration of the H&C blog, checks it against the markdown documents, exports it for the site generator and previews or builds the site.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Configure(logging.Config{Level: logLevel, Pretty: pretty})
		logger := logging.WithComponent("config")

		var found bool
		var err error
		opts, found, err = config.LoadOptions(cfgFile)
		if err != nil {
			return err
		}
		if !found {
			logger.Debug().Msg("no hc.yaml found, using defaults and HC_* environment")
		}
		logger.Debug().
			Str("src_dir", opts.SrcDir).
			Str("out_dir", opts.OutDir).
			Str("site_file", opts.SiteFile).
			Msg("options loaded")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "options file (default is ./hc.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default info, or $LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "human readable log output")
}

func loadSite() (config.SiteConfig, error) {
	return config.Load(opts.SiteFile)
}
