package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Options controls where the toolchain reads content from and writes to.
type Options struct {
	Origin   string `mapstructure:"origin"`
	SrcDir   string `mapstructure:"srcDir"`
	OutDir   string `mapstructure:"outDir"`
	SiteFile string `mapstructure:"siteFile"`
	Port     string `mapstructure:"port"`
}

// LoadOptions reads options from file, or from ./hc.yaml when file is empty,
// then applies HC_* environment variables. Only an explicitly named file has
// to exist.
func LoadOptions(file string) (Options, bool, error) {
	v := viper.New()

	v.SetDefault("origin", "https://gonghongchen.github.io")
	v.SetDefault("srcDir", "docs")
	v.SetDefault("outDir", "public")
	v.SetDefault("siteFile", "site.yaml")
	v.SetDefault("port", "9010")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("hc")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("HC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	found := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return Options{}, false, errors.Wrap(err, "reading options")
		}
		found = false
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, false, errors.Wrap(err, "decoding options")
	}
	opts.Origin = strings.TrimSuffix(opts.Origin, "/")

	return opts, found, nil
}
