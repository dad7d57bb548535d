package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Load reads a YAML site file and applies it on top of Site(). Keys present
// in the file replace the built-in value; lists are replaced as a whole.
// Unknown keys are an error. A missing file yields Site() unchanged.
func Load(path string) (SiteConfig, error) {
	site := Site()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return site, nil
	}
	if err != nil {
		return SiteConfig{}, errors.Wrapf(err, "reading site file %s", path)
	}

	err = yaml.UnmarshalStrict(data, &site)
	if err != nil {
		return SiteConfig{}, errors.Wrapf(err, "parsing site file %s", path)
	}

	return site, nil
}

// EncodeYAML renders the configuration in the format Load accepts.
func EncodeYAML(site SiteConfig) ([]byte, error) {
	out, err := yaml.Marshal(site)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}
