package javascript

import (
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/gonghongchen/hc-site/config"
	"github.com/pkg/errors"
)

const moduleTemplate = `import { defineConfig } from 'vitepress'

export default defineConfig(%s)
`

// RenderModule emits the site configuration as an ES module the generator
// can import. The source is passed through esbuild so that only
// syntactically valid JavaScript is returned.
func RenderModule(site config.SiteConfig, minify bool) ([]byte, error) {
	body, err := config.EncodeJSON(site)
	if err != nil {
		return nil, err
	}
	return transform(fmt.Sprintf(moduleTemplate, body), minify)
}

func transform(source string, minify bool) ([]byte, error) {
	result := api.Transform(source, api.TransformOptions{
		Loader:            api.LoaderJS,
		Format:            api.FormatESModule,
		Charset:           api.CharsetUTF8,
		MinifyWhitespace:  minify,
		MinifySyntax:      minify,
		MinifyIdentifiers: minify,
		Target:            api.ES2020,
	})

	if len(result.Errors) > 0 {
		msg := result.Errors[0]
		if msg.Location != nil {
			return nil, errors.Errorf("esbuild: %s (line %d)", msg.Text, msg.Location.Line)
		}
		return nil, errors.Errorf("esbuild: %s", msg.Text)
	}

	return result.Code, nil
}
