// Package codegen assembles script bundles from pre-compiled component sources.
package codegen

import (
	"context"
	"strings"
	"text/template"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CodeGenerator = (*Generator)(nil)

const bundleTemplate = `/* pack bundle | {{ join .Flags " " }} */
{{- range .Components }}

/* {{ .TagName }} */
(function (style) {
{{ .Source }}
})({{ placeholder .TagName }});
{{- end }}
`

var tmpl = template.Must(template.New("bundle").Funcs(template.FuncMap{
	"join":        strings.Join,
	"placeholder": domain.StylePlaceholder,
}).Parse(bundleTemplate))

type bundleData struct {
	Flags      []string
	Components []*domain.Module
}

// Generator produces a bundle by concatenating component sources behind a header listing
// the enabled build flags. Each component is wrapped so its style placeholder can be
// substituted per mode.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders modules in the given order.
func (g *Generator) Generate(
	_ context.Context,
	_ *domain.BuildContext,
	modules []*domain.Module,
	flags domain.BuildFlags,
) (string, error) {
	if len(modules) == 0 {
		return "", nil
	}

	for _, m := range modules {
		if strings.TrimSpace(m.Source) == "" {
			return "", zerr.With(domain.ErrMissingSource, "tag", m.TagName)
		}
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, bundleData{Flags: flags.Enabled(), Components: modules}); err != nil {
		return "", zerr.Wrap(err, "failed to render bundle")
	}
	return b.String(), nil
}
