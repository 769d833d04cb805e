package styles_test

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/adapters/codegen"
	"go.trai.ch/pack/internal/adapters/styles"
	"go.trai.ch/pack/internal/core/domain"
)

func TestSubstituter_BundleVariants(t *testing.T) {
	modules := []*domain.Module{
		{
			TagName: "a-item",
			Source:  "customElements.define('a-item', A);",
			Styles: []domain.Style{
				{ModeName: domain.DefaultStyleMode, Text: ":host{display:block}"},
				{ModeName: "ios", Text: ":host{content:'<b>'}"},
			},
		},
		{TagName: "b-item", Source: "customElements.define('b-item', B);"},
	}

	text, err := codegen.NewGenerator().Generate(context.Background(), domain.NewBuildContext(modules), modules,
		domain.BuildFlags{Styles: true, Modes: true})
	require.NoError(t, err)

	tests := []struct {
		mode       string
		goldenName string
	}{
		{mode: domain.DefaultStyleMode, goldenName: "bundle_default"},
		{mode: "ios", goldenName: "bundle_ios"},
		{mode: "md", goldenName: "bundle_default"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(styles.NewSubstituter().Replace(modules, tt.mode, text)))
		})
	}
}
