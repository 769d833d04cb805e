package codegen_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/adapters/codegen"
	"go.trai.ch/pack/internal/core/domain"
)

func TestGenerator_Generate(t *testing.T) {
	modules := []*domain.Module{
		{TagName: "a-item", Source: "customElements.define('a-item', A);"},
		{TagName: "b-item", Source: "customElements.define('b-item', B);"},
	}
	flags := domain.BuildFlags{Props: true, Member: true}

	text, err := codegen.NewGenerator().Generate(context.Background(), domain.NewBuildContext(modules), modules, flags)
	require.NoError(t, err)

	want := "/* pack bundle | props member */\n" +
		"\n" +
		"/* a-item */\n" +
		"(function (style) {\n" +
		"customElements.define('a-item', A);\n" +
		"})(/**:style:a-item:**/);\n" +
		"\n" +
		"/* b-item */\n" +
		"(function (style) {\n" +
		"customElements.define('b-item', B);\n" +
		"})(/**:style:b-item:**/);\n"
	assert.Equal(t, want, text)
}

func TestGenerator_PreservesOrder(t *testing.T) {
	modules := []*domain.Module{
		{TagName: "z-item", Source: "z"},
		{TagName: "a-item", Source: "a"},
	}

	text, err := codegen.NewGenerator().Generate(context.Background(), domain.NewBuildContext(modules), modules, domain.BuildFlags{})
	require.NoError(t, err)
	assert.Less(t, strings.Index(text, "z-item"), strings.Index(text, "a-item"))
}

func TestGenerator_MissingSource(t *testing.T) {
	modules := []*domain.Module{{TagName: "a-item", Source: "  "}}

	_, err := codegen.NewGenerator().Generate(context.Background(), domain.NewBuildContext(modules), modules, domain.BuildFlags{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMissingSource.Error())
}

func TestGenerator_NoModules(t *testing.T) {
	text, err := codegen.NewGenerator().Generate(context.Background(), domain.NewBuildContext(nil), nil, domain.BuildFlags{})
	require.NoError(t, err)
	assert.Empty(t, text)
}
