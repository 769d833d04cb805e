package features_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pack/internal/adapters/features"
	"go.trai.ch/pack/internal/core/domain"
)

func TestDetector_Detect(t *testing.T) {
	button := &domain.Module{
		TagName:  "my-button",
		Features: []string{"props", "Events", "shadowDom", "unknown"},
		Styles:   []domain.Style{{ModeName: domain.DefaultStyleMode, Text: ":host{}"}},
	}
	card := &domain.Module{
		TagName:  "my-card",
		Features: []string{"state", "es5"},
		Styles:   []domain.Style{{ModeName: "ios", Text: ":host{}"}},
	}
	plain := &domain.Module{TagName: "my-plain"}
	all := []*domain.Module{button, card, plain}

	tests := []struct {
		name          string
		participating []*domain.Module
		want          []string
	}{
		{
			name:          "single module",
			participating: []*domain.Module{button},
			want:          []string{"styles", "modes", "shadowDom", "events", "props"},
		},
		{
			name:          "declared delivery flags are reported",
			participating: []*domain.Module{card},
			want:          []string{"es5", "styles", "modes", "state"},
		},
		{
			name:          "module without styles still sees app modes",
			participating: []*domain.Module{plain},
			want:          []string{"modes"},
		},
		{
			name:          "union",
			participating: all,
			want:          []string{"es5", "styles", "modes", "shadowDom", "events", "props", "state"},
		},
	}

	d := features.NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(all, tt.participating).Enabled())
		})
	}
}

func TestDetector_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		flags domain.BuildFlags
		want  []string
	}{
		{
			name:  "empty",
			flags: domain.BuildFlags{},
			want:  []string{},
		},
		{
			name:  "modes require styles",
			flags: domain.BuildFlags{Modes: true},
			want:  []string{},
		},
		{
			name:  "scoped css implies styles",
			flags: domain.BuildFlags{ScopedCSS: true, Modes: true},
			want:  []string{"styles", "modes", "scopedCss", "hydrated"},
		},
		{
			name:  "members imply lifecycle",
			flags: domain.BuildFlags{Props: true},
			want:  []string{"props", "member", "lifecycle"},
		},
		{
			name:  "events alone imply lifecycle",
			flags: domain.BuildFlags{Events: true},
			want:  []string{"events", "lifecycle"},
		},
		{
			name:  "slot implies hydrated",
			flags: domain.BuildFlags{Slot: true},
			want:  []string{"slot", "hydrated"},
		},
	}

	d := features.NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := tt.flags
			d.Normalize(&flags)
			assert.Equal(t, tt.want, flags.Enabled())
		})
	}
}
