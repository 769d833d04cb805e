package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/engine/emitter"
)

func TestSelectTargets(t *testing.T) {
	wc := domain.WebComponentTarget{Dir: "/out"}
	www := domain.BuildTarget{Type: domain.KindWWW, BuildDir: "/www/build", Namespace: "app"}
	dist := domain.BuildTarget{Type: domain.KindDist, BuildDir: "/dist", Namespace: "app"}
	docs := domain.AuxTarget{Type: domain.KindDocs, Dir: "/docs"}
	targets := []domain.OutputTarget{docs, www, wc, dist}

	tests := []struct {
		name          string
		moduleCount   int
		selfContained []domain.WebComponentTarget
		bundled       []domain.BuildTarget
	}{
		{
			name:          "small app receives both strategies",
			moduleCount:   3,
			selfContained: []domain.WebComponentTarget{wc},
			bundled:       []domain.BuildTarget{www, dist},
		},
		{
			name:          "one below the threshold is still small",
			moduleCount:   domain.MinForLazyLoad - 1,
			selfContained: []domain.WebComponentTarget{wc},
			bundled:       []domain.BuildTarget{www, dist},
		},
		{
			name:          "threshold switches builds to lazy loading",
			moduleCount:   domain.MinForLazyLoad,
			selfContained: []domain.WebComponentTarget{wc},
		},
		{
			name:          "zero modules",
			moduleCount:   0,
			selfContained: []domain.WebComponentTarget{wc},
			bundled:       []domain.BuildTarget{www, dist},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := emitter.SelectTargets(targets, tt.moduleCount)
			assert.Equal(t, tt.selfContained, plan.SelfContained)
			assert.Equal(t, tt.bundled, plan.Bundled)
			assert.False(t, plan.Empty())
		})
	}
}

func TestSelectTargets_Empty(t *testing.T) {
	assert.True(t, emitter.SelectTargets(nil, 1).Empty())

	aux := []domain.OutputTarget{
		domain.AuxTarget{Type: domain.KindDocs, Dir: "/docs"},
		domain.AuxTarget{Type: domain.KindStats, Dir: "/stats"},
	}
	assert.True(t, emitter.SelectTargets(aux, 1).Empty())

	large := []domain.OutputTarget{
		domain.BuildTarget{Type: domain.KindWWW, BuildDir: "/www", Namespace: "app"},
	}
	assert.True(t, emitter.SelectTargets(large, 10).Empty())
}
