package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports/mocks"
	"go.trai.ch/pack/internal/engine/emitter"
	"go.uber.org/mock/gomock"
)

func TestBuildFlagsFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector := mocks.NewMockFeatureDetector(ctrl)

	all := []*domain.Module{{TagName: "a-item"}, {TagName: "b-item"}}
	participating := all[:1]

	detector.EXPECT().Detect(all, participating).Return(domain.BuildFlags{
		LazyLoad:            true,
		ES5:                 true,
		SlotPolyfill:        true,
		Polyfills:           true,
		PrerenderClientSide: true,
		PrerenderServerSide: true,
		Styles:              true,
		Slot:                true,
	})

	// Normalization must observe the forced values.
	detector.EXPECT().Normalize(gomock.Any()).Do(func(f *domain.BuildFlags) {
		f.Lifecycle = !f.LazyLoad && !f.ES5
	})

	flags := emitter.BuildFlagsFor(detector, all, participating)

	assert.False(t, flags.LazyLoad)
	assert.False(t, flags.ES5)
	assert.False(t, flags.SlotPolyfill)
	assert.False(t, flags.Polyfills)
	assert.False(t, flags.PrerenderClientSide)
	assert.False(t, flags.PrerenderServerSide)
	assert.True(t, flags.Styles)
	assert.True(t, flags.Slot)
	assert.True(t, flags.Lifecycle)
}
