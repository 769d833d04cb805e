package emitter

import (
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
)

// BuildFlagsFor computes the flag configuration for a bundle of participating modules.
//
// Detected flags are taken as-is except for the loader and legacy-browser switches, which
// eagerly loaded bundles never use. Normalization runs after those are forced off so derived
// flags reflect the final combination.
func BuildFlagsFor(detector ports.FeatureDetector, all, participating []*domain.Module) domain.BuildFlags {
	flags := detector.Detect(all, participating)

	flags.LazyLoad = false
	flags.ES5 = false
	flags.SlotPolyfill = false
	flags.Polyfills = false
	flags.PrerenderClientSide = false
	flags.PrerenderServerSide = false

	detector.Normalize(&flags)
	return flags
}
