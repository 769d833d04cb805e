// Package features implements feature detection from the features components declare.
package features

import (
	"strings"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
)

var _ ports.FeatureDetector = (*Detector)(nil)

// setters maps a lowercased feature name to the flag it switches on.
var setters = map[string]func(*domain.BuildFlags){
	"lazyload":            func(f *domain.BuildFlags) { f.LazyLoad = true },
	"es5":                 func(f *domain.BuildFlags) { f.ES5 = true },
	"slotpolyfill":        func(f *domain.BuildFlags) { f.SlotPolyfill = true },
	"polyfills":           func(f *domain.BuildFlags) { f.Polyfills = true },
	"prerenderclientside": func(f *domain.BuildFlags) { f.PrerenderClientSide = true },
	"prerenderserverside": func(f *domain.BuildFlags) { f.PrerenderServerSide = true },
	"styles":              func(f *domain.BuildFlags) { f.Styles = true },
	"modes":               func(f *domain.BuildFlags) { f.Modes = true },
	"shadowdom":           func(f *domain.BuildFlags) { f.ShadowDOM = true },
	"scopedcss":           func(f *domain.BuildFlags) { f.ScopedCSS = true },
	"slot":                func(f *domain.BuildFlags) { f.Slot = true },
	"events":              func(f *domain.BuildFlags) { f.Events = true },
	"methods":             func(f *domain.BuildFlags) { f.Methods = true },
	"props":               func(f *domain.BuildFlags) { f.Props = true },
	"state":               func(f *domain.BuildFlags) { f.State = true },
	"watch":               func(f *domain.BuildFlags) { f.Watch = true },
	"listeners":           func(f *domain.BuildFlags) { f.Listeners = true },
	"hostdata":            func(f *domain.BuildFlags) { f.HostData = true },
	"element":             func(f *domain.BuildFlags) { f.Element = true },
}

// Detector derives build flags from the features each component declared upstream.
// It does not inspect component source.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect switches on every feature declared by a participating module. Styles follow the
// participating modules' stylesheets; Modes is app-wide since the active mode is global.
// Unknown feature names are ignored.
func (d *Detector) Detect(all, participating []*domain.Module) domain.BuildFlags {
	var flags domain.BuildFlags

	for _, m := range participating {
		for _, name := range m.Features {
			if set, ok := setters[strings.ToLower(name)]; ok {
				set(&flags)
			}
		}
		if len(m.Styles) > 0 {
			flags.Styles = true
		}
	}

	for _, m := range all {
		for _, s := range m.Styles {
			if s.ModeName != domain.DefaultStyleMode {
				flags.Modes = true
			}
		}
	}

	return flags
}

// Normalize derives the aggregate flags from the final combination.
func (d *Detector) Normalize(flags *domain.BuildFlags) {
	if flags.ScopedCSS {
		flags.Styles = true
	}
	if !flags.Styles {
		flags.Modes = false
	}

	flags.Member = flags.Props || flags.State || flags.Methods || flags.Element || flags.Watch
	flags.Lifecycle = flags.Member || flags.Events || flags.Listeners || flags.HostData
	flags.Hydrated = flags.Styles || flags.ShadowDOM || flags.Slot
}
