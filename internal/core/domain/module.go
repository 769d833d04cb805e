package domain

import (
	"cmp"
	"slices"
)

// DefaultStyleMode is the mode applied when no style mode is selected at runtime.
// It is always part of the mode set of a bundled build.
const DefaultStyleMode = "$"

// Style is one compiled style definition attached to a component, tagged with its mode.
type Style struct {
	ModeName string
	Text     string
}

// Module is the compiled representation of one UI component.
// Modules are produced upstream and are read-only during emission.
type Module struct {
	// TagName is the custom element name. It is the sort key and the self-contained file stem.
	TagName string
	// Source is the compiled component code handed to the code generator.
	Source string
	// Features lists the runtime features the component declared upstream.
	Features []string
	// Styles lists the component's style definitions, one per mode.
	Styles []Style
}

// StyleFor returns the style text registered for mode, falling back to the default mode.
func (m *Module) StyleFor(mode string) (string, bool) {
	var fallback *Style
	for i := range m.Styles {
		s := &m.Styles[i]
		if s.ModeName == mode {
			return s.Text, true
		}
		if s.ModeName == DefaultStyleMode && fallback == nil {
			fallback = s
		}
	}
	if fallback != nil {
		return fallback.Text, true
	}
	return "", false
}

// SortByTagName returns a new slice holding modules ordered by tag name ascending.
// The comparison is case-sensitive and lexical; equal tag names keep their original order.
// The input slice is not modified.
func SortByTagName(modules []*Module) []*Module {
	sorted := slices.Clone(modules)
	slices.SortStableFunc(sorted, func(a, b *Module) int {
		return cmp.Compare(a.TagName, b.TagName)
	})
	return sorted
}

// StyleModes returns the distinct style modes used by modules.
// The default mode always comes first, followed by every other mode in the order it is
// first encountered (module order, then style order within a module).
func StyleModes(modules []*Module) []string {
	modes := []string{DefaultStyleMode}
	seen := map[string]struct{}{DefaultStyleMode: {}}

	for _, m := range modules {
		for _, s := range m.Styles {
			if _, ok := seen[s.ModeName]; ok {
				continue
			}
			seen[s.ModeName] = struct{}{}
			modes = append(modes, s.ModeName)
		}
	}
	return modes
}

// StylePlaceholder is the marker a generated bundle carries where the style text of the
// component tagName is substituted per mode.
func StylePlaceholder(tagName string) string {
	return "/**:style:" + tagName + ":**/"
}
