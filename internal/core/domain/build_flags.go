package domain

// BuildFlags is the set of feature switches that control which optional runtime behaviours
// a generated bundle includes.
type BuildFlags struct {
	// Packaging and delivery.
	LazyLoad            bool
	ES5                 bool
	SlotPolyfill        bool
	Polyfills           bool
	PrerenderClientSide bool
	PrerenderServerSide bool

	// Component features.
	Styles    bool
	Modes     bool
	ShadowDOM bool
	ScopedCSS bool
	Slot      bool
	Events    bool
	Methods   bool
	Props     bool
	State     bool
	Watch     bool
	Listeners bool
	HostData  bool
	Element   bool

	// Derived by normalization.
	Member    bool
	Lifecycle bool
	Hydrated  bool
}

// Enabled returns the names of the switched-on flags in declaration order.
func (f BuildFlags) Enabled() []string {
	all := []struct {
		name string
		on   bool
	}{
		{"lazyLoad", f.LazyLoad},
		{"es5", f.ES5},
		{"slotPolyfill", f.SlotPolyfill},
		{"polyfills", f.Polyfills},
		{"prerenderClientSide", f.PrerenderClientSide},
		{"prerenderServerSide", f.PrerenderServerSide},
		{"styles", f.Styles},
		{"modes", f.Modes},
		{"shadowDom", f.ShadowDOM},
		{"scopedCss", f.ScopedCSS},
		{"slot", f.Slot},
		{"events", f.Events},
		{"methods", f.Methods},
		{"props", f.Props},
		{"state", f.State},
		{"watch", f.Watch},
		{"listeners", f.Listeners},
		{"hostData", f.HostData},
		{"element", f.Element},
		{"member", f.Member},
		{"lifecycle", f.Lifecycle},
		{"hydrated", f.Hydrated},
	}

	names := make([]string, 0, len(all))
	for _, flag := range all {
		if flag.on {
			names = append(names, flag.name)
		}
	}
	return names
}
