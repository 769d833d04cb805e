// Package styles substitutes component style placeholders in generated bundles.
package styles

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
)

var _ ports.StyleSubstituter = (*Substituter)(nil)

// Substituter replaces each component's style placeholder with its style text for a mode,
// encoded as a JavaScript string literal.
type Substituter struct{}

// NewSubstituter creates a new Substituter.
func NewSubstituter() *Substituter {
	return &Substituter{}
}

// Replace substitutes the placeholders of modules in text. A module without a style for mode
// gets its default-mode style, or an empty string when it has none.
func (s *Substituter) Replace(modules []*domain.Module, mode, text string) string {
	if len(modules) == 0 {
		return text
	}

	pairs := make([]string, 0, 2*len(modules))
	for _, m := range modules {
		style, _ := m.StyleFor(mode)
		pairs = append(pairs, domain.StylePlaceholder(m.TagName), quote(style))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// quote encodes text as a JSON string, which is also a valid JavaScript string literal.
func quote(text string) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(text)
	return strings.TrimSuffix(b.String(), "\n")
}
