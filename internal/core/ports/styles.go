package ports

import "go.trai.ch/pack/internal/core/domain"

// StyleSubstituter produces a mode-specific bundle from generic bundle text.
//
//go:generate go run go.uber.org/mock/mockgen -source=styles.go -destination=mocks/mock_styles.go -package=mocks
type StyleSubstituter interface {
	// Replace substitutes the style placeholders of modules with their styles for mode.
	// Text outside recognised placeholder markers is returned unchanged.
	Replace(modules []*domain.Module, mode, text string) string
}
