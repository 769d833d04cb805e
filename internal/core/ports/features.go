// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/pack/internal/core/domain"

// FeatureDetector infers build flags from module metadata and normalizes flag combinations.
//
//go:generate go run go.uber.org/mock/mockgen -source=features.go -destination=mocks/mock_features.go -package=mocks
type FeatureDetector interface {
	// Detect infers the feature flags needed by participating, in the context of all modules
	// of the build.
	Detect(all, participating []*domain.Module) domain.BuildFlags

	// Normalize applies the build-conditional pass, setting derived flags from the final
	// combination in place.
	Normalize(flags *domain.BuildFlags)
}
