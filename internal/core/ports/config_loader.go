package ports

import "go.trai.ch/pack/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the build configuration together
	// with the compiled component modules it lists.
	Load(path string) (*domain.Config, []*domain.Module, error)
}
