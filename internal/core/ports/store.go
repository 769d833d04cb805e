package ports

import "go.trai.ch/pack/internal/core/domain"

// OutputStore records the files written by the emission stage. Records are kept per project
// root, under domain.ManifestPath(root).
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type OutputStore interface {
	// Get retrieves the record for an output path.
	// Returns nil, nil if not found.
	Get(root, path string) (*domain.OutputRecord, error)
	// Put stores the record.
	Put(root string, record domain.OutputRecord) error
	// All returns every record, ordered by path.
	All(root string) ([]domain.OutputRecord, error)
	// Clear removes every record.
	Clear(root string) error
}
