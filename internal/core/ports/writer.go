package ports

import "context"

// FileWriter is the write sink for emitted bundles.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type FileWriter interface {
	// WriteFile writes text to path, creating parent directories as needed. root is the
	// project root the output belongs to.
	WriteFile(ctx context.Context, root, path, text string) error
}
