package ports

// Hasher defines the interface for computing content digests.
//
//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashText returns the hex digest of text.
	HashText(text string) string
	// ComputeFileHash returns the hex digest of the file content at path.
	ComputeFileHash(path string) (string, error)
}
