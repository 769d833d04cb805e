package ports

import (
	"context"

	"go.trai.ch/pack/internal/core/domain"
)

// CodeGenerator turns an ordered set of modules and a flag configuration into bundle text.
//
//go:generate go run go.uber.org/mock/mockgen -source=codegen.go -destination=mocks/mock_codegen.go -package=mocks
type CodeGenerator interface {
	// Generate produces the bundle source for modules. Implementations may also mark
	// bc.Errors on internal failure; callers treat a set flag and a returned error alike.
	Generate(ctx context.Context, bc *domain.BuildContext, modules []*domain.Module, flags domain.BuildFlags) (string, error)
}
