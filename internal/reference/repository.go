package reference

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

// Repository reads the product and branch registries. The ledger never writes them.
type Repository interface {
	FindProduct(ctx context.Context, id string) (*model.Product, error)
	FindBranch(ctx context.Context, id string) (*model.Branch, error)
}
