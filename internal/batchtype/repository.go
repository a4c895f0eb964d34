package batchtype

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

// Repository is the read-only Batch-Type Catalog.
type Repository interface {
	FindAll(ctx context.Context) ([]model.BatchType, error)
	FindByID(ctx context.Context, id string) (*model.BatchType, error)
}
