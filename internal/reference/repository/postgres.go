package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindProduct(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT id, category_id, sku, name, is_active FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("product", id)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *PGRepository) FindBranch(ctx context.Context, id string) (*model.Branch, error) {
	var branch model.Branch
	query := `SELECT id, name, is_active FROM branches WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &branch, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("branch", id)
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}
	return &branch, nil
}
