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

const batchTypeColumns = `id, name, category_id, is_active, is_default, is_convertible,
        converts_to_id, sort_order, created_at, updated_at`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.BatchType, error) {
	types := []model.BatchType{}
	query := `SELECT ` + batchTypeColumns + ` FROM batch_types ORDER BY sort_order ASC, name ASC`
	if err := r.DB.SelectContext(ctx, &types, query); err != nil {
		return nil, fmt.Errorf("failed to list batch types: %w", err)
	}
	return types, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.BatchType, error) {
	var bt model.BatchType
	query := `SELECT ` + batchTypeColumns + ` FROM batch_types WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &bt, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("batch type", id)
		}
		return nil, fmt.Errorf("failed to get batch type: %w", err)
	}
	return &bt, nil
}
