package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

// MemoryRepository is a fixed catalog held in memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	types []model.BatchType
}

func NewMemoryRepository(types ...model.BatchType) *MemoryRepository {
	return &MemoryRepository{types: append([]model.BatchType(nil), types...)}
}

// Put adds or replaces a batch type.
func (r *MemoryRepository) Put(bt model.BatchType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.types {
		if r.types[i].ID == bt.ID {
			r.types[i] = bt
			return
		}
	}
	r.types = append(r.types, bt)
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]model.BatchType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.BatchType{}, r.types...), nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.BatchType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.types {
		if r.types[i].ID == id {
			bt := r.types[i]
			return &bt, nil
		}
	}
	return nil, apperr.NotFound("batch type", id)
}
