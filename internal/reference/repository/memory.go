package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
	branches map[string]model.Branch
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		products: make(map[string]model.Product),
		branches: make(map[string]model.Branch),
	}
}

func (r *MemoryRepository) PutProduct(p model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
}

func (r *MemoryRepository) PutBranch(b model.Branch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.branches[b.ID] = b
}

func (r *MemoryRepository) FindProduct(_ context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, apperr.NotFound("product", id)
	}
	return &p, nil
}

func (r *MemoryRepository) FindBranch(_ context.Context, id string) (*model.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.branches[id]
	if !ok {
		return nil, apperr.NotFound("branch", id)
	}
	return &b, nil
}
