package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/batchtype"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/cache"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"go.uber.org/zap"
)

const snapshotKey = "inventory:batch_types:snapshot"

// SnapshotCache is the subset of cache.RedisClient the catalog needs.
type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CachedRepository serves the whole catalog from a cached snapshot and falls
// back to the underlying repository on a miss or a cache failure.
type CachedRepository struct {
	next   batchtype.Repository
	cache  SnapshotCache
	ttl    time.Duration
	logger logger.ZapLogger
}

func NewCachedRepository(next batchtype.Repository, c SnapshotCache, ttl time.Duration, log logger.ZapLogger) *CachedRepository {
	return &CachedRepository{next: next, cache: c, ttl: ttl, logger: log}
}

func (r *CachedRepository) FindAll(ctx context.Context) ([]model.BatchType, error) {
	var types []model.BatchType
	err := r.cache.GetJSON(ctx, snapshotKey, &types)
	if err == nil {
		return types, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn("batch type cache read failed", zap.Error(err))
	}

	types, err = r.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetJSON(ctx, snapshotKey, types, r.ttl); err != nil {
		r.logger.Warn("batch type cache write failed", zap.Error(err))
	}
	return types, nil
}

func (r *CachedRepository) FindByID(ctx context.Context, id string) (*model.BatchType, error) {
	types, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return batchtype.Find(types, id)
}
