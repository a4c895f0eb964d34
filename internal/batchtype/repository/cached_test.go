package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/cache"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache struct {
	data   map[string][]byte
	gets   int
	broken bool
}

func (c *mapCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	c.gets++
	if c.broken {
		return errors.New("connection refused")
	}
	raw, ok := c.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if c.broken {
		return errors.New("connection refused")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

type countingRepo struct {
	*MemoryRepository
	calls int
}

func (r *countingRepo) FindAll(ctx context.Context) ([]model.BatchType, error) {
	r.calls++
	return r.MemoryRepository.FindAll(ctx)
}

func catalog() *countingRepo {
	coil := "coil"
	return &countingRepo{MemoryRepository: NewMemoryRepository(
		model.BatchType{BaseModel: model.BaseModel{ID: "loose"}, Name: "Loose", IsActive: true, IsConvertible: true, ConvertsToID: &coil},
		model.BatchType{BaseModel: model.BaseModel{ID: "coil"}, Name: "Coil", IsActive: true},
	)}
}

func TestCachedRepository_ServesSnapshotAfterFirstLoad(t *testing.T) {
	next := catalog()
	c := &mapCache{data: map[string][]byte{}}
	r := NewCachedRepository(next, c, time.Minute, logger.NewNop())

	first, err := r.FindAll(context.Background())
	require.NoError(t, err)
	bt, err := r.FindByID(context.Background(), "loose")
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Equal(t, "coil", *bt.ConvertsToID)
	assert.Equal(t, 1, next.calls)
}

func TestCachedRepository_FallsBackWhenCacheDown(t *testing.T) {
	next := catalog()
	r := NewCachedRepository(next, &mapCache{data: map[string][]byte{}, broken: true}, time.Minute, logger.NewNop())

	types, err := r.FindAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, types, 2)
}

func TestCachedRepository_FindByID_NotFound(t *testing.T) {
	r := NewCachedRepository(catalog(), &mapCache{data: map[string][]byte{}}, time.Minute, logger.NewNop())

	_, err := r.FindByID(context.Background(), "missing")

	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
