package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/instance"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

// MemoryRepository keeps instances and their movements in process memory.
// Reads hand out clones and writes commit with a version check, so it
// behaves like the Postgres repository under concurrent callers.
type MemoryRepository struct {
	mu          sync.RWMutex
	byID        map[string]*model.Instance
	byCode      map[string]string
	movements   map[string][]model.Movement
	maxAttempts int
	now         func() time.Time
}

func NewMemoryRepository(maxAttempts int) *MemoryRepository {
	if maxAttempts <= 0 {
		maxAttempts = instance.DefaultMaxAttempts
	}
	return &MemoryRepository{
		byID:        make(map[string]*model.Instance),
		byCode:      make(map[string]string),
		movements:   make(map[string][]model.Movement),
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, inst *model.Instance, record instance.Recorder) error {
	if err := inst.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkInsertLocked(inst); err != nil {
		return err
	}
	r.insertLocked(inst)
	if record != nil {
		r.recordLocked(record(nil, inst))
	}
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*model.Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.byID[id]
	if !ok {
		return nil, apperr.NotFound("instance", id)
	}
	return inst.Clone(), nil
}

func (r *MemoryRepository) GetByCode(ctx context.Context, code string) (*model.Instance, error) {
	r.mu.RLock()
	id, ok := r.byCode[code]
	r.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound("instance", code)
	}
	return r.Get(ctx, id)
}

func (r *MemoryRepository) Update(ctx context.Context, id string, mutate instance.Mutator, record instance.Recorder) (*model.Instance, error) {
	b := instance.NewRetryBackOff()
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := instance.WaitRetry(ctx, b); err != nil {
				return nil, err
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		before, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		after := before.Clone()
		if err := mutate(after); err != nil {
			return nil, err
		}
		if err := r.prepareUpdate(before, after); err != nil {
			return nil, err
		}
		var movements []model.Movement
		if record != nil {
			movements = record(before, after)
		}

		r.mu.Lock()
		if r.byID[id].Version != before.Version {
			r.mu.Unlock()
			continue
		}
		r.byID[id] = after.Clone()
		r.recordLocked(movements)
		r.mu.Unlock()
		return after, nil
	}
	return nil, apperr.ConcurrencyConflict(id, r.maxAttempts)
}

func (r *MemoryRepository) Split(ctx context.Context, sourceID string, split instance.SplitFunc, record instance.SplitRecorder) (*model.Instance, *model.Instance, error) {
	b := instance.NewRetryBackOff()
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := instance.WaitRetry(ctx, b); err != nil {
				return nil, nil, err
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		before, err := r.Get(ctx, sourceID)
		if err != nil {
			return nil, nil, err
		}
		source := before.Clone()
		produced, err := split(source)
		if err != nil {
			return nil, nil, err
		}
		if err := r.prepareUpdate(before, source); err != nil {
			return nil, nil, err
		}
		if err := produced.Validate(); err != nil {
			return nil, nil, err
		}

		r.mu.Lock()
		if r.byID[sourceID].Version != before.Version {
			r.mu.Unlock()
			continue
		}
		if err := r.checkInsertLocked(produced); err != nil {
			r.mu.Unlock()
			return nil, nil, err
		}
		r.byID[sourceID] = source.Clone()
		r.insertLocked(produced)
		if record != nil {
			r.recordLocked(record(before, source, produced))
		}
		r.mu.Unlock()
		return source, produced.Clone(), nil
	}
	return nil, nil, apperr.ConcurrencyConflict(sourceID, r.maxAttempts)
}

func (r *MemoryRepository) ListMovements(_ context.Context, instanceID string) ([]model.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Movement{}, r.movements[instanceID]...), nil
}

func (r *MemoryRepository) ListCodes(_ context.Context, productID, branchID, batchTypeID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := []string{}
	for _, inst := range r.byID {
		if inst.ProductID == productID && inst.BranchID == branchID && inst.BatchTypeID == batchTypeID {
			codes = append(codes, inst.InstanceCode)
		}
	}
	sort.Strings(codes)
	return codes, nil
}

func (r *MemoryRepository) CodeExists(_ context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byCode[code]
	return ok, nil
}

func (r *MemoryRepository) prepareUpdate(before, after *model.Instance) error {
	if err := instance.CheckImmutable(before, after); err != nil {
		return err
	}
	after.UpdatedAt = r.now()
	after.Version = before.Version + 1
	return after.Validate()
}

func (r *MemoryRepository) checkInsertLocked(inst *model.Instance) error {
	if _, ok := r.byCode[inst.InstanceCode]; ok {
		return apperr.DuplicateCode(inst.InstanceCode)
	}
	if _, ok := r.byID[inst.ID]; ok {
		return apperr.New(apperr.KindInternal, "instance id already exists", inst.ID)
	}
	return nil
}

// insertLocked fills creation defaults on inst and stores a copy of it.
func (r *MemoryRepository) insertLocked(inst *model.Instance) {
	now := r.now()
	if inst.CreatedAt.IsZero() {
		inst.CreatedAt = now
	}
	if inst.UpdatedAt.IsZero() {
		inst.UpdatedAt = inst.CreatedAt
	}
	if inst.Version == 0 {
		inst.Version = 1
	}
	r.byID[inst.ID] = inst.Clone()
	r.byCode[inst.InstanceCode] = inst.ID
}

// recordLocked appends movements to their instance chains. Commits are
// serialized by the lock, so each chain stays in InstanceVersion order.
func (r *MemoryRepository) recordLocked(movements []model.Movement) {
	for _, m := range movements {
		r.movements[m.InstanceID] = append(r.movements[m.InstanceID], m)
	}
}
