package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/instance"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordChange records one movement of the given type per committed change.
func recordChange(movementType model.MovementType) instance.Recorder {
	return func(before, after *model.Instance) []model.Movement {
		qtyBefore := decimal.Zero
		if before != nil {
			qtyBefore = before.RemainingQuantity
		}
		return []model.Movement{{
			ID:              uuid.NewString(),
			InstanceID:      after.ID,
			InstanceCode:    after.InstanceCode,
			ProductID:       after.ProductID,
			MovementType:    movementType,
			QuantityBefore:  qtyBefore,
			QuantityAfter:   after.RemainingQuantity,
			Reason:          string(movementType),
			InstanceVersion: after.Version,
			CreatedAt:       after.UpdatedAt,
		}}
	}
}

func recordSplit(before, source, produced *model.Instance) []model.Movement {
	out := recordChange(model.MovementConversionOut)(before, source)
	return append(out, recordChange(model.MovementConversionIn)(nil, produced)...)
}

// assertChain checks that every movement starts where the previous one ended.
func assertChain(t *testing.T, movements []model.Movement) {
	t.Helper()
	for n := 1; n < len(movements); n++ {
		prev, cur := movements[n-1], movements[n]
		assert.Equal(t, prev.InstanceVersion+1, cur.InstanceVersion, "gap after version %d", prev.InstanceVersion)
		assert.True(t, cur.QuantityBefore.Equal(prev.QuantityAfter),
			"version %d starts at %s, previous ended at %s", cur.InstanceVersion, cur.QuantityBefore, prev.QuantityAfter)
	}
}

func seed(t *testing.T, r *MemoryRepository, id, code, qty string) *model.Instance {
	t.Helper()
	inst := &model.Instance{
		BaseModel:         model.BaseModel{ID: id},
		ProductID:         "prod-1",
		BranchID:          "branch-1",
		BatchTypeID:       "loose",
		InstanceCode:      code,
		InitialQuantity:   decimal.RequireFromString(qty),
		RemainingQuantity: decimal.RequireFromString(qty),
	}
	inst.DeriveStatus()
	require.NoError(t, r.Create(context.Background(), inst, recordChange(model.MovementRegistration)))
	return inst
}

func TestCreate_SetsDefaults(t *testing.T) {
	r := NewMemoryRepository(0)
	inst := seed(t, r, "i-1", "A-LOOSE-001", "100")

	assert.Equal(t, int64(1), inst.Version)
	assert.False(t, inst.CreatedAt.IsZero())

	got, err := r.GetByCode(context.Background(), "A-LOOSE-001")
	require.NoError(t, err)
	assert.Equal(t, "i-1", got.ID)
}

func TestCreate_Error_DuplicateCode(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "100")

	dup := &model.Instance{
		BaseModel:         model.BaseModel{ID: "i-2"},
		InstanceCode:      "A-LOOSE-001",
		InitialQuantity:   decimal.NewFromInt(5),
		RemainingQuantity: decimal.NewFromInt(5),
		Status:            model.StatusInStock,
	}
	err := r.Create(context.Background(), dup, recordChange(model.MovementRegistration))

	assert.True(t, errors.Is(err, apperr.ErrDuplicateCode))
	_, err = r.Get(context.Background(), "i-2")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestCreate_Error_InvalidQuantity(t *testing.T) {
	r := NewMemoryRepository(0)
	inst := &model.Instance{
		BaseModel:         model.BaseModel{ID: "i-1"},
		InstanceCode:      "A-LOOSE-001",
		InitialQuantity:   decimal.NewFromInt(5),
		RemainingQuantity: decimal.NewFromInt(6),
		Status:            model.StatusInStock,
	}

	assert.True(t, errors.Is(r.Create(context.Background(), inst, recordChange(model.MovementRegistration)), apperr.ErrInvalidQuantity))
}

func TestGet_ReturnsCopy(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "100")

	got, err := r.Get(context.Background(), "i-1")
	require.NoError(t, err)
	got.RemainingQuantity = decimal.Zero

	again, err := r.Get(context.Background(), "i-1")
	require.NoError(t, err)
	assert.True(t, again.RemainingQuantity.Equal(decimal.NewFromInt(100)))
}

func TestUpdate_Success(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "100")

	got, err := r.Update(context.Background(), "i-1", func(i *model.Instance) error {
		i.RemainingQuantity = decimal.Zero
		i.DeriveStatus()
		return nil
	}, recordChange(model.MovementAdjustment))

	require.NoError(t, err)
	assert.Equal(t, model.StatusDepleted, got.Status)
	assert.Equal(t, int64(2), got.Version)
}

func TestUpdate_Error_InvariantLeavesStoreUntouched(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "100")

	_, err := r.Update(context.Background(), "i-1", func(i *model.Instance) error {
		i.RemainingQuantity = decimal.NewFromInt(101)
		return nil
	}, recordChange(model.MovementAdjustment))
	assert.True(t, errors.Is(err, apperr.ErrInvalidQuantity))

	got, err := r.Get(context.Background(), "i-1")
	require.NoError(t, err)
	assert.True(t, got.RemainingQuantity.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, int64(1), got.Version)
}

func TestUpdate_Error_ImmutableField(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "100")

	_, err := r.Update(context.Background(), "i-1", func(i *model.Instance) error {
		i.InstanceCode = "RENAMED"
		return nil
	}, recordChange(model.MovementAdjustment))

	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestUpdate_Error_ImmutableDescriptiveFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(i *model.Instance)
	}{
		{"grouped", func(i *model.Instance) { i.Grouped = !i.Grouped }},
		{"source instance", func(i *model.Instance) { src := "i-9"; i.SourceInstanceID = &src }},
		{"attributes", func(i *model.Instance) { i.Attributes = model.Attributes{"grade": "B"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewMemoryRepository(0)
			seed(t, r, "i-1", "A-LOOSE-001", "100")

			_, err := r.Update(context.Background(), "i-1", func(i *model.Instance) error {
				tt.mutate(i)
				return nil
			}, recordChange(model.MovementAdjustment))

			assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
			movements, err := r.ListMovements(context.Background(), "i-1")
			require.NoError(t, err)
			assert.Len(t, movements, 1)
		})
	}
}

func TestUpdate_Error_Unscrap(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "100")
	_, err := r.Update(context.Background(), "i-1", func(i *model.Instance) error {
		i.Status = model.StatusScrapped
		return nil
	}, recordChange(model.MovementAdjustment))
	require.NoError(t, err)

	_, err = r.Update(context.Background(), "i-1", func(i *model.Instance) error {
		i.Status = model.StatusInStock
		return nil
	}, recordChange(model.MovementAdjustment))

	assert.True(t, errors.Is(err, apperr.ErrInstanceScrapped))
}

func TestUpdate_RetriesOnVersionConflict(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "100")
	ctx := context.Background()

	calls := 0
	got, err := r.Update(ctx, "i-1", func(i *model.Instance) error {
		calls++
		if calls == 1 {
			// A competing writer commits between our read and our write.
			_, err := r.Update(ctx, "i-1", func(other *model.Instance) error {
				other.RemainingQuantity = decimal.NewFromInt(40)
				other.DeriveStatus()
				return nil
			}, recordChange(model.MovementAdjustment))
			require.NoError(t, err)
		}
		i.RemainingQuantity = i.RemainingQuantity.Sub(decimal.NewFromInt(10))
		i.DeriveStatus()
		return nil
	}, recordChange(model.MovementAdjustment))

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.True(t, got.RemainingQuantity.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, int64(3), got.Version)
}

func TestUpdate_Error_ConflictAfterMaxAttempts(t *testing.T) {
	r := NewMemoryRepository(2)
	seed(t, r, "i-1", "A-LOOSE-001", "100")
	ctx := context.Background()

	_, err := r.Update(ctx, "i-1", func(i *model.Instance) error {
		_, err := r.Update(ctx, "i-1", func(other *model.Instance) error { return nil }, nil)
		require.NoError(t, err)
		return nil
	}, recordChange(model.MovementAdjustment))

	assert.True(t, errors.Is(err, apperr.ErrConcurrencyConflict))
}

func TestUpdate_ConcurrentDecrementsLoseNothing(t *testing.T) {
	r := NewMemoryRepository(1000)
	seed(t, r, "i-1", "A-LOOSE-001", "100")
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	var successes int64
	errs := make(chan error, workers)

	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Update(ctx, "i-1", func(i *model.Instance) error {
				i.RemainingQuantity = i.RemainingQuantity.Sub(decimal.NewFromInt(1))
				i.DeriveStatus()
				return nil
			}, recordChange(model.MovementAdjustment))
			if err != nil {
				errs <- err
				return
			}
			atomic.AddInt64(&successes, 1)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.True(t, errors.Is(err, apperr.ErrConcurrencyConflict), "unexpected error: %v", err)
	}

	got, err := r.Get(ctx, "i-1")
	require.NoError(t, err)
	expected := decimal.NewFromInt(100 - atomic.LoadInt64(&successes))
	assert.True(t, got.RemainingQuantity.Equal(expected), "remaining %s, expected %s", got.RemainingQuantity, expected)
	assert.Equal(t, 1+atomic.LoadInt64(&successes), got.Version)
}

func TestUpdate_ConcurrentChangesRecordUnbrokenChain(t *testing.T) {
	r := NewMemoryRepository(1000)
	seed(t, r, "i-1", "A-LOOSE-001", "100")
	ctx := context.Background()

	var wg sync.WaitGroup
	for n := 0; n < 20; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := r.Update(ctx, "i-1", func(i *model.Instance) error {
				if n%2 == 0 {
					i.RemainingQuantity = i.RemainingQuantity.Sub(decimal.NewFromInt(3))
				} else {
					i.RemainingQuantity = decimal.NewFromInt(int64(50 + n))
				}
				i.DeriveStatus()
				return nil
			}, recordChange(model.MovementAdjustment))
			assert.NoError(t, err)
		}(n)
	}
	wg.Wait()

	got, err := r.Get(ctx, "i-1")
	require.NoError(t, err)
	movements, err := r.ListMovements(ctx, "i-1")
	require.NoError(t, err)

	require.Len(t, movements, 21)
	assert.Equal(t, model.MovementRegistration, movements[0].MovementType)
	assert.Equal(t, int64(1), movements[0].InstanceVersion)
	assertChain(t, movements)
	assert.Equal(t, got.Version, movements[20].InstanceVersion)
	assert.True(t, movements[20].QuantityAfter.Equal(got.RemainingQuantity))
}

func TestUpdate_CancelledContextStopsRetrying(t *testing.T) {
	r := NewMemoryRepository(1000)
	seed(t, r, "i-1", "A-LOOSE-001", "100")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	start := time.Now()
	_, err := r.Update(ctx, "i-1", func(i *model.Instance) error {
		calls++
		_, err := r.Update(context.Background(), "i-1", func(other *model.Instance) error { return nil }, nil)
		require.NoError(t, err)
		cancel()
		return nil
	}, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), time.Second)
}

func TestUpdate_Error_RejectedChangeRecordsNothing(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "100")

	_, err := r.Update(context.Background(), "i-1", func(i *model.Instance) error {
		return apperr.InstanceScrapped(i.ID)
	}, recordChange(model.MovementAdjustment))
	require.Error(t, err)

	movements, err := r.ListMovements(context.Background(), "i-1")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, model.MovementRegistration, movements[0].MovementType)
}

func TestUpdate_ConcurrentSetsOneWinner(t *testing.T) {
	r := NewMemoryRepository(1000)
	seed(t, r, "i-1", "A-LOOSE-001", "100")
	ctx := context.Background()

	targets := []int64{10, 70}
	var wg sync.WaitGroup
	for _, target := range targets {
		wg.Add(1)
		go func(q int64) {
			defer wg.Done()
			_, err := r.Update(ctx, "i-1", func(i *model.Instance) error {
				i.RemainingQuantity = decimal.NewFromInt(q)
				i.DeriveStatus()
				return nil
			}, recordChange(model.MovementAdjustment))
			assert.NoError(t, err)
		}(target)
	}
	wg.Wait()

	got, err := r.Get(ctx, "i-1")
	require.NoError(t, err)
	assert.Contains(t, []string{"10", "70"}, got.RemainingQuantity.String())
	assert.Equal(t, int64(3), got.Version)

	// The stored value is the one written by the last committed change.
	movements, err := r.ListMovements(ctx, "i-1")
	require.NoError(t, err)
	require.Len(t, movements, 3)
	assertChain(t, movements)
	assert.True(t, movements[2].QuantityAfter.Equal(got.RemainingQuantity))
}

func splitOff(weight string, code string) func(*model.Instance) (*model.Instance, error) {
	return func(source *model.Instance) (*model.Instance, error) {
		w := decimal.RequireFromString(weight)
		source.RemainingQuantity = source.RemainingQuantity.Sub(w)
		source.DeriveStatus()
		return &model.Instance{
			BaseModel:         model.BaseModel{ID: "produced-" + code},
			ProductID:         source.ProductID,
			BranchID:          source.BranchID,
			BatchTypeID:       "coil",
			InstanceCode:      code,
			InitialQuantity:   w,
			RemainingQuantity: w,
			Status:            model.StatusInStock,
			Grouped:           true,
			SourceInstanceID:  &source.ID,
		}, nil
	}
}

func TestSplit_ConservesQuantity(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "50")

	source, produced, err := r.Split(context.Background(), "i-1", splitOff("30", "A-COIL-001"), recordSplit)

	require.NoError(t, err)
	assert.True(t, source.RemainingQuantity.Equal(decimal.NewFromInt(20)))
	assert.True(t, produced.RemainingQuantity.Equal(decimal.NewFromInt(30)))
	assert.True(t, source.RemainingQuantity.Add(produced.RemainingQuantity).Equal(decimal.NewFromInt(50)))
	assert.Equal(t, int64(1), produced.Version)

	stored, err := r.GetByCode(context.Background(), "A-COIL-001")
	require.NoError(t, err)
	assert.Equal(t, "i-1", *stored.SourceInstanceID)

	out, err := r.ListMovements(context.Background(), "i-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assertChain(t, out)
	assert.Equal(t, model.MovementConversionOut, out[1].MovementType)

	in, err := r.ListMovements(context.Background(), produced.ID)
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, model.MovementConversionIn, in[0].MovementType)
	assert.True(t, in[0].QuantityAfter.Equal(decimal.NewFromInt(30)))
}

func TestSplit_Error_DuplicateCodeLeavesSourceUntouched(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "50")
	seed(t, r, "i-2", "A-COIL-001", "5")

	_, _, err := r.Split(context.Background(), "i-1", splitOff("30", "A-COIL-001"), recordSplit)
	assert.True(t, errors.Is(err, apperr.ErrDuplicateCode))

	source, err := r.Get(context.Background(), "i-1")
	require.NoError(t, err)
	assert.True(t, source.RemainingQuantity.Equal(decimal.NewFromInt(50)))
}

func TestSplit_Error_Overdraw(t *testing.T) {
	r := NewMemoryRepository(0)
	seed(t, r, "i-1", "A-LOOSE-001", "20")

	_, _, err := r.Split(context.Background(), "i-1", splitOff("25", "A-COIL-001"), recordSplit)

	assert.True(t, errors.Is(err, apperr.ErrInvalidQuantity))
	exists, err := r.CodeExists(context.Background(), "A-COIL-001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListCodes_FiltersAndSorts(t *testing.T) {
	r := NewMemoryRepository(0)
	for i := 3; i >= 1; i-- {
		seed(t, r, fmt.Sprintf("i-%d", i), fmt.Sprintf("A-LOOSE-%03d", i), "1")
	}
	other := &model.Instance{
		BaseModel:         model.BaseModel{ID: "x"},
		ProductID:         "prod-1",
		BranchID:          "branch-2",
		BatchTypeID:       "loose",
		InstanceCode:      "A-LOOSE-009",
		InitialQuantity:   decimal.NewFromInt(1),
		RemainingQuantity: decimal.NewFromInt(1),
		Status:            model.StatusInStock,
	}
	require.NoError(t, r.Create(context.Background(), other, recordChange(model.MovementRegistration)))

	codes, err := r.ListCodes(context.Background(), "prod-1", "branch-1", "loose")

	require.NoError(t, err)
	assert.Equal(t, []string{"A-LOOSE-001", "A-LOOSE-002", "A-LOOSE-003"}, codes)
}
