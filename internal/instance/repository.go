package instance

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

// DefaultMaxAttempts bounds the optimistic read-modify-write retry of Update and Split.
const DefaultMaxAttempts = 5

// Mutator changes a private snapshot of an instance. Returning an error
// aborts the update without writing anything. A mutator may run more than
// once when a concurrent writer wins the race, so it must not have side effects.
type Mutator func(inst *model.Instance) error

// SplitFunc debits the source snapshot in place and returns the instance to
// create from it. Like Mutator it may be retried.
type SplitFunc func(source *model.Instance) (*model.Instance, error)

// Recorder builds the movements of a change from the stored snapshot before
// it (nil on create) and the snapshot being committed, whose Version and
// UpdatedAt are final. Stores write the movements in the same unit of work
// as the change. It runs once per attempt; the last call belongs to the
// committed attempt. A nil Recorder records nothing.
type Recorder func(before, after *model.Instance) []model.Movement

// SplitRecorder is the Recorder of Split.
type SplitRecorder func(before, source, produced *model.Instance) []model.Movement

type Repository interface {
	Create(ctx context.Context, inst *model.Instance, record Recorder) error
	Get(ctx context.Context, id string) (*model.Instance, error)
	GetByCode(ctx context.Context, code string) (*model.Instance, error)

	// Update applies mutate to a snapshot, validates the invariants and
	// commits with a compare-and-swap on Version.
	Update(ctx context.Context, id string, mutate Mutator, record Recorder) (*model.Instance, error)

	// Split debits the source and creates the produced instance as one unit.
	Split(ctx context.Context, sourceID string, split SplitFunc, record SplitRecorder) (source *model.Instance, produced *model.Instance, err error)

	// ListMovements returns the movements of an instance ordered by InstanceVersion.
	ListMovements(ctx context.Context, instanceID string) ([]model.Movement, error)

	// Code lookups used by the code generator
	ListCodes(ctx context.Context, productID, branchID, batchTypeID string) ([]string, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

// CheckImmutable rejects mutations of fields fixed at creation.
func CheckImmutable(before, after *model.Instance) error {
	switch {
	case before.ID != after.ID,
		before.ProductID != after.ProductID,
		before.BatchTypeID != after.BatchTypeID,
		before.InstanceCode != after.InstanceCode,
		!before.InitialQuantity.Equal(after.InitialQuantity),
		before.Grouped != after.Grouped,
		!sameSource(before.SourceInstanceID, after.SourceInstanceID),
		!before.Attributes.Equal(after.Attributes),
		!before.CreatedAt.Equal(after.CreatedAt):
		return apperr.New(apperr.KindInternal, "immutable instance field changed", before.ID)
	}
	if before.Status == model.StatusScrapped && after.Status != model.StatusScrapped {
		return apperr.InstanceScrapped(before.ID)
	}
	return nil
}

func sameSource(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
