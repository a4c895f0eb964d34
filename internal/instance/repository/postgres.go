package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/instance"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const uniqueViolation = "23505"

const instanceColumns = `
        id, product_id, branch_id, batch_type_id, instance_code,
        initial_quantity, remaining_quantity, status, grouped,
        source_instance_id, attributes, version, created_at, updated_at`

const insertInstanceQuery = `
        INSERT INTO inventory_instances (` + instanceColumns + `
        )
        VALUES (
            :id, :product_id, :branch_id, :batch_type_id, :instance_code,
            :initial_quantity, :remaining_quantity, :status, :grouped,
            :source_instance_id, :attributes, :version, :created_at, :updated_at
        )`

const movementColumns = `
        id, instance_id, instance_code, product_id, movement_type,
        quantity_before, quantity_after, from_branch_id, to_branch_id,
        reason, reference_id, actor, instance_version, created_at`

const insertMovementQuery = `
        INSERT INTO instance_movements (` + movementColumns + `
        )
        VALUES (
            :id, :instance_id, :instance_code, :product_id, :movement_type,
            :quantity_before, :quantity_after, :from_branch_id, :to_branch_id,
            :reason, :reference_id, :actor, :instance_version, :created_at
        )`

// Only mutable columns are written; the version predicate makes the write a compare-and-swap.
const updateInstanceQuery = `
        UPDATE inventory_instances
        SET branch_id = $1, remaining_quantity = $2, status = $3,
            version = $4, updated_at = $5
        WHERE id = $6 AND version = $7`

type PGRepository struct {
	DB          *sqlx.DB
	maxAttempts int
}

func NewPGRepository(db *sqlx.DB, maxAttempts int) *PGRepository {
	if maxAttempts <= 0 {
		maxAttempts = instance.DefaultMaxAttempts
	}
	return &PGRepository{DB: db, maxAttempts: maxAttempts}
}

func (r *PGRepository) Create(ctx context.Context, inst *model.Instance, record instance.Recorder) error {
	if err := inst.Validate(); err != nil {
		return err
	}
	fillCreateDefaults(inst)

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, insertInstanceQuery, inst); err != nil {
		return mapInsertError(inst, err)
	}
	if record != nil {
		if err := insertMovements(ctx, tx, record(nil, inst)); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit instance: %w", err)
	}
	return nil
}

func (r *PGRepository) Get(ctx context.Context, id string) (*model.Instance, error) {
	return r.getOne(ctx, r.DB, `SELECT `+instanceColumns+` FROM inventory_instances WHERE id = $1`, id)
}

func (r *PGRepository) GetByCode(ctx context.Context, code string) (*model.Instance, error) {
	return r.getOne(ctx, r.DB, `SELECT `+instanceColumns+` FROM inventory_instances WHERE instance_code = $1`, code)
}

func (r *PGRepository) getOne(ctx context.Context, q sqlx.QueryerContext, query, key string) (*model.Instance, error) {
	var inst model.Instance
	err := sqlx.GetContext(ctx, q, &inst, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("instance", key)
		}
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}
	return &inst, nil
}

func (r *PGRepository) Update(ctx context.Context, id string, mutate instance.Mutator, record instance.Recorder) (*model.Instance, error) {
	b := instance.NewRetryBackOff()
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := instance.WaitRetry(ctx, b); err != nil {
				return nil, err
			}
		}
		after, committed, err := r.updateOnce(ctx, id, mutate, record)
		if err != nil {
			return nil, err
		}
		if committed {
			return after, nil
		}
	}
	return nil, apperr.ConcurrencyConflict(id, r.maxAttempts)
}

// updateOnce writes the instance and its movements in one transaction.
// It reports false when a concurrent writer changed the version first.
func (r *PGRepository) updateOnce(ctx context.Context, id string, mutate instance.Mutator, record instance.Recorder) (*model.Instance, bool, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	before, err := r.getOne(ctx, tx, `SELECT `+instanceColumns+` FROM inventory_instances WHERE id = $1`, id)
	if err != nil {
		return nil, false, err
	}
	after := before.Clone()
	if err := mutate(after); err != nil {
		return nil, false, err
	}
	if err := prepareUpdate(before, after); err != nil {
		return nil, false, err
	}

	ok, err := casInstance(ctx, tx, before.Version, after)
	if err != nil || !ok {
		return nil, false, err
	}
	if record != nil {
		if err := insertMovements(ctx, tx, record(before, after)); err != nil {
			return nil, false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit update: %w", err)
	}
	return after, true, nil
}

func (r *PGRepository) Split(ctx context.Context, sourceID string, split instance.SplitFunc, record instance.SplitRecorder) (*model.Instance, *model.Instance, error) {
	b := instance.NewRetryBackOff()
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := instance.WaitRetry(ctx, b); err != nil {
				return nil, nil, err
			}
		}
		source, produced, committed, err := r.splitOnce(ctx, sourceID, split, record)
		if err != nil {
			return nil, nil, err
		}
		if committed {
			return source, produced, nil
		}
	}
	return nil, nil, apperr.ConcurrencyConflict(sourceID, r.maxAttempts)
}

func (r *PGRepository) splitOnce(ctx context.Context, sourceID string, split instance.SplitFunc, record instance.SplitRecorder) (*model.Instance, *model.Instance, bool, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, false, err
	}
	defer tx.Rollback()

	before, err := r.getOne(ctx, tx, `SELECT `+instanceColumns+` FROM inventory_instances WHERE id = $1`, sourceID)
	if err != nil {
		return nil, nil, false, err
	}
	source := before.Clone()
	produced, err := split(source)
	if err != nil {
		return nil, nil, false, err
	}
	if err := prepareUpdate(before, source); err != nil {
		return nil, nil, false, err
	}
	if err := produced.Validate(); err != nil {
		return nil, nil, false, err
	}

	// 1. Debit source
	ok, err := casInstance(ctx, tx, before.Version, source)
	if err != nil || !ok {
		return nil, nil, false, err
	}

	// 2. Create produced instance
	fillCreateDefaults(produced)
	if _, err := tx.NamedExecContext(ctx, insertInstanceQuery, produced); err != nil {
		return nil, nil, false, mapInsertError(produced, err)
	}

	// 3. Record movements
	if record != nil {
		if err := insertMovements(ctx, tx, record(before, source, produced)); err != nil {
			return nil, nil, false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, false, fmt.Errorf("failed to commit split: %w", err)
	}
	return source, produced, true, nil
}

func (r *PGRepository) ListMovements(ctx context.Context, instanceID string) ([]model.Movement, error) {
	items := []model.Movement{}
	query := `SELECT ` + movementColumns + ` FROM instance_movements WHERE instance_id = $1 ORDER BY instance_version ASC`
	if err := r.DB.SelectContext(ctx, &items, query, instanceID); err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return items, nil
}

func (r *PGRepository) ListCodes(ctx context.Context, productID, branchID, batchTypeID string) ([]string, error) {
	codes := []string{}
	err := r.DB.SelectContext(ctx, &codes, `
        SELECT instance_code FROM inventory_instances
        WHERE product_id = $1 AND branch_id = $2 AND batch_type_id = $3
        ORDER BY instance_code`, productID, branchID, batchTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list codes: %w", err)
	}
	return codes, nil
}

func (r *PGRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM inventory_instances WHERE instance_code = $1)`, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}
	return exists, nil
}

func casInstance(ctx context.Context, e sqlx.ExecerContext, expectedVersion int64, inst *model.Instance) (bool, error) {
	res, err := e.ExecContext(ctx, updateInstanceQuery,
		inst.BranchID, inst.RemainingQuantity, inst.Status,
		inst.Version, inst.UpdatedAt, inst.ID, expectedVersion,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update instance: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func insertMovements(ctx context.Context, tx *sqlx.Tx, movements []model.Movement) error {
	for i := range movements {
		if _, err := tx.NamedExecContext(ctx, insertMovementQuery, &movements[i]); err != nil {
			return fmt.Errorf("failed to insert movement: %w", err)
		}
	}
	return nil
}

func prepareUpdate(before, after *model.Instance) error {
	if err := instance.CheckImmutable(before, after); err != nil {
		return err
	}
	after.UpdatedAt = time.Now()
	after.Version = before.Version + 1
	return after.Validate()
}

func fillCreateDefaults(inst *model.Instance) {
	if inst.CreatedAt.IsZero() {
		inst.CreatedAt = time.Now()
	}
	if inst.UpdatedAt.IsZero() {
		inst.UpdatedAt = inst.CreatedAt
	}
	if inst.Version == 0 {
		inst.Version = 1
	}
}

func mapInsertError(inst *model.Instance, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "inventory_instances_instance_code_key" {
		return apperr.DuplicateCode(inst.InstanceCode)
	}
	return fmt.Errorf("failed to insert instance: %w", err)
}
