package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/audit"
	"github.com/fekuna/omnipos-inventory-service/internal/batchtype"
	"github.com/fekuna/omnipos-inventory-service/internal/codegen"
	"github.com/fekuna/omnipos-inventory-service/internal/instance"
	"github.com/fekuna/omnipos-inventory-service/internal/ledger"
	"github.com/fekuna/omnipos-inventory-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/internal/reference"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultCodeRetryAttempts = 3
	DefaultIndexTimeout      = 5 * time.Second
	DefaultPublishTimeout    = 2 * time.Second
)

// Indexer mirrors committed instances into a search index.
type Indexer interface {
	IndexInstance(ctx context.Context, inst *model.Instance) error
}

type Options struct {
	// CodeRetryAttempts bounds how often a code that collided at commit is re-resolved.
	CodeRetryAttempts int
	IndexTimeout      time.Duration
	// PublishTimeout bounds how long a request waits on the movement sink after commit.
	PublishTimeout time.Duration
}

type ledgerUseCase struct {
	instances  instance.Repository
	batchTypes batchtype.Repository
	refs       reference.Repository
	audit      audit.Sink
	indexer    Indexer
	logger     logger.ZapLogger
	opts       Options
}

// NewLedgerUseCase wires the ledger. indexer may be nil.
func NewLedgerUseCase(
	instances instance.Repository,
	batchTypes batchtype.Repository,
	refs reference.Repository,
	sink audit.Sink,
	indexer Indexer,
	log logger.ZapLogger,
	opts Options,
) ledger.UseCase {
	if opts.CodeRetryAttempts <= 0 {
		opts.CodeRetryAttempts = DefaultCodeRetryAttempts
	}
	if opts.IndexTimeout <= 0 {
		opts.IndexTimeout = DefaultIndexTimeout
	}
	if opts.PublishTimeout <= 0 {
		opts.PublishTimeout = DefaultPublishTimeout
	}
	return &ledgerUseCase{
		instances:  instances,
		batchTypes: batchTypes,
		refs:       refs,
		audit:      sink,
		indexer:    indexer,
		logger:     log,
		opts:       opts,
	}
}

func (uc *ledgerUseCase) GetInstance(ctx context.Context, id string) (*model.Instance, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Validation("instance_id", "instance id is required")
	}
	return uc.instances.Get(ctx, id)
}

// ListMovements returns the recorded history of an instance, oldest first.
func (uc *ledgerUseCase) ListMovements(ctx context.Context, instanceID string) ([]model.Movement, error) {
	if strings.TrimSpace(instanceID) == "" {
		return nil, apperr.Validation("instance_id", "instance id is required")
	}
	if _, err := uc.instances.Get(ctx, instanceID); err != nil {
		return nil, err
	}
	return uc.instances.ListMovements(ctx, instanceID)
}

func (uc *ledgerUseCase) SuggestCode(ctx context.Context, input *dto.SuggestCodeInput) (string, error) {
	if input.ProductID == "" || input.BranchID == "" {
		return "", apperr.Validation("product_id", "product and branch are required")
	}
	product, err := uc.refs.FindProduct(ctx, input.ProductID)
	if err != nil {
		return "", err
	}
	bt, err := uc.resolveBatchType(ctx, input.BatchTypeID, product)
	if err != nil {
		return "", err
	}
	return codegen.Suggest(ctx, uc.instances, product.ID, input.BranchID, bt.ID, product.SKU, bt.Name)
}

// resolveBatchType validates an explicit batch type or picks the default one
// for the product's category.
func (uc *ledgerUseCase) resolveBatchType(ctx context.Context, batchTypeID string, product *model.Product) (*model.BatchType, error) {
	types, err := uc.batchTypes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if batchTypeID == "" {
		return batchtype.DefaultFor(types, product.CategoryID)
	}

	bt, err := batchtype.Find(types, batchTypeID)
	if err != nil {
		return nil, err
	}
	if !bt.IsActive {
		return nil, apperr.Validation("batch_type_id", "batch type is inactive")
	}
	if !batchtype.AppliesTo(bt, product.CategoryID) {
		return nil, apperr.Validation("batch_type_id", "batch type does not apply to the product category")
	}
	return bt, nil
}

// commitWithCode resolves candidate against stored and claimed codes and runs
// commit with the result. A code taken by a concurrent writer between resolve
// and commit is resolved again, a bounded number of times.
func (uc *ledgerUseCase) commitWithCode(ctx context.Context, candidate string, claims codegen.ClaimSet, commit func(code string) error) (string, error) {
	inUse := claims.InUse(ctx, uc.instances)

	for attempt := 0; attempt < uc.opts.CodeRetryAttempts; attempt++ {
		code, err := codegen.Resolve(candidate, inUse)
		if err != nil {
			return "", err
		}

		err = commit(code)
		if err == nil {
			claims.Claim(code)
			return code, nil
		}
		if !errors.Is(err, apperr.ErrDuplicateCode) {
			return "", err
		}

		codeCollisionsTotal.Inc()
		uc.logger.Warn("instance code taken at commit, resolving again",
			zap.String("instance_code", code),
			zap.Int("attempt", attempt+1),
		)
		candidate = code
	}
	return "", apperr.DuplicateCode(candidate)
}

// afterCommit publishes the movements stored with a change and refreshes
// the search index. Neither can undo the committed change, so failures are
// logged, and neither may hold the request longer than its timeout.
func (uc *ledgerUseCase) afterCommit(ctx context.Context, instances []*model.Instance, movements []model.Movement) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.opts.PublishTimeout)
	err := uc.audit.Append(pctx, movements...)
	cancel()
	if err != nil {
		uc.logger.Error("failed to publish instance movements",
			zap.Int("movements", len(movements)),
			zap.Error(err),
		)
	}

	if uc.indexer == nil {
		return
	}
	snapshots := make([]*model.Instance, 0, len(instances))
	for _, inst := range instances {
		snapshots = append(snapshots, inst.Clone())
	}
	go func() {
		ictx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.opts.IndexTimeout)
		defer cancel()
		for _, inst := range snapshots {
			if err := uc.indexer.IndexInstance(ictx, inst); err != nil {
				uc.logger.Warn("failed to index instance",
					zap.String("instance_id", inst.ID),
					zap.Error(err),
				)
			}
		}
	}()
}

// capture turns a single-movement builder into a Recorder that keeps what
// the last attempt recorded in *out.
func capture(out *[]model.Movement, build func(before, after *model.Instance) model.Movement) instance.Recorder {
	return func(before, after *model.Instance) []model.Movement {
		*out = []model.Movement{build(before, after)}
		return *out
	}
}

// newMovement describes the change that produced inst. before is the
// remaining quantity prior to it.
func newMovement(inst *model.Instance, movementType model.MovementType, before decimal.Decimal, reason, actor string) model.Movement {
	m := model.Movement{
		ID:              uuid.New().String(),
		InstanceID:      inst.ID,
		InstanceCode:    inst.InstanceCode,
		ProductID:       inst.ProductID,
		MovementType:    movementType,
		QuantityBefore:  before,
		QuantityAfter:   inst.RemainingQuantity,
		Reason:          reason,
		InstanceVersion: inst.Version,
		CreatedAt:       inst.UpdatedAt,
	}
	if actor != "" {
		m.Actor = &actor
	}
	return m
}

func checkScale(field string, q decimal.Decimal) error {
	if !model.HasQuantityScale(q) {
		return apperr.InvalidQuantity("%s %s has more than %d decimal places", field, q, model.QuantityScale)
	}
	return nil
}

func (uc *ledgerUseCase) logFailure(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("operation", op), zap.String("kind", string(apperr.KindOf(err))), zap.Error(err))
	uc.logger.Warn("ledger operation rejected", fields...)
}
