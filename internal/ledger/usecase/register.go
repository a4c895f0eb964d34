package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/codegen"
	"github.com/fekuna/omnipos-inventory-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ungroupedCodePrefix marks internally generated codes of ungrouped instances.
const ungroupedCodePrefix = "U-"

func (uc *ledgerUseCase) Register(ctx context.Context, input *dto.RegisterInput) (inst *model.Instance, err error) {
	defer observe("register", time.Now(), &err)
	return uc.register(ctx, input, codegen.NewClaimSet())
}

// RegisterBatch registers items in order. Each item succeeds or fails on its
// own; codes committed by earlier items are never reused by later ones.
func (uc *ledgerUseCase) RegisterBatch(ctx context.Context, inputs []dto.RegisterInput) []dto.ItemResult {
	claims := codegen.NewClaimSet()
	results := make([]dto.ItemResult, 0, len(inputs))

	for i := range inputs {
		start := time.Now()
		inst, err := uc.register(ctx, &inputs[i], claims)
		observe("register", start, &err)
		results = append(results, dto.ItemResult{Index: i, Instance: inst, Err: err})
	}
	return results
}

func (uc *ledgerUseCase) register(ctx context.Context, input *dto.RegisterInput, claims codegen.ClaimSet) (*model.Instance, error) {
	if input.ProductID == "" {
		return nil, apperr.Validation("product_id", "product id is required")
	}
	if input.BranchID == "" {
		return nil, apperr.Validation("branch_id", "branch id is required")
	}
	if input.InitialQuantity.IsNegative() {
		return nil, apperr.InvalidQuantity("initial quantity %s is negative", input.InitialQuantity)
	}
	if err := checkScale("initial quantity", input.InitialQuantity); err != nil {
		return nil, err
	}

	product, err := uc.refs.FindProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, apperr.Validation("product_id", "product is inactive")
	}
	branch, err := uc.refs.FindBranch(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if !branch.IsActive {
		return nil, apperr.Validation("branch_id", "branch is inactive")
	}
	bt, err := uc.resolveBatchType(ctx, input.BatchTypeID, product)
	if err != nil {
		return nil, err
	}

	inst := &model.Instance{
		BaseModel:         model.BaseModel{ID: uuid.New().String()},
		ProductID:         product.ID,
		BranchID:          branch.ID,
		BatchTypeID:       bt.ID,
		InitialQuantity:   input.InitialQuantity,
		RemainingQuantity: input.InitialQuantity,
		Grouped:           input.Grouped,
		Attributes:        model.Attributes(input.Attributes).Clone(),
	}
	inst.DeriveStatus()

	var movements []model.Movement
	record := capture(&movements, func(_, created *model.Instance) model.Movement {
		return newMovement(created, model.MovementRegistration, decimal.Zero, "registration", input.Actor)
	})

	if !input.Grouped {
		inst.InstanceCode = ungroupedCodePrefix + uuid.New().String()
		if err := uc.instances.Create(ctx, inst, record); err != nil {
			uc.logFailure("register", err, zap.String("product_id", product.ID))
			return nil, err
		}
	} else {
		candidate := strings.TrimSpace(input.InstanceCode)
		if candidate == "" {
			candidate, err = codegen.Suggest(ctx, uc.instances, product.ID, branch.ID, bt.ID, product.SKU, bt.Name)
			if err != nil {
				return nil, err
			}
		}

		_, err = uc.commitWithCode(ctx, candidate, claims, func(code string) error {
			inst.InstanceCode = code
			return uc.instances.Create(ctx, inst, record)
		})
		if err != nil {
			uc.logFailure("register", err, zap.String("product_id", product.ID), zap.String("instance_code", candidate))
			return nil, err
		}
	}

	uc.logger.Info("instance registered",
		zap.String("instance_id", inst.ID),
		zap.String("instance_code", inst.InstanceCode),
		zap.String("branch_id", inst.BranchID),
		zap.String("quantity", inst.InitialQuantity.String()),
	)
	uc.afterCommit(ctx, []*model.Instance{inst}, movements)
	return inst.Clone(), nil
}
