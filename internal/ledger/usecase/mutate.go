package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"go.uber.org/zap"
)

const defaultDeductionReason = "deduction"

func (uc *ledgerUseCase) Adjust(ctx context.Context, input *dto.AdjustInput) (inst *model.Instance, err error) {
	defer observe("adjust", time.Now(), &err)

	if strings.TrimSpace(input.Reason) == "" {
		return nil, apperr.Validation("reason", "adjustment reason is required")
	}
	if input.NewQuantity.IsNegative() {
		return nil, apperr.InvalidQuantity("new quantity %s is negative", input.NewQuantity)
	}
	if err := checkScale("new quantity", input.NewQuantity); err != nil {
		return nil, err
	}

	var movements []model.Movement
	updated, err := uc.instances.Update(ctx, input.InstanceID, func(i *model.Instance) error {
		if i.IsScrapped() {
			return apperr.InstanceScrapped(i.ID)
		}
		// Adjustments never raise capacity; that takes a new registration.
		if input.NewQuantity.GreaterThan(i.InitialQuantity) {
			return apperr.InvalidQuantity("new quantity %s exceeds initial quantity %s", input.NewQuantity, i.InitialQuantity)
		}
		i.RemainingQuantity = input.NewQuantity
		i.DeriveStatus()
		return nil
	}, capture(&movements, func(before, after *model.Instance) model.Movement {
		return newMovement(after, model.MovementAdjustment, before.RemainingQuantity, input.Reason, input.Actor)
	}))
	if err != nil {
		uc.logFailure("adjust", err, zap.String("instance_id", input.InstanceID))
		return nil, err
	}

	uc.logger.Info("instance adjusted",
		zap.String("instance_id", updated.ID),
		zap.String("quantity_before", movements[0].QuantityBefore.String()),
		zap.String("quantity_after", updated.RemainingQuantity.String()),
		zap.String("reason", input.Reason),
	)
	uc.afterCommit(ctx, []*model.Instance{updated}, movements)
	return updated, nil
}

func (uc *ledgerUseCase) Transfer(ctx context.Context, input *dto.TransferInput) (inst *model.Instance, err error) {
	defer observe("transfer", time.Now(), &err)

	if input.ToBranchID == "" {
		return nil, apperr.Validation("to_branch_id", "target branch is required")
	}
	branch, err := uc.refs.FindBranch(ctx, input.ToBranchID)
	if err != nil {
		return nil, err
	}
	if !branch.IsActive {
		return nil, apperr.Validation("to_branch_id", "target branch is inactive")
	}

	var movements []model.Movement
	updated, err := uc.instances.Update(ctx, input.InstanceID, func(i *model.Instance) error {
		if i.IsScrapped() {
			return apperr.InstanceScrapped(i.ID)
		}
		if i.BranchID == input.ToBranchID {
			return apperr.Validation("to_branch_id", "instance is already at the target branch")
		}
		i.BranchID = input.ToBranchID
		return nil
	}, capture(&movements, func(before, after *model.Instance) model.Movement {
		m := newMovement(after, model.MovementTransfer, before.RemainingQuantity, input.Notes, input.Actor)
		from, to := before.BranchID, after.BranchID
		m.FromBranchID = &from
		m.ToBranchID = &to
		return m
	}))
	if err != nil {
		uc.logFailure("transfer", err, zap.String("instance_id", input.InstanceID), zap.String("to_branch_id", input.ToBranchID))
		return nil, err
	}

	uc.logger.Info("instance transferred",
		zap.String("instance_id", updated.ID),
		zap.String("from_branch_id", *movements[0].FromBranchID),
		zap.String("to_branch_id", updated.BranchID),
	)
	uc.afterCommit(ctx, []*model.Instance{updated}, movements)
	return updated, nil
}

// Deduct debits quantity from an instance, e.g. when an order consumes stock.
func (uc *ledgerUseCase) Deduct(ctx context.Context, input *dto.DeductInput) (inst *model.Instance, err error) {
	defer observe("deduct", time.Now(), &err)

	if !input.Quantity.IsPositive() {
		return nil, apperr.InvalidQuantity("deduction quantity must be positive, got %s", input.Quantity)
	}
	if err := checkScale("deduction quantity", input.Quantity); err != nil {
		return nil, err
	}

	reason := input.Reason
	if reason == "" {
		reason = defaultDeductionReason
	}

	var movements []model.Movement
	updated, err := uc.instances.Update(ctx, input.InstanceID, func(i *model.Instance) error {
		if i.IsScrapped() {
			return apperr.InstanceScrapped(i.ID)
		}
		if input.Quantity.GreaterThan(i.RemainingQuantity) {
			return apperr.InsufficientQuantity(i.RemainingQuantity.String(), input.Quantity.String())
		}
		i.RemainingQuantity = i.RemainingQuantity.Sub(input.Quantity)
		i.DeriveStatus()
		return nil
	}, capture(&movements, func(before, after *model.Instance) model.Movement {
		m := newMovement(after, model.MovementDeduction, before.RemainingQuantity, reason, input.Actor)
		if input.ReferenceID != "" {
			ref := input.ReferenceID
			m.ReferenceID = &ref
		}
		return m
	}))
	if err != nil {
		uc.logFailure("deduct", err, zap.String("instance_id", input.InstanceID), zap.String("reference_id", input.ReferenceID))
		return nil, err
	}

	uc.afterCommit(ctx, []*model.Instance{updated}, movements)
	return updated, nil
}

// Scrap moves an instance to the terminal scrapped state. The remaining
// quantity is kept as the written-off amount.
func (uc *ledgerUseCase) Scrap(ctx context.Context, input *dto.ScrapInput) (inst *model.Instance, err error) {
	defer observe("scrap", time.Now(), &err)

	if strings.TrimSpace(input.Reason) == "" {
		return nil, apperr.Validation("reason", "scrap reason is required")
	}

	var movements []model.Movement
	updated, err := uc.instances.Update(ctx, input.InstanceID, func(i *model.Instance) error {
		if i.IsScrapped() {
			return apperr.InstanceScrapped(i.ID)
		}
		i.Status = model.StatusScrapped
		return nil
	}, capture(&movements, func(before, after *model.Instance) model.Movement {
		return newMovement(after, model.MovementScrap, before.RemainingQuantity, input.Reason, input.Actor)
	}))
	if err != nil {
		uc.logFailure("scrap", err, zap.String("instance_id", input.InstanceID))
		return nil, err
	}

	uc.logger.Info("instance scrapped",
		zap.String("instance_id", updated.ID),
		zap.String("quantity", updated.RemainingQuantity.String()),
		zap.String("reason", input.Reason),
	)
	uc.afterCommit(ctx, []*model.Instance{updated}, movements)
	return updated, nil
}
