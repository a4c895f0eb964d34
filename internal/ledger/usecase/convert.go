package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/batchtype"
	"github.com/fekuna/omnipos-inventory-service/internal/codegen"
	"github.com/fekuna/omnipos-inventory-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (uc *ledgerUseCase) Convert(ctx context.Context, input *dto.ConvertInput) (res *dto.ConversionResult, err error) {
	defer observe("convert", time.Now(), &err)
	return uc.convert(ctx, input, codegen.NewClaimSet())
}

// ConvertBatch converts items in order with per-item results and a shared claim set.
func (uc *ledgerUseCase) ConvertBatch(ctx context.Context, inputs []dto.ConvertInput) []dto.ItemResult {
	claims := codegen.NewClaimSet()
	results := make([]dto.ItemResult, 0, len(inputs))

	for i := range inputs {
		start := time.Now()
		res, err := uc.convert(ctx, &inputs[i], claims)
		observe("convert", start, &err)

		item := dto.ItemResult{Index: i, Err: err}
		if res != nil {
			item.Instance = res.Produced
			item.Source = res.Source
		}
		results = append(results, item)
	}
	return results
}

func (uc *ledgerUseCase) convert(ctx context.Context, input *dto.ConvertInput, claims codegen.ClaimSet) (*dto.ConversionResult, error) {
	if input.SourceInstanceID == "" {
		return nil, apperr.Validation("source_instance_id", "source instance id is required")
	}
	if !input.Weight.IsPositive() {
		return nil, apperr.InvalidQuantity("conversion weight must be positive, got %s", input.Weight)
	}
	if err := checkScale("conversion weight", input.Weight); err != nil {
		return nil, err
	}

	source, err := uc.instances.Get(ctx, input.SourceInstanceID)
	if err != nil {
		return nil, err
	}
	if source.IsScrapped() {
		return nil, apperr.InstanceScrapped(source.ID)
	}

	types, err := uc.batchTypes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	target, err := batchtype.ConversionTarget(types, source.BatchTypeID)
	if err != nil {
		return nil, err
	}
	if input.Weight.GreaterThan(source.RemainingQuantity) {
		return nil, apperr.InsufficientQuantity(source.RemainingQuantity.String(), input.Weight.String())
	}

	candidate := strings.TrimSpace(input.NewInstanceCode)
	if candidate == "" {
		product, err := uc.refs.FindProduct(ctx, source.ProductID)
		if err != nil {
			return nil, err
		}
		candidate, err = codegen.Suggest(ctx, uc.instances, source.ProductID, source.BranchID, target.ID, product.SKU, target.Name)
		if err != nil {
			return nil, err
		}
	}

	producedID := uuid.New().String()
	var (
		before         decimal.Decimal
		debited, fresh *model.Instance
		movements      []model.Movement
	)
	_, err = uc.commitWithCode(ctx, candidate, claims, func(code string) error {
		s, p, err := uc.instances.Split(ctx, source.ID, func(s *model.Instance) (*model.Instance, error) {
			if s.IsScrapped() {
				return nil, apperr.InstanceScrapped(s.ID)
			}
			if input.Weight.GreaterThan(s.RemainingQuantity) {
				return nil, apperr.InsufficientQuantity(s.RemainingQuantity.String(), input.Weight.String())
			}

			before = s.RemainingQuantity
			s.RemainingQuantity = s.RemainingQuantity.Sub(input.Weight)
			s.DeriveStatus()

			sourceID := s.ID
			p := &model.Instance{
				BaseModel:         model.BaseModel{ID: producedID},
				ProductID:         s.ProductID,
				BranchID:          s.BranchID,
				BatchTypeID:       target.ID,
				InstanceCode:      code,
				InitialQuantity:   input.Weight,
				RemainingQuantity: input.Weight,
				Grouped:           true,
				SourceInstanceID:  &sourceID,
				Attributes:        carryAttributes(s.Attributes, input.Attributes),
			}
			p.DeriveStatus()

			if !conserved(before, s, p) {
				return nil, apperr.Internal("conversion does not conserve quantity", nil)
			}
			return p, nil
		}, func(prior, s, p *model.Instance) []model.Movement {
			toRef, fromRef := p.ID, s.ID
			out := newMovement(s, model.MovementConversionOut, prior.RemainingQuantity, "conversion to "+p.InstanceCode, input.Actor)
			out.ReferenceID = &toRef
			in := newMovement(p, model.MovementConversionIn, decimal.Zero, "conversion from "+s.InstanceCode, input.Actor)
			in.ReferenceID = &fromRef
			movements = []model.Movement{out, in}
			return movements
		})
		if err != nil {
			return err
		}
		debited, fresh = s, p
		return nil
	})
	if err != nil {
		uc.logFailure("convert", err, zap.String("instance_id", input.SourceInstanceID), zap.String("instance_code", candidate))
		return nil, err
	}

	// Verify the committed records as well as the planned ones.
	if !conserved(before, debited, fresh) {
		uc.logger.Error("conversion committed without conserving quantity",
			zap.String("instance_id", debited.ID),
			zap.String("produced_id", fresh.ID),
			zap.String("quantity_before", before.String()),
			zap.String("source_after", debited.RemainingQuantity.String()),
			zap.String("produced", fresh.RemainingQuantity.String()),
		)
		return nil, apperr.Internal("conversion conservation check failed", nil)
	}

	uc.logger.Info("instance converted",
		zap.String("instance_id", debited.ID),
		zap.String("produced_id", fresh.ID),
		zap.String("instance_code", fresh.InstanceCode),
		zap.String("weight", input.Weight.String()),
	)

	uc.afterCommit(ctx, []*model.Instance{debited, fresh}, movements)

	return &dto.ConversionResult{Source: debited, Produced: fresh}, nil
}

func conserved(before decimal.Decimal, source, produced *model.Instance) bool {
	return source.RemainingQuantity.Add(produced.RemainingQuantity).Equal(before)
}

// carryAttributes copies the source's descriptive attributes and applies overrides.
func carryAttributes(source model.Attributes, overrides map[string]string) model.Attributes {
	if len(source) == 0 && len(overrides) == 0 {
		return nil
	}
	out := source.Clone()
	if out == nil {
		out = model.Attributes{}
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
