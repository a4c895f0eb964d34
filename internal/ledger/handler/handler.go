package handler

import (
	"context"
	"errors"

	inventoryv1 "github.com/fekuna/omnipos-inventory-service/gen/go/omnipos/inventory/v1"
	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/auth"
	"github.com/fekuna/omnipos-inventory-service/internal/ledger"
	"github.com/fekuna/omnipos-inventory-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type LedgerHandler struct {
	inventoryv1.UnimplementedInstanceLedgerServiceServer
	uc     ledger.UseCase
	logger logger.ZapLogger
}

func NewLedgerHandler(uc ledger.UseCase, log logger.ZapLogger) *LedgerHandler {
	return &LedgerHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *LedgerHandler) Register(ctx context.Context, req *inventoryv1.RegisterRequest) (*inventoryv1.InstanceResponse, error) {
	input, err := toRegisterInput(ctx, req)
	if err != nil {
		return nil, h.toStatus(err)
	}

	inst, err := h.uc.Register(ctx, input)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &inventoryv1.InstanceResponse{Instance: mapInstanceToProto(inst)}, nil
}

func (h *LedgerHandler) RegisterBatch(ctx context.Context, req *inventoryv1.RegisterBatchRequest) (*inventoryv1.BatchResponse, error) {
	results := runBatch(req.GetItems(),
		func(item *inventoryv1.RegisterRequest) (*dto.RegisterInput, error) { return toRegisterInput(ctx, item) },
		func(inputs []dto.RegisterInput) []dto.ItemResult { return h.uc.RegisterBatch(ctx, inputs) },
	)
	return toBatchResponse(results), nil
}

func (h *LedgerHandler) Adjust(ctx context.Context, req *inventoryv1.AdjustRequest) (*inventoryv1.InstanceResponse, error) {
	qty, err := parseQuantity("new_quantity", req.NewQuantity)
	if err != nil {
		return nil, h.toStatus(err)
	}

	inst, err := h.uc.Adjust(ctx, &dto.AdjustInput{
		InstanceID:  req.InstanceId,
		NewQuantity: qty,
		Reason:      req.Reason,
		Actor:       auth.GetUserID(ctx),
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &inventoryv1.InstanceResponse{Instance: mapInstanceToProto(inst)}, nil
}

func (h *LedgerHandler) Transfer(ctx context.Context, req *inventoryv1.TransferRequest) (*inventoryv1.InstanceResponse, error) {
	inst, err := h.uc.Transfer(ctx, &dto.TransferInput{
		InstanceID: req.InstanceId,
		ToBranchID: req.ToBranchId,
		Notes:      req.Notes,
		Actor:      auth.GetUserID(ctx),
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &inventoryv1.InstanceResponse{Instance: mapInstanceToProto(inst)}, nil
}

func (h *LedgerHandler) Convert(ctx context.Context, req *inventoryv1.ConvertRequest) (*inventoryv1.ConversionResponse, error) {
	input, err := toConvertInput(ctx, req)
	if err != nil {
		return nil, h.toStatus(err)
	}

	res, err := h.uc.Convert(ctx, input)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &inventoryv1.ConversionResponse{
		Source:   mapInstanceToProto(res.Source),
		Produced: mapInstanceToProto(res.Produced),
	}, nil
}

func (h *LedgerHandler) ConvertBatch(ctx context.Context, req *inventoryv1.ConvertBatchRequest) (*inventoryv1.BatchResponse, error) {
	results := runBatch(req.GetItems(),
		func(item *inventoryv1.ConvertRequest) (*dto.ConvertInput, error) { return toConvertInput(ctx, item) },
		func(inputs []dto.ConvertInput) []dto.ItemResult { return h.uc.ConvertBatch(ctx, inputs) },
	)
	return toBatchResponse(results), nil
}

func (h *LedgerHandler) Deduct(ctx context.Context, req *inventoryv1.DeductRequest) (*inventoryv1.InstanceResponse, error) {
	qty, err := parseQuantity("quantity", req.Quantity)
	if err != nil {
		return nil, h.toStatus(err)
	}

	inst, err := h.uc.Deduct(ctx, &dto.DeductInput{
		InstanceID:  req.InstanceId,
		Quantity:    qty,
		Reason:      req.Reason,
		ReferenceID: req.ReferenceId,
		Actor:       auth.GetUserID(ctx),
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &inventoryv1.InstanceResponse{Instance: mapInstanceToProto(inst)}, nil
}

func (h *LedgerHandler) Scrap(ctx context.Context, req *inventoryv1.ScrapRequest) (*inventoryv1.InstanceResponse, error) {
	inst, err := h.uc.Scrap(ctx, &dto.ScrapInput{
		InstanceID: req.InstanceId,
		Reason:     req.Reason,
		Actor:      auth.GetUserID(ctx),
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &inventoryv1.InstanceResponse{Instance: mapInstanceToProto(inst)}, nil
}

func (h *LedgerHandler) GetInstance(ctx context.Context, req *inventoryv1.GetInstanceRequest) (*inventoryv1.InstanceResponse, error) {
	inst, err := h.uc.GetInstance(ctx, req.InstanceId)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &inventoryv1.InstanceResponse{Instance: mapInstanceToProto(inst)}, nil
}

func (h *LedgerHandler) ListMovements(ctx context.Context, req *inventoryv1.ListMovementsRequest) (*inventoryv1.ListMovementsResponse, error) {
	mvs, err := h.uc.ListMovements(ctx, req.InstanceId)
	if err != nil {
		return nil, h.toStatus(err)
	}

	protoMovements := make([]*inventoryv1.Movement, len(mvs))
	for i := range mvs {
		protoMovements[i] = mapMovementToProto(&mvs[i])
	}
	return &inventoryv1.ListMovementsResponse{Movements: protoMovements}, nil
}

func (h *LedgerHandler) SuggestCode(ctx context.Context, req *inventoryv1.SuggestCodeRequest) (*inventoryv1.SuggestCodeResponse, error) {
	code, err := h.uc.SuggestCode(ctx, &dto.SuggestCodeInput{
		ProductID:   req.ProductId,
		BranchID:    req.BranchId,
		BatchTypeID: req.BatchTypeId,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &inventoryv1.SuggestCodeResponse{Code: code}, nil
}

// Helpers

// parseQuantity reads a decimal string off the wire. Scale and sign are
// checked by the use case.
func parseQuantity(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, apperr.Validation(field, "quantity is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, apperr.Validation(field, "quantity must be a decimal number")
	}
	return d, nil
}

func toRegisterInput(ctx context.Context, req *inventoryv1.RegisterRequest) (*dto.RegisterInput, error) {
	qty, err := parseQuantity("initial_quantity", req.InitialQuantity)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterInput{
		ProductID:       req.ProductId,
		BranchID:        req.BranchId,
		BatchTypeID:     req.BatchTypeId,
		InstanceCode:    req.InstanceCode,
		InitialQuantity: qty,
		Grouped:         req.Grouped,
		Attributes:      req.Attributes,
		Actor:           auth.GetUserID(ctx),
	}, nil
}

func toConvertInput(ctx context.Context, req *inventoryv1.ConvertRequest) (*dto.ConvertInput, error) {
	weight, err := parseQuantity("weight", req.Weight)
	if err != nil {
		return nil, err
	}
	return &dto.ConvertInput{
		SourceInstanceID: req.SourceInstanceId,
		NewInstanceCode:  req.NewInstanceCode,
		Weight:           weight,
		Attributes:       req.Attributes,
		Actor:            auth.GetUserID(ctx),
	}, nil
}

// runBatch parses every item, hands the parseable ones to run and reports
// the rest as failed, keeping results at their submission index.
func runBatch[Req any, In any](items []Req, parse func(Req) (*In, error), run func([]In) []dto.ItemResult) []dto.ItemResult {
	results := make([]dto.ItemResult, len(items))
	inputs := make([]In, 0, len(items))
	positions := make([]int, 0, len(items))
	for i, item := range items {
		in, err := parse(item)
		if err != nil {
			results[i] = dto.ItemResult{Index: i, Err: err}
			continue
		}
		inputs = append(inputs, *in)
		positions = append(positions, i)
	}
	if len(inputs) == 0 {
		return results
	}

	for _, r := range run(inputs) {
		if r.Index < 0 || r.Index >= len(positions) {
			continue
		}
		r.Index = positions[r.Index]
		results[r.Index] = r
	}
	return results
}

func toBatchResponse(results []dto.ItemResult) *inventoryv1.BatchResponse {
	resp := &inventoryv1.BatchResponse{Results: make([]*inventoryv1.ItemResult, len(results))}
	for i, r := range results {
		item := &inventoryv1.ItemResult{
			Index:    int32(r.Index),
			Instance: mapInstanceToProto(r.Instance),
			Source:   mapInstanceToProto(r.Source),
		}
		if r.Err != nil {
			item.Error = mapErrorToProto(r.Err)
			resp.Failed++
		} else {
			resp.Succeeded++
		}
		resp.Results[i] = item
	}
	return resp
}

// toStatus maps ledger error kinds onto gRPC status codes. Internal errors
// are logged and reported without their details.
func (h *LedgerHandler) toStatus(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}

	var code codes.Code
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindInvalidQuantity:
		code = codes.InvalidArgument
	case apperr.KindInsufficientQuantity, apperr.KindUnsupportedConversion, apperr.KindInstanceScrapped:
		code = codes.FailedPrecondition
	case apperr.KindDuplicateCode:
		code = codes.AlreadyExists
	case apperr.KindNotFound:
		code = codes.NotFound
	case apperr.KindConcurrencyConflict:
		code = codes.Aborted
	default:
		h.logger.Error("ledger request failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}

var _ inventoryv1.InstanceLedgerServiceServer = (*LedgerHandler)(nil)
