package ledger

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*model.Instance, error)
	RegisterBatch(ctx context.Context, inputs []dto.RegisterInput) []dto.ItemResult
	Adjust(ctx context.Context, input *dto.AdjustInput) (*model.Instance, error)
	Transfer(ctx context.Context, input *dto.TransferInput) (*model.Instance, error)
	Convert(ctx context.Context, input *dto.ConvertInput) (*dto.ConversionResult, error)
	ConvertBatch(ctx context.Context, inputs []dto.ConvertInput) []dto.ItemResult
	Deduct(ctx context.Context, input *dto.DeductInput) (*model.Instance, error)
	Scrap(ctx context.Context, input *dto.ScrapInput) (*model.Instance, error)

	GetInstance(ctx context.Context, id string) (*model.Instance, error)
	ListMovements(ctx context.Context, instanceID string) ([]model.Movement, error)
	SuggestCode(ctx context.Context, input *dto.SuggestCodeInput) (string, error)
}
