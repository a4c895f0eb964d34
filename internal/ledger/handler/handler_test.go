package handler

import (
	"context"
	"net"
	"testing"
	"time"

	inventoryv1 "github.com/fekuna/omnipos-inventory-service/gen/go/omnipos/inventory/v1"
	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/fekuna/omnipos-inventory-service/pkg/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// stubUseCase answers every call with the configured instance or error.
type stubUseCase struct {
	inst        *model.Instance
	err         error
	lastActor   string
	lastAdjust  *dto.AdjustInput
	batchInputs int
	results     []dto.ItemResult
	movements   []model.Movement
}

func (s *stubUseCase) Register(_ context.Context, in *dto.RegisterInput) (*model.Instance, error) {
	s.lastActor = in.Actor
	return s.inst, s.err
}
func (s *stubUseCase) RegisterBatch(_ context.Context, in []dto.RegisterInput) []dto.ItemResult {
	s.batchInputs = len(in)
	return s.results
}
func (s *stubUseCase) Adjust(_ context.Context, in *dto.AdjustInput) (*model.Instance, error) {
	s.lastActor = in.Actor
	s.lastAdjust = in
	return s.inst, s.err
}
func (s *stubUseCase) Transfer(context.Context, *dto.TransferInput) (*model.Instance, error) {
	return s.inst, s.err
}
func (s *stubUseCase) Convert(context.Context, *dto.ConvertInput) (*dto.ConversionResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ConversionResult{Source: s.inst, Produced: s.inst}, nil
}
func (s *stubUseCase) ConvertBatch(_ context.Context, in []dto.ConvertInput) []dto.ItemResult {
	s.batchInputs = len(in)
	return s.results
}
func (s *stubUseCase) Deduct(context.Context, *dto.DeductInput) (*model.Instance, error) {
	return s.inst, s.err
}
func (s *stubUseCase) Scrap(context.Context, *dto.ScrapInput) (*model.Instance, error) {
	return s.inst, s.err
}
func (s *stubUseCase) GetInstance(context.Context, string) (*model.Instance, error) {
	return s.inst, s.err
}
func (s *stubUseCase) ListMovements(context.Context, string) ([]model.Movement, error) {
	return s.movements, s.err
}
func (s *stubUseCase) SuggestCode(context.Context, *dto.SuggestCodeInput) (string, error) {
	return "A-COIL-003", s.err
}

func dial(t *testing.T, uc *stubUseCase) inventoryv1.InstanceLedgerServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(middleware.ContextInterceptor()))
	inventoryv1.RegisterInstanceLedgerServiceServer(srv, NewLedgerHandler(uc, logger.NewNop()))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return inventoryv1.NewInstanceLedgerServiceClient(conn)
}

func TestAdjust_RoundTripWithActor(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	uc := &stubUseCase{inst: &model.Instance{
		BaseModel:         model.BaseModel{ID: "i-1", CreatedAt: created, UpdatedAt: created},
		InstanceCode:      "A-LOOSE-001",
		InitialQuantity:   decimal.RequireFromString("100"),
		RemainingQuantity: decimal.RequireFromString("25.5"),
		Status:            model.StatusInStock,
		Attributes:        model.Attributes{"gauge": "14"},
		Version:           3,
	}}
	client := dial(t, uc)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-user-id", "clerk-7")

	resp, err := client.Adjust(ctx, &inventoryv1.AdjustRequest{
		InstanceId:  "i-1",
		NewQuantity: "25.500",
		Reason:      "recount",
	})

	require.NoError(t, err)
	assert.Equal(t, "clerk-7", uc.lastActor)
	assert.True(t, uc.lastAdjust.NewQuantity.Equal(decimal.RequireFromString("25.5")))
	assert.Equal(t, "A-LOOSE-001", resp.Instance.InstanceCode)
	assert.Equal(t, "25.5", resp.Instance.RemainingQuantity)
	assert.Equal(t, "in_stock", resp.Instance.Status)
	assert.Equal(t, "14", resp.Instance.Attributes["gauge"])
	assert.Equal(t, int64(3), resp.Instance.Version)
	assert.True(t, created.Equal(resp.Instance.CreatedAt.AsTime()))
}

func TestAdjust_Error_QuantityNotADecimal(t *testing.T) {
	tests := []struct {
		name string
		qty  string
	}{
		{"empty", ""},
		{"word", "ten"},
		{"two points", "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			client := dial(t, uc)

			_, err := client.Adjust(context.Background(), &inventoryv1.AdjustRequest{InstanceId: "i-1", NewQuantity: tt.qty, Reason: "recount"})

			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Nil(t, uc.lastAdjust, "use case must not run on an unparseable quantity")
		})
	}
}

func TestErrorKindsMapToStatusCodes(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{apperr.Validation("reason", "reason is required"), codes.InvalidArgument},
		{apperr.InvalidQuantity("bad"), codes.InvalidArgument},
		{apperr.InsufficientQuantity("20", "25"), codes.FailedPrecondition},
		{apperr.UnsupportedConversion("coil"), codes.FailedPrecondition},
		{apperr.InstanceScrapped("i-1"), codes.FailedPrecondition},
		{apperr.DuplicateCode("A-001"), codes.AlreadyExists},
		{apperr.NotFound("instance", "i-1"), codes.NotFound},
		{apperr.ConcurrencyConflict("i-1", 5), codes.Aborted},
		{apperr.Internal("boom", nil), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(string(apperr.KindOf(tt.err)), func(t *testing.T) {
			client := dial(t, &stubUseCase{err: tt.err})

			_, err := client.GetInstance(context.Background(), &inventoryv1.GetInstanceRequest{InstanceId: "i-1"})

			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestRegisterBatch_ReportsPerItem(t *testing.T) {
	uc := &stubUseCase{results: []dto.ItemResult{
		{Index: 0, Instance: &model.Instance{InstanceCode: "A-COIL-003"}},
		{Index: 1, Err: apperr.DuplicateCode("A-COIL-004")},
	}}
	client := dial(t, uc)

	resp, err := client.RegisterBatch(context.Background(), &inventoryv1.RegisterBatchRequest{
		Items: []*inventoryv1.RegisterRequest{
			{ProductId: "p", InitialQuantity: "1"},
			{ProductId: "p", InitialQuantity: "oops"},
			{ProductId: "p", InitialQuantity: "2"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, uc.batchInputs, "unparseable item is not handed to the use case")
	assert.Equal(t, int32(1), resp.Succeeded)
	assert.Equal(t, int32(2), resp.Failed)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "A-COIL-003", resp.Results[0].Instance.InstanceCode)
	assert.Equal(t, int32(1), resp.Results[1].Index)
	assert.Equal(t, string(apperr.KindValidation), resp.Results[1].Error.Kind)
	assert.Equal(t, int32(2), resp.Results[2].Index)
	assert.Equal(t, string(apperr.KindDuplicateCode), resp.Results[2].Error.Kind)
}

func TestConvertBatch_HidesInternalDetails(t *testing.T) {
	uc := &stubUseCase{results: []dto.ItemResult{
		{Index: 0, Err: apperr.Internal("db exploded", nil)},
	}}
	client := dial(t, uc)

	resp, err := client.ConvertBatch(context.Background(), &inventoryv1.ConvertBatchRequest{
		Items: []*inventoryv1.ConvertRequest{{SourceInstanceId: "i-1", Weight: "3.5"}},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Failed)
	assert.Equal(t, string(apperr.KindInternal), resp.Results[0].Error.Kind)
	assert.Equal(t, "internal error", resp.Results[0].Error.Message)
	assert.Empty(t, resp.Results[0].Error.Details)
}

func TestListMovements(t *testing.T) {
	to := "branch-b"
	uc := &stubUseCase{movements: []model.Movement{
		{ID: "m-1", InstanceID: "i-1", MovementType: model.MovementRegistration, QuantityAfter: decimal.RequireFromString("10"), InstanceVersion: 1},
		{ID: "m-2", InstanceID: "i-1", MovementType: model.MovementTransfer, QuantityBefore: decimal.RequireFromString("10"), QuantityAfter: decimal.RequireFromString("10"), ToBranchID: &to, InstanceVersion: 2},
	}}
	client := dial(t, uc)

	resp, err := client.ListMovements(context.Background(), &inventoryv1.ListMovementsRequest{InstanceId: "i-1"})

	require.NoError(t, err)
	require.Len(t, resp.Movements, 2)
	assert.Equal(t, "registration", resp.Movements[0].MovementType)
	assert.Equal(t, "10", resp.Movements[0].QuantityAfter)
	assert.Empty(t, resp.Movements[0].ToBranchId)
	assert.Equal(t, "branch-b", resp.Movements[1].ToBranchId)
	assert.Equal(t, int64(2), resp.Movements[1].InstanceVersion)
}

func TestSuggestCode(t *testing.T) {
	client := dial(t, &stubUseCase{})

	resp, err := client.SuggestCode(context.Background(), &inventoryv1.SuggestCodeRequest{ProductId: "p", BranchId: "b"})

	require.NoError(t, err)
	assert.Equal(t, "A-COIL-003", resp.Code)
}
