package repository

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/instance"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("instance-repository")

// TracingRepository wraps an instance.Repository with a span per call.
type TracingRepository struct {
	next instance.Repository
}

func NewTracingRepository(next instance.Repository) *TracingRepository {
	return &TracingRepository{next: next}
}

func (r *TracingRepository) Create(ctx context.Context, inst *model.Instance, record instance.Recorder) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("instance.product_id", inst.ProductID),
			attribute.String("instance.branch_id", inst.BranchID),
			attribute.String("instance.code", inst.InstanceCode),
			attribute.String("instance.initial_quantity", inst.InitialQuantity.String()),
		),
	)
	defer span.End()

	err := r.next.Create(ctx, inst, record)
	if err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.String("instance.id", inst.ID))
	return nil
}

func (r *TracingRepository) Get(ctx context.Context, id string) (*model.Instance, error) {
	ctx, span := tracer.Start(ctx, "repository.Get",
		trace.WithAttributes(attribute.String("instance.id", id)),
	)
	defer span.End()

	inst, err := r.next.Get(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	setSnapshot(span, inst)
	return inst, nil
}

func (r *TracingRepository) GetByCode(ctx context.Context, code string) (*model.Instance, error) {
	ctx, span := tracer.Start(ctx, "repository.GetByCode",
		trace.WithAttributes(attribute.String("instance.code", code)),
	)
	defer span.End()

	inst, err := r.next.GetByCode(ctx, code)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	setSnapshot(span, inst)
	return inst, nil
}

func (r *TracingRepository) Update(ctx context.Context, id string, mutate instance.Mutator, record instance.Recorder) (*model.Instance, error) {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(attribute.String("instance.id", id)),
	)
	defer span.End()

	attempts := 0
	inst, err := r.next.Update(ctx, id, func(i *model.Instance) error {
		attempts++
		return mutate(i)
	}, record)
	span.SetAttributes(attribute.Int("update.attempts", attempts))
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	setSnapshot(span, inst)
	return inst, nil
}

func (r *TracingRepository) Split(ctx context.Context, sourceID string, split instance.SplitFunc, record instance.SplitRecorder) (*model.Instance, *model.Instance, error) {
	ctx, span := tracer.Start(ctx, "repository.Split",
		trace.WithAttributes(attribute.String("instance.source_id", sourceID)),
	)
	defer span.End()

	source, produced, err := r.next.Split(ctx, sourceID, split, record)
	if err != nil {
		recordError(span, err)
		return nil, nil, err
	}

	span.SetAttributes(
		attribute.String("instance.produced_id", produced.ID),
		attribute.String("instance.produced_code", produced.InstanceCode),
		attribute.String("instance.source_remaining", source.RemainingQuantity.String()),
	)
	return source, produced, nil
}

func (r *TracingRepository) ListMovements(ctx context.Context, instanceID string) ([]model.Movement, error) {
	ctx, span := tracer.Start(ctx, "repository.ListMovements",
		trace.WithAttributes(attribute.String("instance.id", instanceID)),
	)
	defer span.End()

	movements, err := r.next.ListMovements(ctx, instanceID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("movements.count", len(movements)))
	return movements, nil
}

func (r *TracingRepository) ListCodes(ctx context.Context, productID, branchID, batchTypeID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "repository.ListCodes",
		trace.WithAttributes(
			attribute.String("instance.product_id", productID),
			attribute.String("instance.branch_id", branchID),
			attribute.String("instance.batch_type_id", batchTypeID),
		),
	)
	defer span.End()

	codes, err := r.next.ListCodes(ctx, productID, branchID, batchTypeID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("codes.count", len(codes)))
	return codes, nil
}

func (r *TracingRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.CodeExists",
		trace.WithAttributes(attribute.String("instance.code", code)),
	)
	defer span.End()

	exists, err := r.next.CodeExists(ctx, code)
	if err != nil {
		recordError(span, err)
		return false, err
	}
	span.SetAttributes(attribute.Bool("code.exists", exists))
	return exists, nil
}

func setSnapshot(span trace.Span, inst *model.Instance) {
	span.SetAttributes(
		attribute.String("instance.code", inst.InstanceCode),
		attribute.String("instance.status", string(inst.Status)),
		attribute.String("instance.remaining_quantity", inst.RemainingQuantity.String()),
		attribute.Int64("instance.version", inst.Version),
	)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
