package handler

import (
	"errors"

	inventoryv1 "github.com/fekuna/omnipos-inventory-service/gen/go/omnipos/inventory/v1"
	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func mapInstanceToProto(m *model.Instance) *inventoryv1.Instance {
	if m == nil {
		return nil
	}

	return &inventoryv1.Instance{
		Id:                m.ID,
		ProductId:         m.ProductID,
		BranchId:          m.BranchID,
		BatchTypeId:       m.BatchTypeID,
		InstanceCode:      m.InstanceCode,
		InitialQuantity:   m.InitialQuantity.String(),
		RemainingQuantity: m.RemainingQuantity.String(),
		Status:            string(m.Status),
		Grouped:           m.Grouped,
		SourceInstanceId:  deref(m.SourceInstanceID),
		Attributes:        m.Attributes,
		Version:           m.Version,
		CreatedAt:         timestamppb.New(m.CreatedAt),
		UpdatedAt:         timestamppb.New(m.UpdatedAt),
	}
}

func mapMovementToProto(m *model.Movement) *inventoryv1.Movement {
	if m == nil {
		return nil
	}

	return &inventoryv1.Movement{
		Id:              m.ID,
		InstanceId:      m.InstanceID,
		InstanceCode:    m.InstanceCode,
		ProductId:       m.ProductID,
		MovementType:    string(m.MovementType),
		QuantityBefore:  m.QuantityBefore.String(),
		QuantityAfter:   m.QuantityAfter.String(),
		FromBranchId:    deref(m.FromBranchID),
		ToBranchId:      deref(m.ToBranchID),
		Reason:          m.Reason,
		ReferenceId:     deref(m.ReferenceID),
		Actor:           deref(m.Actor),
		InstanceVersion: m.InstanceVersion,
		CreatedAt:       timestamppb.New(m.CreatedAt),
	}
}

// mapErrorToProto reports a batch item failure. Internal errors lose their
// details like they do on the status path.
func mapErrorToProto(err error) *inventoryv1.Error {
	var e *apperr.Error
	if !errors.As(err, &e) || e.Kind == apperr.KindInternal {
		return &inventoryv1.Error{Kind: string(apperr.KindInternal), Message: "internal error"}
	}
	return &inventoryv1.Error{
		Kind:    string(e.Kind),
		Message: e.Message,
		Details: e.Details,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
