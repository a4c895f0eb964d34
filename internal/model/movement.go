package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementType string

const (
	MovementRegistration  MovementType = "registration"
	MovementAdjustment    MovementType = "adjustment"
	MovementTransfer      MovementType = "transfer"
	MovementConversionOut MovementType = "conversion_out"
	MovementConversionIn  MovementType = "conversion_in"
	MovementDeduction     MovementType = "deduction"
	MovementScrap         MovementType = "scrap"
)

// Movement is an audit record of one committed change to an instance. It is
// written together with the change, and InstanceVersion is the instance
// version the change produced, so the movements of one instance form a chain.
type Movement struct {
	ID              string          `db:"id" json:"id"`
	InstanceID      string          `db:"instance_id" json:"instance_id"`
	InstanceCode    string          `db:"instance_code" json:"instance_code"`
	ProductID       string          `db:"product_id" json:"product_id"`
	MovementType    MovementType    `db:"movement_type" json:"movement_type"`
	QuantityBefore  decimal.Decimal `db:"quantity_before" json:"quantity_before"`
	QuantityAfter   decimal.Decimal `db:"quantity_after" json:"quantity_after"`
	FromBranchID    *string         `db:"from_branch_id" json:"from_branch_id,omitempty"`
	ToBranchID      *string         `db:"to_branch_id" json:"to_branch_id,omitempty"`
	Reason          string          `db:"reason" json:"reason"`
	ReferenceID     *string         `db:"reference_id" json:"reference_id,omitempty"`
	Actor           *string         `db:"actor" json:"actor,omitempty"`
	InstanceVersion int64           `db:"instance_version" json:"instance_version"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}
