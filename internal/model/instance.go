package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/shopspring/decimal"
)

// QuantityScale is the number of decimal places quantities are kept at.
const QuantityScale = 3

type InstanceStatus string

const (
	StatusInStock  InstanceStatus = "in_stock"
	StatusDepleted InstanceStatus = "depleted"
	StatusScrapped InstanceStatus = "scrapped"
)

// Instance is a single uniquely coded stock unit of a product held at a branch.
type Instance struct {
	BaseModel
	ProductID         string          `db:"product_id" json:"product_id"`
	BranchID          string          `db:"branch_id" json:"branch_id"`
	BatchTypeID       string          `db:"batch_type_id" json:"batch_type_id"`
	InstanceCode      string          `db:"instance_code" json:"instance_code"`
	InitialQuantity   decimal.Decimal `db:"initial_quantity" json:"initial_quantity"`
	RemainingQuantity decimal.Decimal `db:"remaining_quantity" json:"remaining_quantity"`
	Status            InstanceStatus  `db:"status" json:"status"`
	Grouped           bool            `db:"grouped" json:"grouped"`
	SourceInstanceID  *string         `db:"source_instance_id" json:"source_instance_id,omitempty"`
	Attributes        Attributes      `db:"attributes" json:"attributes,omitempty"`
	Version           int64           `db:"version" json:"version"`
}

func (i *Instance) IsScrapped() bool {
	return i.Status == StatusScrapped
}

// DeriveStatus recomputes the status from the remaining quantity. A scrapped
// instance stays scrapped.
func (i *Instance) DeriveStatus() {
	if i.Status == StatusScrapped {
		return
	}
	if i.RemainingQuantity.IsZero() {
		i.Status = StatusDepleted
	} else {
		i.Status = StatusInStock
	}
}

// Validate checks the per-instance invariants.
func (i *Instance) Validate() error {
	if i.InstanceCode == "" {
		return apperr.Validation("instance_code", "instance code is required")
	}
	if i.InitialQuantity.IsNegative() {
		return apperr.InvalidQuantity("initial quantity %s is negative", i.InitialQuantity)
	}
	if i.RemainingQuantity.IsNegative() || i.RemainingQuantity.GreaterThan(i.InitialQuantity) {
		return apperr.InvalidQuantity("remaining quantity %s outside [0, %s]", i.RemainingQuantity, i.InitialQuantity)
	}
	if !HasQuantityScale(i.InitialQuantity) || !HasQuantityScale(i.RemainingQuantity) {
		return apperr.InvalidQuantity("quantities are limited to %d decimal places", QuantityScale)
	}

	switch i.Status {
	case StatusScrapped:
	case StatusDepleted:
		if !i.RemainingQuantity.IsZero() {
			return apperr.New(apperr.KindInternal, "depleted instance has remaining quantity", i.ID)
		}
	case StatusInStock:
		if i.RemainingQuantity.IsZero() {
			return apperr.New(apperr.KindInternal, "in-stock instance has no remaining quantity", i.ID)
		}
	default:
		return apperr.Validation("status", fmt.Sprintf("unknown status %q", i.Status))
	}
	return nil
}

// Clone returns a deep copy safe to mutate.
func (i *Instance) Clone() *Instance {
	c := *i
	if i.SourceInstanceID != nil {
		s := *i.SourceInstanceID
		c.SourceInstanceID = &s
	}
	c.Attributes = i.Attributes.Clone()
	return &c
}

// HasQuantityScale reports whether q fits in QuantityScale decimal places.
func HasQuantityScale(q decimal.Decimal) bool {
	return q.Equal(q.Round(QuantityScale))
}

// Attributes are free-form descriptive properties of an instance, stored as JSON.
type Attributes map[string]string

func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	c := make(Attributes, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Equal treats nil and empty attributes as the same.
func (a Attributes) Equal(b Attributes) bool {
	return maps.Equal(a, b)
}

func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

func (a *Attributes) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("attributes: unsupported type %T", src)
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	if len(m) == 0 {
		*a = nil
		return nil
	}
	*a = m
	return nil
}
