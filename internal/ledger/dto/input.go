package dto

import (
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/shopspring/decimal"
)

type RegisterInput struct {
	ProductID       string
	BranchID        string
	BatchTypeID     string // empty picks the default batch type of the product's category
	InstanceCode    string // empty asks the code generator when Grouped
	InitialQuantity decimal.Decimal
	Grouped         bool
	Attributes      map[string]string
	Actor           string
}

type AdjustInput struct {
	InstanceID  string
	NewQuantity decimal.Decimal
	Reason      string
	Actor       string
}

type TransferInput struct {
	InstanceID string
	ToBranchID string
	Notes      string
	Actor      string
}

type ConvertInput struct {
	SourceInstanceID string
	NewInstanceCode  string
	Weight           decimal.Decimal
	Attributes       map[string]string
	Actor            string
}

type DeductInput struct {
	InstanceID  string
	Quantity    decimal.Decimal
	Reason      string
	ReferenceID string
	Actor       string
}

type ScrapInput struct {
	InstanceID string
	Reason     string
	Actor      string
}

type SuggestCodeInput struct {
	ProductID   string
	BranchID    string
	BatchTypeID string
}

type ConversionResult struct {
	Source   *model.Instance `json:"source"`
	Produced *model.Instance `json:"produced"`
}

// ItemResult reports the outcome of one item of a batch submission.
type ItemResult struct {
	Index    int
	Instance *model.Instance
	Source   *model.Instance // set for conversions
	Err      error
}

func (r ItemResult) OK() bool {
	return r.Err == nil
}
