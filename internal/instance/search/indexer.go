package search

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

const DefaultIndex = "inventory-instances"

// DocumentIndexer is the subset of search.Client the indexer uses.
type DocumentIndexer interface {
	IndexDocument(ctx context.Context, index, id string, version int64, doc interface{}) error
}

// Document is the searchable projection of an instance.
type Document struct {
	ID                string            `json:"id"`
	ProductID         string            `json:"product_id"`
	BranchID          string            `json:"branch_id"`
	BatchTypeID       string            `json:"batch_type_id"`
	InstanceCode      string            `json:"instance_code"`
	InitialQuantity   float64           `json:"initial_quantity"`
	RemainingQuantity float64           `json:"remaining_quantity"`
	Status            string            `json:"status"`
	Grouped           bool              `json:"grouped"`
	SourceInstanceID  string            `json:"source_instance_id,omitempty"`
	Attributes        map[string]string `json:"attributes,omitempty"`
	Version           int64             `json:"version"`
	UpdatedAt         string            `json:"updated_at"`
}

func NewDocument(inst *model.Instance) Document {
	doc := Document{
		ID:                inst.ID,
		ProductID:         inst.ProductID,
		BranchID:          inst.BranchID,
		BatchTypeID:       inst.BatchTypeID,
		InstanceCode:      inst.InstanceCode,
		InitialQuantity:   inst.InitialQuantity.InexactFloat64(),
		RemainingQuantity: inst.RemainingQuantity.InexactFloat64(),
		Status:            string(inst.Status),
		Grouped:           inst.Grouped,
		Attributes:        inst.Attributes,
		Version:           inst.Version,
		UpdatedAt:         inst.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	if inst.SourceInstanceID != nil {
		doc.SourceInstanceID = *inst.SourceInstanceID
	}
	return doc
}

// ElasticIndexer keeps the instance search index in step with the store.
type ElasticIndexer struct {
	client DocumentIndexer
	index  string
}

func NewElasticIndexer(client DocumentIndexer, index string) *ElasticIndexer {
	if index == "" {
		index = DefaultIndex
	}
	return &ElasticIndexer{client: client, index: index}
}

// IndexInstance writes the snapshot versioned by the instance version, so an
// older snapshot arriving late is ignored.
func (i *ElasticIndexer) IndexInstance(ctx context.Context, inst *model.Instance) error {
	return i.client.IndexDocument(ctx, i.index, inst.ID, inst.Version, NewDocument(inst))
}
