package batchtype

import (
	"sort"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

// Find looks a batch type up by id in a catalog snapshot.
func Find(types []model.BatchType, id string) (*model.BatchType, error) {
	for i := range types {
		if types[i].ID == id {
			bt := types[i]
			return &bt, nil
		}
	}
	return nil, apperr.NotFound("batch type", id)
}

// AppliesTo reports whether bt can be used for products of categoryID.
// A batch type without a category applies everywhere.
func AppliesTo(bt *model.BatchType, categoryID *string) bool {
	if bt.CategoryID == nil {
		return true
	}
	return categoryID != nil && *bt.CategoryID == *categoryID
}

// ActiveFor returns the active batch types usable for categoryID, ordered by
// SortOrder then name.
func ActiveFor(types []model.BatchType, categoryID *string) []model.BatchType {
	out := []model.BatchType{}
	for i := range types {
		if types[i].IsActive && AppliesTo(&types[i], categoryID) {
			out = append(out, types[i])
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].SortOrder != out[b].SortOrder {
			return out[a].SortOrder < out[b].SortOrder
		}
		return out[a].Name < out[b].Name
	})
	return out
}

// DefaultFor picks the batch type used when a registration names none: the
// category's own default, then a global default, then the first active type.
func DefaultFor(types []model.BatchType, categoryID *string) (*model.BatchType, error) {
	active := ActiveFor(types, categoryID)
	if len(active) == 0 {
		return nil, apperr.Validation("batch_type_id", "no active batch type available")
	}

	if categoryID != nil {
		for i := range active {
			if active[i].IsDefault && active[i].CategoryID != nil {
				return &active[i], nil
			}
		}
	}
	for i := range active {
		if active[i].IsDefault && active[i].CategoryID == nil {
			return &active[i], nil
		}
	}
	return &active[0], nil
}

// ConversionTarget returns the batch type a convertible source slits into.
func ConversionTarget(types []model.BatchType, sourceID string) (*model.BatchType, error) {
	source, err := Find(types, sourceID)
	if err != nil {
		return nil, err
	}
	if !source.IsConvertible || source.ConvertsToID == nil {
		return nil, apperr.UnsupportedConversion(source.ID)
	}

	target, err := Find(types, *source.ConvertsToID)
	if err != nil {
		return nil, err
	}
	if !target.IsActive {
		return nil, apperr.UnsupportedConversion(source.ID)
	}
	return target, nil
}
