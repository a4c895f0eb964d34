package batchtype

import (
	"errors"
	"testing"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func bt(id, name string, sort int) model.BatchType {
	return model.BatchType{BaseModel: model.BaseModel{ID: id}, Name: name, IsActive: true, SortOrder: sort}
}

func TestDefaultFor_CategoryDefaultWins(t *testing.T) {
	global := bt("global", "Loose", 1)
	global.IsDefault = true
	steel := bt("steel", "Coil", 2)
	steel.IsDefault = true
	steel.CategoryID = strPtr("cat-steel")

	got, err := DefaultFor([]model.BatchType{global, steel}, strPtr("cat-steel"))

	require.NoError(t, err)
	assert.Equal(t, "steel", got.ID)
}

func TestDefaultFor_GlobalDefault(t *testing.T) {
	first := bt("first", "Alpha", 1)
	global := bt("global", "Loose", 5)
	global.IsDefault = true
	other := bt("other", "Coil", 0)
	other.IsDefault = true
	other.CategoryID = strPtr("cat-other")

	got, err := DefaultFor([]model.BatchType{first, global, other}, strPtr("cat-steel"))

	require.NoError(t, err)
	assert.Equal(t, "global", got.ID)
}

func TestDefaultFor_FirstActiveBySortOrder(t *testing.T) {
	inactive := bt("inactive", "Zero", 0)
	inactive.IsActive = false

	got, err := DefaultFor([]model.BatchType{bt("b", "Beta", 2), inactive, bt("a", "Alpha", 1)}, nil)

	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestDefaultFor_Error_NoneActive(t *testing.T) {
	_, err := DefaultFor(nil, nil)

	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestConversionTarget(t *testing.T) {
	loose := bt("loose", "Loose", 1)
	loose.IsConvertible = true
	loose.ConvertsToID = strPtr("coil")
	coil := bt("coil", "Coil", 2)
	types := []model.BatchType{loose, coil}

	target, err := ConversionTarget(types, "loose")
	require.NoError(t, err)
	assert.Equal(t, "coil", target.ID)

	_, err = ConversionTarget(types, "coil")
	assert.True(t, errors.Is(err, apperr.ErrUnsupportedConversion))

	_, err = ConversionTarget(types, "missing")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestAppliesTo(t *testing.T) {
	scoped := bt("x", "X", 0)
	scoped.CategoryID = strPtr("cat-a")

	assert.True(t, AppliesTo(&scoped, strPtr("cat-a")))
	assert.False(t, AppliesTo(&scoped, strPtr("cat-b")))
	assert.False(t, AppliesTo(&scoped, nil))
	assert.True(t, AppliesTo(&model.BatchType{}, nil))
}
