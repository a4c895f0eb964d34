package model

import (
	"errors"
	"testing"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstance(initial, remaining string) *Instance {
	i := &Instance{
		BaseModel:         BaseModel{ID: "inst-1"},
		InstanceCode:      "A-LOOSE-001",
		InitialQuantity:   decimal.RequireFromString(initial),
		RemainingQuantity: decimal.RequireFromString(remaining),
	}
	i.DeriveStatus()
	return i
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, StatusInStock, newInstance("100", "100").Status)
	assert.Equal(t, StatusDepleted, newInstance("100", "0").Status)
	assert.Equal(t, StatusDepleted, newInstance("0", "0").Status)
}

func TestDeriveStatus_ScrappedIsTerminal(t *testing.T) {
	i := newInstance("10", "5")
	i.Status = StatusScrapped

	i.RemainingQuantity = decimal.Zero
	i.DeriveStatus()

	assert.Equal(t, StatusScrapped, i.Status)
}

func TestValidate_Success(t *testing.T) {
	require.NoError(t, newInstance("100", "25.125").Validate())
}

func TestValidate_Error_RemainingAboveInitial(t *testing.T) {
	err := newInstance("10", "11").Validate()

	assert.True(t, errors.Is(err, apperr.ErrInvalidQuantity))
}

func TestValidate_Error_NegativeInitial(t *testing.T) {
	i := newInstance("0", "0")
	i.InitialQuantity = decimal.RequireFromString("-1")

	assert.True(t, errors.Is(i.Validate(), apperr.ErrInvalidQuantity))
}

func TestValidate_Error_Precision(t *testing.T) {
	err := newInstance("1.2345", "1").Validate()

	assert.True(t, errors.Is(err, apperr.ErrInvalidQuantity))
}

func TestValidate_Error_StatusMismatch(t *testing.T) {
	i := newInstance("10", "5")
	i.Status = StatusDepleted

	assert.Error(t, i.Validate())
}

func TestClone_IsDeep(t *testing.T) {
	src := "src"
	i := newInstance("10", "5")
	i.SourceInstanceID = &src
	i.Attributes = Attributes{"width": "1200mm"}

	c := i.Clone()
	c.Attributes["width"] = "600mm"
	*c.SourceInstanceID = "other"

	assert.Equal(t, "1200mm", i.Attributes["width"])
	assert.Equal(t, "src", *i.SourceInstanceID)
}

func TestAttributes_ScanValue(t *testing.T) {
	a := Attributes{"grade": "A"}
	v, err := a.Value()
	require.NoError(t, err)

	var out Attributes
	require.NoError(t, out.Scan(v))
	assert.Equal(t, a, out)

	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}
