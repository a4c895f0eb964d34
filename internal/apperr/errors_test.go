package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesByKind(t *testing.T) {
	err := DuplicateCode("A-COIL-001")

	assert.True(t, errors.Is(err, ErrDuplicateCode))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("register item 2: %w", InstanceScrapped("abc"))

	assert.True(t, errors.Is(err, ErrInstanceScrapped))
	assert.Equal(t, KindInstanceScrapped, KindOf(err))
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestError_Message(t *testing.T) {
	err := InsufficientQuantity("20", "25")

	assert.Equal(t, "InsufficientQuantityError: insufficient quantity available (available: 20, requested: 25)", err.Error())
	assert.Equal(t, "NotFoundError: instance not found (id: x)", NotFound("instance", "x").Error())
}
