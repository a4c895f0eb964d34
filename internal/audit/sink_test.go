package audit

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySink_ForInstanceKeepsAppendOrder(t *testing.T) {
	mem := NewMemorySink()

	require.NoError(t, mem.Append(context.Background(),
		model.Movement{ID: "m-1", InstanceID: "i-1", InstanceVersion: 1},
		model.Movement{ID: "m-2", InstanceID: "i-2", InstanceVersion: 1},
	))
	require.NoError(t, mem.Append(context.Background(), model.Movement{ID: "m-3", InstanceID: "i-1", InstanceVersion: 2}))

	got := mem.ForInstance("i-1")
	require.Len(t, got, 2)
	assert.Equal(t, "m-1", got[0].ID)
	assert.Equal(t, "m-3", got[1].ID)
	assert.Empty(t, mem.ForInstance("i-3"))
	assert.Len(t, mem.Movements(), 3)
}
