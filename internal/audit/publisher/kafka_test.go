package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	key     string
	value   []byte
	headers map[string]string
}

type fakeProducer struct {
	sent []sent
	err  error
}

func (p *fakeProducer) Publish(_ context.Context, key string, value []byte, headers map[string]string) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, sent{key: key, value: value, headers: headers})
	return nil
}

func TestKafkaSink_PublishesKeyedByInstance(t *testing.T) {
	p := &fakeProducer{}
	sink := NewKafkaSink(p)

	err := sink.Append(context.Background(),
		model.Movement{ID: "m-1", InstanceID: "i-1", MovementType: model.MovementAdjustment, QuantityAfter: decimal.NewFromInt(5), InstanceVersion: 4},
		model.Movement{ID: "m-2", InstanceID: "i-2", MovementType: model.MovementTransfer},
	)

	require.NoError(t, err)
	require.Len(t, p.sent, 2)
	assert.Equal(t, "i-1", p.sent[0].key)
	assert.Equal(t, "adjustment", p.sent[0].headers["movement_type"])
	assert.Equal(t, "4", p.sent[0].headers["version"])

	var event MovementEvent
	require.NoError(t, json.Unmarshal(p.sent[0].value, &event))
	assert.Equal(t, EventMovementRecorded, event.EventType)
	assert.Equal(t, "m-1", event.Payload.ID)
	assert.True(t, event.Payload.QuantityAfter.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, int64(4), event.Payload.InstanceVersion)
}

func TestKafkaSink_Error(t *testing.T) {
	sink := NewKafkaSink(&fakeProducer{err: errors.New("broker down")})

	err := sink.Append(context.Background(), model.Movement{ID: "m-1"})

	assert.ErrorContains(t, err, "broker down")
}
