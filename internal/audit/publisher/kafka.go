package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

const EventMovementRecorded = "InstanceMovementRecorded"

// Producer is the subset of broker.KafkaProducer the publisher uses.
type Producer interface {
	Publish(ctx context.Context, key string, value []byte, headers map[string]string) error
}

type MovementEvent struct {
	EventType string         `json:"event_type"`
	Payload   model.Movement `json:"payload"`
}

// KafkaSink publishes each movement keyed by instance id. Publishing happens
// after commit, so consumers order the movements of an instance by
// InstanceVersion rather than by arrival.
type KafkaSink struct {
	producer Producer
}

func NewKafkaSink(producer Producer) *KafkaSink {
	return &KafkaSink{producer: producer}
}

func (s *KafkaSink) Append(ctx context.Context, movements ...model.Movement) error {
	for _, m := range movements {
		value, err := json.Marshal(MovementEvent{EventType: EventMovementRecorded, Payload: m})
		if err != nil {
			return err
		}
		headers := map[string]string{
			"event_type":    EventMovementRecorded,
			"movement_type": string(m.MovementType),
			"version":       strconv.FormatInt(m.InstanceVersion, 10),
		}
		if err := s.producer.Publish(ctx, m.InstanceID, value, headers); err != nil {
			return fmt.Errorf("failed to publish movement %s: %w", m.ID, err)
		}
	}
	return nil
}
