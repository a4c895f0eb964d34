package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/auth"
	"github.com/fekuna/omnipos-inventory-service/internal/ledger"
	"github.com/fekuna/omnipos-inventory-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	EventOrderCreated = "OrderCreated"

	processedTTL = 24 * time.Hour

	defaultRetryDelay = time.Second
	maxRetryDelay     = 30 * time.Second
)

// MessageReader is the subset of broker.KafkaConsumer the listener reads from.
// An offset is committed only after every item of its message was handled.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Deduplicator remembers which order items were already applied.
type Deduplicator interface {
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

type OrderListener struct {
	consumer   MessageReader
	dedup      Deduplicator
	uc         ledger.UseCase
	logger     logger.ZapLogger
	retryDelay time.Duration
}

func NewOrderListener(consumer MessageReader, dedup Deduplicator, uc ledger.UseCase, logger logger.ZapLogger) *OrderListener {
	return &OrderListener{
		consumer:   consumer,
		dedup:      dedup,
		uc:         uc,
		logger:     logger,
		retryDelay: defaultRetryDelay,
	}
}

func (l *OrderListener) Start(ctx context.Context) {
	l.logger.Info("Starting order event listener")
	defer l.logger.Info("Stopping order event listener")

	for {
		msg, err := l.consumer.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.Error("Failed to fetch kafka message", zap.Error(err))
			if !wait(ctx, l.retryDelay) {
				return
			}
			continue
		}

		if !l.handle(ctx, msg) {
			return
		}
		if err := l.consumer.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.Error("Failed to commit kafka message",
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}

// handle processes msg until it went through without a transient failure.
// Items applied by an earlier try are skipped by the deduplicator. It
// reports false when ctx ended first.
func (l *OrderListener) handle(ctx context.Context, msg kafka.Message) bool {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = l.retryDelay
	b.MaxInterval = maxRetryDelay
	b.Reset()

	for {
		err := l.processMessage(ctx, msg.Value)
		if err == nil {
			return true
		}
		l.logger.Warn("Order event not fully applied, retrying",
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		if !wait(ctx, b.NextBackOff()) {
			return false
		}
	}
}

func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

type OrderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID       string             `json:"id"`
	BranchID string             `json:"branch_id"`
	Items    []OrderItemPayload `json:"items"`
}

// OrderItemPayload names the instance the sold quantity is taken from.
type OrderItemPayload struct {
	InstanceID string          `json:"instance_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// processMessage applies an order event. Events it cannot use and items the
// ledger rejects are logged and dropped. A failure that may clear on retry
// stops processing and is returned, leaving the item unmarked.
func (l *OrderListener) processMessage(ctx context.Context, value []byte) error {
	var event OrderCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return nil
	}

	if event.EventType != EventOrderCreated {
		return nil
	}

	l.logger.Info("Processing OrderCreated event", zap.String("order_id", event.Payload.ID))

	for i, item := range event.Payload.Items {
		key := processedKey(event, i)
		fresh, err := l.dedup.SetIfAbsent(ctx, key, item.InstanceID, processedTTL)
		if err != nil {
			l.logger.Error("Failed to record order item", zap.String("order_id", event.Payload.ID), zap.Error(err))
			return fmt.Errorf("mark order item %d: %w", i, err)
		}
		if !fresh {
			l.logger.Debug("Order item already applied", zap.String("key", key))
			continue
		}

		_, err = l.uc.Deduct(ctx, &dto.DeductInput{
			InstanceID:  item.InstanceID,
			Quantity:    item.Quantity,
			Reason:      "order sale",
			ReferenceID: event.Payload.ID,
			Actor:       auth.SystemActor,
		})
		if err == nil {
			continue
		}

		l.logger.Error("Failed to deduct instance for order item",
			zap.String("order_id", event.Payload.ID),
			zap.String("instance_id", item.InstanceID),
			zap.Error(err),
		)
		switch apperr.KindOf(err) {
		case apperr.KindConcurrencyConflict, apperr.KindInternal:
			if derr := l.dedup.Delete(ctx, key); derr != nil {
				l.logger.Warn("Failed to release order item marker", zap.String("key", key), zap.Error(derr))
			}
			return fmt.Errorf("deduct order item %d: %w", i, err)
		}
	}
	return nil
}

func processedKey(event OrderCreatedEvent, index int) string {
	id := event.EventID
	if id == "" {
		id = event.Payload.ID
	}
	return fmt.Sprintf("inventory:order_event:%s:%d", id, index)
}
