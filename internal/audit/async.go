package audit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	DefaultQueueSize     = 1024
	DefaultAppendTimeout = 5 * time.Second
)

var (
	ErrQueueFull  = errors.New("movement queue is full")
	ErrSinkClosed = errors.New("movement sink is closed")
)

var droppedMovementsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "inventory_ledger_movements_dropped_total",
		Help: "Movements that could not be handed to the publisher",
	},
)

func init() {
	prometheus.MustRegister(droppedMovementsTotal)
}

// AsyncSink hands movements to next from a single worker, so a slow or
// unreachable broker never holds up the caller. Batches are delivered in the
// order they were queued; a full queue drops the batch.
type AsyncSink struct {
	next    Sink
	timeout time.Duration
	logger  logger.ZapLogger

	mu     sync.RWMutex
	closed bool
	queue  chan []model.Movement
	done   chan struct{}
}

func NewAsyncSink(next Sink, size int, timeout time.Duration, log logger.ZapLogger) *AsyncSink {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if timeout <= 0 {
		timeout = DefaultAppendTimeout
	}
	s := &AsyncSink{
		next:    next,
		timeout: timeout,
		logger:  log,
		queue:   make(chan []model.Movement, size),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *AsyncSink) Append(_ context.Context, movements ...model.Movement) error {
	if len(movements) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrSinkClosed
	}

	select {
	case s.queue <- append([]model.Movement(nil), movements...):
		return nil
	default:
		droppedMovementsTotal.Add(float64(len(movements)))
		return fmt.Errorf("%w: dropped %d movements", ErrQueueFull, len(movements))
	}
}

// Close stops accepting movements and waits until the queued ones were handed on.
func (s *AsyncSink) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
}

func (s *AsyncSink) run() {
	defer close(s.done)
	for batch := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		if err := s.next.Append(ctx, batch...); err != nil {
			droppedMovementsTotal.Add(float64(len(batch)))
			s.logger.Error("failed to publish instance movements",
				zap.Int("movements", len(batch)),
				zap.String("instance_id", batch[0].InstanceID),
				zap.Error(err),
			)
		}
		cancel()
	}
}
