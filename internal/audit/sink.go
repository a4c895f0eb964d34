package audit

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

// Sink receives movements after the change they describe has been committed
// together with them. Append must return once ctx is done.
type Sink interface {
	Append(ctx context.Context, movements ...model.Movement) error
}

// MemorySink keeps movements in memory.
type MemorySink struct {
	mu        sync.Mutex
	movements []model.Movement
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Append(_ context.Context, movements ...model.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movements = append(s.movements, movements...)
	return nil
}

// Movements returns a copy of everything appended so far.
func (s *MemorySink) Movements() []model.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Movement(nil), s.movements...)
}

// ForInstance returns the movements of one instance in append order.
func (s *MemorySink) ForInstance(instanceID string) []model.Movement {
	out := []model.Movement{}
	for _, m := range s.Movements() {
		if m.InstanceID == instanceID {
			out = append(out, m)
		}
	}
	return out
}
