package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingSink holds every Append until its context is done or release is closed.
type blockingSink struct {
	release chan struct{}
	entered chan struct{}
}

func newBlockingSink() *blockingSink {
	return &blockingSink{release: make(chan struct{}), entered: make(chan struct{}, 16)}
}

func (b *blockingSink) Append(ctx context.Context, _ ...model.Movement) error {
	b.entered <- struct{}{}
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestAsyncSink_DeliversInQueueOrder(t *testing.T) {
	mem := NewMemorySink()
	s := NewAsyncSink(mem, 8, time.Second, logger.NewNop())

	for _, id := range []string{"m-1", "m-2", "m-3"} {
		require.NoError(t, s.Append(context.Background(), model.Movement{ID: id, InstanceID: "i-1"}))
	}
	s.Close()

	got := mem.ForInstance("i-1")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"m-1", "m-2", "m-3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestAsyncSink_BlockedPublisherDoesNotBlockCaller(t *testing.T) {
	next := newBlockingSink()
	s := NewAsyncSink(next, 1, time.Minute, logger.NewNop())
	defer func() {
		close(next.release)
		s.Close()
	}()

	require.NoError(t, s.Append(context.Background(), model.Movement{ID: "m-1"}))
	<-next.entered

	done := make(chan error, 1)
	go func() {
		assert.NoError(t, s.Append(context.Background(), model.Movement{ID: "m-2"}))
		done <- s.Append(context.Background(), model.Movement{ID: "m-3"})
	}()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, ErrQueueFull))
	case <-time.After(time.Second):
		t.Fatal("Append blocked behind a stuck publisher")
	}
}

func TestAsyncSink_TimesOutStuckPublisher(t *testing.T) {
	next := newBlockingSink()
	s := NewAsyncSink(next, 4, 20*time.Millisecond, logger.NewNop())

	require.NoError(t, s.Append(context.Background(), model.Movement{ID: "m-1"}))
	require.NoError(t, s.Append(context.Background(), model.Movement{ID: "m-2"}))

	closed := make(chan struct{})
	go func() {
		s.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close waited on a publisher past its timeout")
	}
	assert.Len(t, next.entered, 2)
}

func TestAsyncSink_Error_AppendAfterClose(t *testing.T) {
	s := NewAsyncSink(NewMemorySink(), 1, time.Second, logger.NewNop())
	s.Close()

	err := s.Append(context.Background(), model.Movement{ID: "m-1"})

	assert.True(t, errors.Is(err, ErrSinkClosed))
	assert.NoError(t, s.Append(context.Background()))
}
