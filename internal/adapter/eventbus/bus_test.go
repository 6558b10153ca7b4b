package eventbus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversToEverySubscriber(t *testing.T) {
	bus := New(16, 2, zerolog.Nop())

	var mu sync.Mutex
	got := map[string]any{}
	record := func(name string) func(context.Context, any) error {
		return func(_ context.Context, payload any) error {
			mu.Lock()
			defer mu.Unlock()
			got[name] = payload
			return nil
		}
	}
	bus.Subscribe("domain.payment.completed", "a", record("a"))
	bus.Subscribe("domain.payment.completed", "b", record("b"))
	bus.Subscribe("domain.other", "c", record("c"))

	bus.Start(context.Background())
	bus.Publish("domain.payment.completed", "pay_1")
	bus.Close()

	assert.Equal(t, map[string]any{"a": "pay_1", "b": "pay_1"}, got)
}

func TestBus_HandlerFailuresAreIsolated(t *testing.T) {
	bus := New(16, 1, zerolog.Nop())
	var ok atomic.Int32

	bus.Subscribe("evt", "panics", func(context.Context, any) error { panic("boom") })
	bus.Subscribe("evt", "errors", func(context.Context, any) error { return errors.New("fail") })
	bus.Subscribe("evt", "works", func(context.Context, any) error {
		ok.Add(1)
		return nil
	})

	bus.Start(context.Background())
	bus.Publish("evt", nil)
	bus.Publish("evt", nil)
	bus.Close()

	assert.Equal(t, int32(2), ok.Load())
}

func TestBus_DropsWhenFull(t *testing.T) {
	bus := New(1, 1, zerolog.Nop())
	var handled atomic.Int32
	bus.Subscribe("evt", "count", func(context.Context, any) error {
		handled.Add(1)
		return nil
	})

	// Not started yet, so the single slot fills and the rest are dropped.
	bus.Publish("evt", 1)
	bus.Publish("evt", 2)
	bus.Publish("evt", 3)
	assert.Equal(t, int64(2), bus.Dropped())

	bus.Start(context.Background())
	bus.Close()
	assert.Equal(t, int32(1), handled.Load())
}

func TestBus_DrainsAfterContextCancel(t *testing.T) {
	bus := New(8, 1, zerolog.Nop())
	var sawCanceled atomic.Bool
	bus.Subscribe("evt", "ctx", func(ctx context.Context, _ any) error {
		if ctx.Err() != nil {
			sawCanceled.Store(true)
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	bus.Publish("evt", nil)
	cancel()
	bus.Start(ctx)
	bus.Close()

	assert.False(t, sawCanceled.Load())
}

func TestBus_PublishAfterCloseIsSafe(t *testing.T) {
	bus := New(4, 1, zerolog.Nop())
	bus.Subscribe("evt", "x", func(context.Context, any) error { return nil })
	bus.Start(context.Background())
	bus.Close()

	assert.NotPanics(t, func() { bus.Publish("evt", nil) })
	assert.NotPanics(t, bus.Close)
}

func TestNew_Defaults(t *testing.T) {
	bus := New(0, 0, zerolog.Nop())
	assert.Equal(t, DefaultBuffer, cap(bus.queue))
	assert.Equal(t, DefaultWorkers, bus.workers)
}
