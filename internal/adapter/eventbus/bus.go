// Package eventbus is an in-process domain event bus with a bounded queue
// and a fixed worker pool.
package eventbus

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"fincore/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	DefaultBuffer  = 256
	DefaultWorkers = 4
)

type subscription struct {
	name    string
	handler ports.EventHandler
}

type delivery struct {
	event   string
	sub     subscription
	payload any
	queued  time.Time
}

// Bus implements ports.EventPublisher and ports.EventSubscriber.
type Bus struct {
	mu      sync.RWMutex
	subs    map[string][]subscription
	queue   chan delivery
	closed  bool
	workers int
	wg      sync.WaitGroup
	started atomic.Bool
	dropped atomic.Int64
	log     zerolog.Logger
}

// New creates a bus. Non-positive sizes fall back to the defaults.
func New(buffer, workers int, log zerolog.Logger) *Bus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Bus{
		subs:    make(map[string][]subscription),
		queue:   make(chan delivery, buffer),
		workers: workers,
		log:     log,
	}
}

// Subscribe registers handler under name for event.
func (b *Bus) Subscribe(event, name string, handler ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[event] = append(b.subs[event], subscription{name: name, handler: handler})
	b.log.Debug().Str("event", event).Str("subscriber", name).Msg("event subscriber registered")
}

// Publish queues one delivery per subscriber. It never blocks: when the
// queue is full the delivery is dropped and logged.
func (b *Bus) Publish(event string, payload any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		b.log.Warn().Str("event", event).Msg("event published after bus closed; dropped")
		return
	}

	now := time.Now()
	for _, sub := range b.subs[event] {
		select {
		case b.queue <- delivery{event: event, sub: sub, payload: payload, queued: now}:
		default:
			b.dropped.Add(1)
			b.log.Error().
				Str("event", event).
				Str("subscriber", sub.name).
				Int("buffer", cap(b.queue)).
				Msg("event bus full; delivery dropped")
		}
	}
}

// Start launches the worker pool. Handlers receive a context that survives
// cancellation of ctx so queued deliveries can drain on shutdown.
func (b *Bus) Start(ctx context.Context) {
	if !b.started.CompareAndSwap(false, true) {
		return
	}
	handlerCtx := context.WithoutCancel(ctx)
	for i := 0; i < b.workers; i++ {
		b.wg.Add(1)
		go b.worker(handlerCtx, i)
	}
	b.log.Info().Int("workers", b.workers).Int("buffer", cap(b.queue)).Msg("event bus started")
}

// Close stops accepting events and waits for queued deliveries to finish.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()

	b.wg.Wait()
	b.log.Info().Int64("dropped", b.dropped.Load()).Msg("event bus stopped")
}

// Dropped returns how many deliveries were discarded because the queue was full.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

func (b *Bus) worker(ctx context.Context, id int) {
	defer b.wg.Done()
	for d := range b.queue {
		b.dispatch(ctx, id, d)
	}
}

func (b *Bus) dispatch(ctx context.Context, worker int, d delivery) {
	log := b.log.With().
		Str("event", d.event).
		Str("subscriber", d.sub.name).
		Int("worker", worker).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("panic", fmt.Sprint(r)).Msg("event handler panicked")
		}
	}()

	if err := d.sub.handler(ctx, d.payload); err != nil {
		log.Error().Err(err).Dur("queued_for", time.Since(d.queued)).Msg("event handler failed")
		return
	}
	log.Debug().Dur("latency", time.Since(d.queued)).Msg("event handled")
}
