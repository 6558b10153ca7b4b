package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"
	"fincore/pkg/apperror"

	"github.com/rs/zerolog"
)

type circuit struct {
	state         domain.BreakerState
	failures      int
	lastFailureAt time.Time
	threshold     int
	resetAfter    time.Duration
	probing       bool
}

// CircuitBreakerService implements ports.CircuitBreaker with one circuit per key.
// State transitions are evaluated lazily when a call arrives.
type CircuitBreakerService struct {
	mu       sync.Mutex
	circuits map[string]*circuit
	observer ports.BreakerObserver
	now      func() time.Time
	log      zerolog.Logger
}

// NewCircuitBreakerService creates a breaker registry. observer may be nil.
func NewCircuitBreakerService(observer ports.BreakerObserver, log zerolog.Logger) *CircuitBreakerService {
	return &CircuitBreakerService{
		circuits: make(map[string]*circuit),
		observer: observer,
		now:      time.Now,
		log:      log,
	}
}

// Execute runs fn unless the circuit for key is open. While half-open a single
// probe call is admitted; concurrent callers fail fast until it finishes.
func (s *CircuitBreakerService) Execute(ctx context.Context, key string, fn func(ctx context.Context) error, opts ports.BreakerOptions) (err error) {
	probe, err := s.acquire(key, opts)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			s.record(key, probe, fmt.Errorf("panic: %v", r))
			panic(r)
		}
		s.record(key, probe, err)
	}()

	return fn(ctx)
}

// ExecuteWith runs fn through cb and returns its value.
func ExecuteWith[T any](ctx context.Context, cb ports.CircuitBreaker, key string, fn func(ctx context.Context) (T, error), opts ports.BreakerOptions) (T, error) {
	var out T
	err := cb.Execute(ctx, key, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	}, opts)
	return out, err
}

// GetState returns a snapshot of the circuit for key. Unknown keys report closed.
func (s *CircuitBreakerService) GetState(key string) domain.BreakerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.circuits[key]
	if !ok {
		d := ports.DefaultBreakerOptions()
		return domain.BreakerSnapshot{Key: key, State: domain.BreakerClosed, Threshold: d.FailureThreshold, ResetAfter: d.ResetAfter}
	}
	return snapshot(key, c)
}

// States returns snapshots of every known circuit ordered by key.
func (s *CircuitBreakerService) States() []domain.BreakerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.BreakerSnapshot, 0, len(s.circuits))
	for key, c := range s.circuits {
		out = append(out, snapshot(key, c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// acquire admits a call and reports whether it is the half-open probe.
func (s *CircuitBreakerService) acquire(key string, opts ports.BreakerOptions) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.circuitFor(key, opts)
	switch c.state {
	case domain.BreakerOpen:
		if s.now().Sub(c.lastFailureAt) < c.resetAfter {
			return false, apperror.ErrProviderUnavailable(key)
		}
		s.transition(key, c, domain.BreakerHalfOpen)
		c.probing = true
		return true, nil
	case domain.BreakerHalfOpen:
		if c.probing {
			return false, apperror.ErrProviderUnavailable(key)
		}
		c.probing = true
		return true, nil
	}
	return false, nil
}

// record applies the result of a call. Only the probe decides the half-open
// outcome; a call admitted while closed that finishes after the circuit left
// the closed state changes nothing.
func (s *CircuitBreakerService) record(key string, probe bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.circuits[key]
	if probe {
		c.probing = false
		if err == nil {
			c.failures = 0
			s.transition(key, c, domain.BreakerClosed)
			return
		}
		c.failures++
		c.lastFailureAt = s.now()
		s.transition(key, c, domain.BreakerOpen)
		return
	}

	if c.state != domain.BreakerClosed {
		return
	}
	if err == nil {
		c.failures = 0
		return
	}
	c.failures++
	c.lastFailureAt = s.now()
	if c.failures >= c.threshold {
		s.transition(key, c, domain.BreakerOpen)
	}
}

func (s *CircuitBreakerService) circuitFor(key string, opts ports.BreakerOptions) *circuit {
	d := ports.DefaultBreakerOptions()
	if opts.FailureThreshold <= 0 {
		opts.FailureThreshold = d.FailureThreshold
	}
	if opts.ResetAfter <= 0 {
		opts.ResetAfter = d.ResetAfter
	}

	c, ok := s.circuits[key]
	if !ok {
		c = &circuit{state: domain.BreakerClosed}
		s.circuits[key] = c
	}
	c.threshold = opts.FailureThreshold
	c.resetAfter = opts.ResetAfter
	return c
}

// transition must be called with s.mu held.
func (s *CircuitBreakerService) transition(key string, c *circuit, to domain.BreakerState) {
	from := c.state
	c.state = to

	event := s.log.Info()
	if to == domain.BreakerOpen {
		event = s.log.Warn()
	}
	event.Str("breaker", key).
		Str("from", string(from)).
		Str("to", string(to)).
		Int("failures", c.failures).
		Msg("circuit breaker state change")

	if s.observer != nil {
		s.observer.OnTransition(key, from, to)
	}
}

func snapshot(key string, c *circuit) domain.BreakerSnapshot {
	snap := domain.BreakerSnapshot{
		Key:        key,
		State:      c.state,
		Failures:   c.failures,
		Threshold:  c.threshold,
		ResetAfter: c.resetAfter,
	}
	if !c.lastFailureAt.IsZero() {
		t := c.lastFailureAt
		snap.LastFailureAt = &t
	}
	return snap
}
