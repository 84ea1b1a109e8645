// Package guard wraps a DurableStore backend with key namespacing, a circuit
// breaker and store metrics.
package guard

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
	"github.com/campusdesk/portal/internal/pkg/metrics"
)

// Store namespaces every key as "<namespace>:<key>" and routes calls through
// an optional circuit breaker. A missing key is not a backend failure and
// never counts towards tripping the breaker.
type Store struct {
	inner     ports.DurableStore
	namespace string
	cb        *gobreaker.CircuitBreaker
}

var _ ports.DurableStore = (*Store)(nil)

// New returns a guarded store. cb may be nil to call the backend directly.
func New(inner ports.DurableStore, namespace string, cb *gobreaker.CircuitBreaker) *Store {
	return &Store{inner: inner, namespace: namespace, cb: cb}
}

// NewCircuitBreaker builds the breaker used in front of the durable store.
// It opens after three consecutive backend failures.
func NewCircuitBreaker(name string, timeout time.Duration, log zerolog.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrKeyNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.StoreCircuitState.Set(float64(to))
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("durable store circuit state changed")
		},
	})
}

func (s *Store) key(k string) string {
	if s.namespace == "" {
		return k
	}
	return s.namespace + ":" + k
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.run("get", func() error {
		v, err := s.inner.Get(ctx, s.key(key))
		value = v
		return err
	})
	return value, err
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.run("set", func() error {
		return s.inner.Set(ctx, s.key(key), value)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.run("delete", func() error {
		return s.inner.Delete(ctx, s.key(key))
	})
}

// Ping reports backend reachability, bypassing the breaker so readiness
// probes see the real backend state.
func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.inner.(ports.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (s *Store) run(op string, fn func() error) error {
	start := time.Now()
	defer func() {
		metrics.StoreOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	var err error
	if s.cb == nil {
		err = fn()
	} else {
		_, err = s.cb.Execute(func() (interface{}, error) {
			return nil, fn()
		})
	}

	metrics.StoreOperationsTotal.WithLabelValues(op, result(err)).Inc()
	return err
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrKeyNotFound):
		return "not_found"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "open_circuit"
	default:
		return "error"
	}
}
