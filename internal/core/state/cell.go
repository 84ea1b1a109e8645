// Package state keeps in-memory values synchronised with a durable
// key-value store.
//
// A Cell hydrates once from its key, serves reads from memory and writes
// every change straight through. Persistence is best effort: a value that
// cannot be read or decoded falls back to the initial value, and a write
// that fails is logged while the in-memory value stays authoritative.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
)

const writeTimeout = 5 * time.Second

// Cell is one named slot of the durable store.
type Cell[T any] struct {
	mu    sync.Mutex
	store ports.DurableStore
	key   string
	value T
	log   zerolog.Logger
}

// NewCell reads key from store and returns a cell holding the stored value,
// or initial when the key is absent or unparseable. Nothing is written until
// the first mutation.
func NewCell[T any](ctx context.Context, store ports.DurableStore, key string, initial T, log zerolog.Logger) *Cell[T] {
	c := &Cell[T]{
		store: store,
		key:   key,
		value: initial,
		log:   log.With().Str("key", key).Logger(),
	}

	raw, err := store.Get(ctx, key)
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
		c.log.Debug().Msg("no stored value, using initial")
		return c
	case err != nil:
		c.log.Warn().Err(err).Msg("durable read failed, using initial")
		return c
	}

	var stored T
	if err := json.Unmarshal(raw, &stored); err != nil {
		c.log.Warn().Err(err).Msg("stored value unparseable, using initial")
		return c
	}
	c.value = stored
	return c
}

// Key returns the durable key backing the cell.
func (c *Cell[T]) Key() string { return c.key }

// Value returns the current in-memory value.
func (c *Cell[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value and flushes it.
func (c *Cell[T]) Set(ctx context.Context, v T) {
	c.Modify(ctx, func(T) (T, bool) { return v, true })
}

// Update derives the next value from the previous one and flushes it.
func (c *Cell[T]) Update(ctx context.Context, fn func(prev T) T) {
	c.Modify(ctx, func(prev T) (T, bool) { return fn(prev), true })
}

// Modify runs fn against the current value. When fn reports no change the
// value is kept and nothing is written. fn must not retain or mutate prev
// in place; it runs under the cell lock and must not call back into the
// cell. Modify reports whether a change was applied.
func (c *Cell[T]) Modify(ctx context.Context, fn func(prev T) (T, bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, changed := fn(c.value)
	if !changed {
		return false
	}
	c.value = next
	c.flush(ctx)
	return true
}

// Clear resets the in-memory value to zero and removes the key from the
// store.
func (c *Cell[T]) Clear(ctx context.Context, zero T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = zero

	wctx, cancel := writeContext(ctx)
	defer cancel()
	if err := c.store.Delete(wctx, c.key); err != nil {
		c.log.Warn().Err(err).Msg("durable delete failed, value cleared in memory only")
	}
}

func (c *Cell[T]) flush(ctx context.Context) {
	raw, err := json.Marshal(c.value)
	if err != nil {
		c.log.Warn().Err(err).Msg("value not serialisable, kept in memory only")
		return
	}

	wctx, cancel := writeContext(ctx)
	defer cancel()
	if err := c.store.Set(wctx, c.key, raw); err != nil {
		c.log.Warn().Err(err).Msg("durable write failed, kept in memory only")
	}
}

// writeContext detaches a durable write from the caller's cancellation. Once
// memory has changed the write must still reach the store, bounded by
// writeTimeout.
func writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
}
