package service

import (
	"context"
	"iter"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusdesk/portal/internal/core/ports"
	"github.com/campusdesk/portal/internal/core/state"
)

// Record is a flat entity with a unique id and free-text search fields.
type Record[T any] interface {
	RecordID() string
	WithRecordID(id string) T
	SearchFields() []string
}

// Collection is an ordered, id-keyed sequence of records held in one state
// cell. Insertion order is display order. Every applied mutation is flushed
// to the durable store before the call returns.
type Collection[T Record[T]] struct {
	cell *state.Cell[[]T]
	ids  IDGenerator
	log  zerolog.Logger
}

// NewCollection hydrates the collection stored under key, or starts from
// initial.
func NewCollection[T Record[T]](
	ctx context.Context,
	store ports.DurableStore,
	key string,
	initial []T,
	ids IDGenerator,
	log zerolog.Logger,
) *Collection[T] {
	if initial == nil {
		initial = []T{}
	}
	return &Collection[T]{
		cell: state.NewCell(ctx, store, key, initial, log),
		ids:  ids,
		log:  log.With().Str("collection", key).Logger(),
	}
}

// All returns a copy of every record in insertion order.
func (c *Collection[T]) All() []T {
	return slices.Clone(c.cell.Value())
}

func (c *Collection[T]) Len() int {
	return len(c.cell.Value())
}

// Get returns the first record whose id matches.
func (c *Collection[T]) Get(id string) (T, bool) {
	items := c.cell.Value()
	if i := indexOf(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// Create assigns rec a fresh id, appends it and returns the stored record.
// Any id already on rec is ignored.
func (c *Collection[T]) Create(ctx context.Context, rec T) T {
	var created T
	c.cell.Update(ctx, func(prev []T) []T {
		id := c.ids.NewID()
		for indexOf(prev, id) >= 0 {
			id = c.ids.NewID()
		}
		created = rec.WithRecordID(id)

		next := make([]T, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, created)
	})
	c.log.Info().Str("id", created.RecordID()).Msg("record created")
	return created
}

// Update replaces the first record with rec's id. A miss leaves the
// collection untouched and returns false.
func (c *Collection[T]) Update(ctx context.Context, rec T) bool {
	id := rec.RecordID()
	applied := c.cell.Modify(ctx, func(prev []T) ([]T, bool) {
		i := indexOf(prev, id)
		if i < 0 {
			return prev, false
		}
		next := slices.Clone(prev)
		next[i] = rec
		return next, true
	})
	if !applied {
		c.log.Debug().Str("id", id).Msg("update skipped, id not found")
		return false
	}
	c.log.Info().Str("id", id).Msg("record updated")
	return true
}

// Delete removes the first record with id. A miss is a no-op.
func (c *Collection[T]) Delete(ctx context.Context, id string) bool {
	applied := c.cell.Modify(ctx, func(prev []T) ([]T, bool) {
		i := indexOf(prev, id)
		if i < 0 {
			return prev, false
		}
		next := make([]T, 0, len(prev)-1)
		next = append(next, prev[:i]...)
		return append(next, prev[i+1:]...), true
	})
	if !applied {
		c.log.Debug().Str("id", id).Msg("delete skipped, id not found")
		return false
	}
	c.log.Info().Str("id", id).Msg("record deleted")
	return true
}

// Search yields, in insertion order, the records where any search field
// contains term case-insensitively. The view is taken over the collection
// as it is when Search is called; an empty term matches every record.
func (c *Collection[T]) Search(term string) iter.Seq[T] {
	needle := strings.ToLower(term)
	items := c.cell.Value()
	return func(yield func(T) bool) {
		for _, rec := range items {
			if !matches(rec, needle) {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

func matches[T Record[T]](rec T, needle string) bool {
	for _, f := range rec.SearchFields() {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func indexOf[T Record[T]](items []T, id string) int {
	return slices.IndexFunc(items, func(r T) bool { return r.RecordID() == id })
}
