package state

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusdesk/portal/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stub store with error injection
// ---------------------------------------------------------------------------

type stubStore struct {
	data      map[string][]byte
	getErr    error
	setErr    error
	deleteErr error
	sets      int
	deletes   int
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string][]byte)}
}

func (s *stubStore) Get(_ context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return v, nil
}

func (s *stubStore) Set(ctx context.Context, key string, value []byte) error {
	s.sets++
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *stubStore) Delete(ctx context.Context, key string) error {
	s.deletes++
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.data, key)
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestNewCell_UsesInitialWhenAbsent(t *testing.T) {
	store := newStubStore()
	c := NewCell(context.Background(), store, "employees", []string{"seed"}, zerolog.Nop())

	if got := c.Value(); len(got) != 1 || got[0] != "seed" {
		t.Fatalf("expected initial value, got %v", got)
	}
	if store.sets != 0 {
		t.Fatalf("initial value must not be written back, got %d writes", store.sets)
	}
}

func TestNewCell_HydratesStoredValue(t *testing.T) {
	store := newStubStore()
	store.data["students"] = []byte(`["a","b"]`)

	c := NewCell(context.Background(), store, "students", []string{"seed"}, zerolog.Nop())
	got := c.Value()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected stored value, got %v", got)
	}
}

func TestNewCell_UnparseableFallsBackToInitial(t *testing.T) {
	store := newStubStore()
	store.data["students"] = []byte(`{not json`)

	c := NewCell(context.Background(), store, "students", []string{"seed"}, zerolog.Nop())
	if got := c.Value(); len(got) != 1 || got[0] != "seed" {
		t.Fatalf("expected fallback to initial, got %v", got)
	}
}

func TestNewCell_ReadErrorFallsBackToInitial(t *testing.T) {
	store := newStubStore()
	store.getErr = errors.New("storage disabled")

	c := NewCell(context.Background(), store, "students", 7, zerolog.Nop())
	if c.Value() != 7 {
		t.Fatalf("expected initial 7, got %d", c.Value())
	}
}

func TestCell_SetWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()
	c := NewCell(ctx, store, "counter", 0, zerolog.Nop())

	c.Set(ctx, 5)
	if c.Value() != 5 {
		t.Fatalf("expected 5 in memory, got %d", c.Value())
	}
	if string(store.data["counter"]) != "5" {
		t.Fatalf("expected write-through, got %q", store.data["counter"])
	}
}

func TestCell_UpdateUsesPreviousValue(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()
	c := NewCell(ctx, store, "counter", 1, zerolog.Nop())

	c.Update(ctx, func(prev int) int { return prev + 1 })
	c.Update(ctx, func(prev int) int { return prev * 10 })

	if c.Value() != 20 {
		t.Fatalf("expected 20, got %d", c.Value())
	}
	if store.sets != 2 {
		t.Fatalf("expected one flush per update, got %d", store.sets)
	}
}

func TestCell_ModifyWithoutChangeSkipsWrite(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()
	c := NewCell(ctx, store, "counter", 3, zerolog.Nop())

	applied := c.Modify(ctx, func(prev int) (int, bool) { return prev, false })
	if applied {
		t.Fatalf("expected Modify to report no change")
	}
	if store.sets != 0 {
		t.Fatalf("expected no write, got %d", store.sets)
	}
}

func TestCell_WriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()
	store.setErr = errors.New("quota exceeded")
	c := NewCell(ctx, store, "counter", 0, zerolog.Nop())

	c.Set(ctx, 42)

	if c.Value() != 42 {
		t.Fatalf("expected in-memory value 42 after failed write, got %d", c.Value())
	}
	if _, ok := store.data["counter"]; ok {
		t.Fatalf("expected nothing persisted")
	}
}

func TestCell_ClearRemovesKey(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()
	store.data["currentUser"] = []byte(`{"username":"admin"}`)

	c := NewCell[*domain.User](ctx, store, "currentUser", nil, zerolog.Nop())
	if c.Value() == nil || c.Value().Username != "admin" {
		t.Fatalf("expected hydrated user, got %+v", c.Value())
	}

	c.Clear(ctx, nil)
	if c.Value() != nil {
		t.Fatalf("expected nil after clear")
	}
	if _, ok := store.data["currentUser"]; ok {
		t.Fatalf("expected key removed from store")
	}
}

func TestCell_ClearDeleteFailureStillClearsMemory(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()
	store.deleteErr = errors.New("storage disabled")
	c := NewCell(ctx, store, "k", "v", zerolog.Nop())

	c.Clear(ctx, "")
	if c.Value() != "" {
		t.Fatalf("expected memory cleared, got %q", c.Value())
	}
}

func TestCell_RoundTripAcrossReload(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()

	first := NewCell(ctx, store, "students", []domain.Student{}, zerolog.Nop())
	first.Set(ctx, []domain.Student{
		{ID: "1", Name: "A", Year: 2, GPA: 3.1},
		{ID: "2", Name: "B", Year: 4, GPA: 3.9},
	})

	reloaded := NewCell(ctx, store, "students", []domain.Student{}, zerolog.Nop())
	got := reloaded.Value()
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" || got[1].GPA != 3.9 {
		t.Fatalf("reload mismatch: %+v", got)
	}
}

func TestCell_WriteSurvivesCancelledCaller(t *testing.T) {
	store := newStubStore()
	c := NewCell(context.Background(), store, "employees", []string{}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Set(ctx, []string{"1"})

	reloaded := NewCell(context.Background(), store, "employees", []string{}, zerolog.Nop())
	if got := reloaded.Value(); len(got) != 1 || got[0] != "1" {
		t.Fatalf("expected write to reach the store, got %v", got)
	}
}

func TestCell_ClearSurvivesCancelledCaller(t *testing.T) {
	store := newStubStore()
	c := NewCell(context.Background(), store, "currentUser", "", zerolog.Nop())
	c.Set(context.Background(), "admin")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Clear(ctx, "")

	if _, ok := store.data["currentUser"]; ok {
		t.Fatal("expected key removed despite cancelled caller")
	}
}
