package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/infrastructure/db/memory"
)

type failingStore struct {
	err   error
	calls int
}

func (f *failingStore) Get(context.Context, string) ([]byte, error) {
	f.calls++
	return nil, f.err
}

func (f *failingStore) Set(context.Context, string, []byte) error {
	f.calls++
	return f.err
}

func (f *failingStore) Delete(context.Context, string) error {
	f.calls++
	return f.err
}

func TestStore_NamespacesKeys(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewStore()
	s := New(backend, "portal", nil)

	if err := s.Set(ctx, "employees", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, err := backend.Get(ctx, "portal:employees"); err != nil {
		t.Fatalf("expected namespaced key in backend, got %v", err)
	}
	if _, err := backend.Get(ctx, "employees"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected bare key absent, got %v", err)
	}

	got, err := s.Get(ctx, "employees")
	if err != nil || string(got) != `[]` {
		t.Fatalf("expected [] back, got %q, %v", got, err)
	}

	if err := s.Delete(ctx, "employees"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if backend.Keys() != 0 {
		t.Fatalf("expected backend empty after delete, got %d keys", backend.Keys())
	}
}

func TestStore_EmptyNamespaceUsesBareKeys(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewStore()
	s := New(backend, "", nil)

	_ = s.Set(ctx, "currentUser", []byte(`null`))
	if _, err := backend.Get(ctx, "currentUser"); err != nil {
		t.Fatalf("expected bare key, got %v", err)
	}
}

func TestStore_MissingKeyDoesNotTripBreaker(t *testing.T) {
	ctx := context.Background()
	cb := NewCircuitBreaker("test-missing", time.Minute, zerolog.Nop())
	s := New(memory.NewStore(), "portal", cb)

	for i := 0; i < 5; i++ {
		if _, err := s.Get(ctx, "students"); !errors.Is(err, domain.ErrKeyNotFound) {
			t.Fatalf("call %d: expected ErrKeyNotFound, got %v", i, err)
		}
	}
	if cb.State() != gobreaker.StateClosed {
		t.Fatalf("expected breaker closed, got %s", cb.State())
	}
}

func TestStore_OpensAfterConsecutiveFailures(t *testing.T) {
	ctx := context.Background()
	backend := &failingStore{err: errors.New("connection refused")}
	cb := NewCircuitBreaker("test-open", time.Minute, zerolog.Nop())
	s := New(backend, "portal", cb)

	for i := 0; i < 3; i++ {
		if err := s.Set(ctx, "employees", []byte(`[]`)); err == nil {
			t.Fatalf("call %d: expected backend error", i)
		}
	}

	err := s.Set(ctx, "employees", []byte(`[]`))
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected ErrOpenState, got %v", err)
	}
	if backend.calls != 3 {
		t.Fatalf("expected backend untouched while open, got %d calls", backend.calls)
	}
}

func TestStore_PingWithoutPingerIsHealthy(t *testing.T) {
	s := New(&failingStore{err: errors.New("down")}, "portal", nil)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("expected nil ping for backend without Ping, got %v", err)
	}
}

func TestResult(t *testing.T) {
	cases := map[string]error{
		"ok":           nil,
		"not_found":    domain.ErrKeyNotFound,
		"open_circuit": gobreaker.ErrOpenState,
		"error":        errors.New("boom"),
	}
	for want, err := range cases {
		if got := result(err); got != want {
			t.Errorf("result(%v) = %q, want %q", err, got, want)
		}
	}
}
