package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/campusdesk/portal/internal/core/domain"
)

func TestStore_GetMissing(t *testing.T) {
	s := NewStore()
	if _, err := s.Get(context.Background(), "employees"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if err := s.Set(ctx, "students", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get(ctx, "students")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("unexpected value %q", got)
	}

	if err := s.Delete(ctx, "students"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "students"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected key gone, got %v", err)
	}
}

func TestStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	buf := []byte(`"a"`)
	_ = s.Set(ctx, "k", buf)
	buf[1] = 'b'

	got, _ := s.Get(ctx, "k")
	if string(got) != `"a"` {
		t.Fatalf("store aliased caller buffer: %q", got)
	}
	got[1] = 'c'
	again, _ := s.Get(ctx, "k")
	if string(again) != `"a"` {
		t.Fatalf("store aliased returned buffer: %q", again)
	}
}
