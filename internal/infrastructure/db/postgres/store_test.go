package postgres

import (
	"context"
	"testing"
	"time"
)

func TestWithTimeout_SetsDeadline(t *testing.T) {
	start := time.Now()
	ctx, cancel := withTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline on every statement")
	}
	if deadline.After(start.Add(defaultTimeout + time.Second)) {
		t.Fatalf("deadline %v exceeds default timeout", deadline.Sub(start))
	}
}

func TestWithTimeout_KeepsEarlierCallerDeadline(t *testing.T) {
	parent, cancelParent := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancelParent()
	want, _ := parent.Deadline()

	ctx, cancel := withTimeout(parent)
	defer cancel()

	if got, _ := ctx.Deadline(); !got.Equal(want) {
		t.Fatalf("expected caller deadline %v, got %v", want, got)
	}
}

func TestWithTimeout_CancelReleases(t *testing.T) {
	ctx, cancel := withTimeout(context.Background())
	cancel()
	if ctx.Err() == nil {
		t.Fatalf("expected context cancelled after release")
	}
}
