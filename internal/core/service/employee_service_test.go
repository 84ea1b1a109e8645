package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/infrastructure/db/memory"
)

func TestEmployeeService_Stats(t *testing.T) {
	svc := NewEmployeeService(context.Background(), memory.NewStore(), seedEmployees(), NewTimestampIDs(), zerolog.Nop())

	stats := svc.Stats()
	if stats.Total != 3 {
		t.Fatalf("expected total 3, got %d", stats.Total)
	}
	if stats.Active != 2 {
		t.Fatalf("expected 2 active, got %d", stats.Active)
	}
	if stats.AverageSalary != 85000 {
		t.Fatalf("expected average 85000, got %v", stats.AverageSalary)
	}
}

func TestEmployeeService_StatsRoundsAverage(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(ctx, memory.NewStore(), nil, NewTimestampIDs(), zerolog.Nop())

	svc.Create(ctx, domain.Employee{Salary: 1000})
	svc.Create(ctx, domain.Employee{Salary: 1001})

	if got := svc.Stats().AverageSalary; got != 1001 {
		t.Fatalf("expected 1000.5 rounded to 1001, got %v", got)
	}
}

func TestEmployeeService_StatsEmpty(t *testing.T) {
	svc := NewEmployeeService(context.Background(), memory.NewStore(), nil, NewTimestampIDs(), zerolog.Nop())

	stats := svc.Stats()
	if stats.Total != 0 || stats.AverageSalary != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
