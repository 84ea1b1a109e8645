package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
)

// EmployeeService is the employee entity store.
type EmployeeService struct {
	*Collection[domain.Employee]
}

var _ ports.EmployeeService = (*EmployeeService)(nil)

func NewEmployeeService(ctx context.Context, store ports.DurableStore, initial []domain.Employee, ids IDGenerator, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		Collection: NewCollection(ctx, store, KeyEmployees, initial, ids, log),
	}
}

// Stats computes the HR dashboard figures. The average salary is rounded to
// a whole amount.
func (s *EmployeeService) Stats() ports.EmployeeStats {
	employees := s.All()
	stats := ports.EmployeeStats{Total: len(employees)}

	salaries := make([]float64, 0, len(employees))
	for _, e := range employees {
		if e.Status == domain.EmployeeActive {
			stats.Active++
		}
		salaries = append(salaries, e.Salary)
	}
	stats.AverageSalary = average(salaries, 0)
	return stats
}
