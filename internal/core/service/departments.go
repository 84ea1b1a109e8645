package service

import (
	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
)

type employeeLister interface {
	All() []domain.Employee
}

// DepartmentDirectory serves the seed department list, joined by name with
// the live employee collection.
type DepartmentDirectory struct {
	departments []domain.Department
	employees   employeeLister
}

var _ ports.DepartmentDirectory = (*DepartmentDirectory)(nil)

func NewDepartmentDirectory(departments []domain.Department, employees employeeLister) *DepartmentDirectory {
	return &DepartmentDirectory{
		departments: append([]domain.Department(nil), departments...),
		employees:   employees,
	}
}

func (d *DepartmentDirectory) List() []ports.DepartmentSummary {
	salaries := make(map[string][]float64)
	for _, e := range d.employees.All() {
		salaries[e.Department] = append(salaries[e.Department], e.Salary)
	}

	out := make([]ports.DepartmentSummary, 0, len(d.departments))
	for _, dept := range d.departments {
		s := salaries[dept.Name]
		out = append(out, ports.DepartmentSummary{
			Department:    dept,
			Headcount:     len(s),
			AverageSalary: average(s, 0),
		})
	}
	return out
}

func (d *DepartmentDirectory) TotalBudget() float64 {
	budgets := make([]float64, 0, len(d.departments))
	for _, dept := range d.departments {
		budgets = append(budgets, dept.Budget)
	}
	return sum(budgets)
}

func (d *DepartmentDirectory) Count() int { return len(d.departments) }
