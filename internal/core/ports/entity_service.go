package ports

import (
	"context"
	"iter"

	"github.com/campusdesk/portal/internal/core/domain"
)

// EmployeeStats summarises the employee collection for the HR and admin
// dashboards.
type EmployeeStats struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	AverageSalary float64 `json:"averageSalary"`
}

// StudentStats summarises the student collection.
type StudentStats struct {
	Total      int         `json:"total"`
	Enrolled   int         `json:"enrolled"`
	Graduated  int         `json:"graduated"`
	Suspended  int         `json:"suspended"`
	AverageGPA float64     `json:"averageGpa"`
	ByYear     map[int]int `json:"byYear"`
}

// EmployeeService is the employee entity store. Update and Delete report
// whether a record matched; a miss leaves the store untouched.
type EmployeeService interface {
	All() []domain.Employee
	Get(id string) (domain.Employee, bool)
	Search(term string) iter.Seq[domain.Employee]
	Create(ctx context.Context, e domain.Employee) domain.Employee
	Update(ctx context.Context, e domain.Employee) bool
	Delete(ctx context.Context, id string) bool
	Stats() EmployeeStats
}

// StudentService is the student entity store.
type StudentService interface {
	All() []domain.Student
	Get(id string) (domain.Student, bool)
	Search(term string) iter.Seq[domain.Student]
	Create(ctx context.Context, s domain.Student) domain.Student
	Update(ctx context.Context, s domain.Student) bool
	Delete(ctx context.Context, id string) bool
	FindByEmail(email string) (domain.Student, bool)
	Stats() StudentStats
}

// DepartmentSummary is a seed department with its live employee headcount
// and their average salary, rounded to whole units.
type DepartmentSummary struct {
	domain.Department
	Headcount     int     `json:"headcount"`
	AverageSalary float64 `json:"averageSalary"`
}

// DepartmentDirectory exposes the read-only department list.
type DepartmentDirectory interface {
	List() []DepartmentSummary
	TotalBudget() float64
	Count() int
}
