package handler

import "github.com/campusdesk/portal/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin hr lecturer student"`
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
}

// userResponse is a user without its password.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type authResponse struct {
	User userResponse `json:"user"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		Name:     u.Name,
		Email:    u.Email,
	}
}

// --- Employees ---

type employeeRequest struct {
	Name       string  `json:"name"       validate:"required"`
	Email      string  `json:"email"      validate:"required,email"`
	Phone      string  `json:"phone"`
	Department string  `json:"department" validate:"required"`
	Position   string  `json:"position"   validate:"required"`
	Salary     float64 `json:"salary"     validate:"min=0"`
	HireDate   string  `json:"hireDate"   validate:"omitempty,datetime=2006-01-02"`
	Status     string  `json:"status"     validate:"required,oneof=active inactive"`
}

func (r employeeRequest) toDomain(id string) domain.Employee {
	return domain.Employee{
		ID:         id,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Department: r.Department,
		Position:   r.Position,
		Salary:     r.Salary,
		HireDate:   r.HireDate,
		Status:     domain.EmployeeStatus(r.Status),
	}
}

// --- Students ---

type studentRequest struct {
	Name           string  `json:"name"           validate:"required"`
	Email          string  `json:"email"          validate:"required,email"`
	Phone          string  `json:"phone"`
	StudentID      string  `json:"studentId"`
	Department     string  `json:"department"     validate:"required"`
	Year           int     `json:"year"           validate:"min=1,max=4"`
	GPA            float64 `json:"gpa"            validate:"min=0,max=4"`
	EnrollmentDate string  `json:"enrollmentDate" validate:"omitempty,datetime=2006-01-02"`
	Status         string  `json:"status"         validate:"required,oneof=enrolled graduated suspended"`
}

func (r studentRequest) toDomain(id string) domain.Student {
	return domain.Student{
		ID:             id,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		StudentID:      r.StudentID,
		Department:     r.Department,
		Year:           r.Year,
		GPA:            r.GPA,
		EnrollmentDate: r.EnrollmentDate,
		Status:         domain.StudentStatus(r.Status),
	}
}

// listResponse wraps collection results with their count.
type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, Total: len(items)}
}
