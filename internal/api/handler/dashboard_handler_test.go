package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/service"
)

func TestDashboardHandler_Overview(t *testing.T) {
	employees := newEmployeeService(t)
	students := newStudentService(t, seedStudents())
	departments := service.NewDepartmentDirectory([]domain.Department{
		{ID: "1", Name: "Computer Science", Code: "CS", Budget: 500000},
		{ID: "2", Name: "Business Administration", Code: "BA", Budget: 350000},
	}, employees)
	h := NewDashboardHandler(employees, students, departments)

	tests := []struct {
		role          domain.Role
		email         string
		wantEmployees bool
		wantStudents  bool
		wantDepts     bool
		wantProfile   bool
	}{
		{role: domain.RoleAdmin, wantEmployees: true, wantStudents: true, wantDepts: true},
		{role: domain.RoleHR, wantEmployees: true, wantDepts: true},
		{role: domain.RoleLecturer, wantStudents: true},
		{role: domain.RoleStudent, email: "roshan.silva@student.university.lk", wantProfile: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			e := newEcho()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil), rec)
			c.Set("user", domain.User{Username: string(tt.role), Role: tt.role, Email: tt.email})

			if err := h.Overview(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			var resp dashboardResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if (resp.Employees != nil) != tt.wantEmployees {
				t.Errorf("employees section present=%v, want %v", resp.Employees != nil, tt.wantEmployees)
			}
			if (resp.Students != nil) != tt.wantStudents {
				t.Errorf("students section present=%v, want %v", resp.Students != nil, tt.wantStudents)
			}
			if (resp.Departments != nil) != tt.wantDepts {
				t.Errorf("departments section present=%v, want %v", resp.Departments != nil, tt.wantDepts)
			}
			if (resp.Profile != nil) != tt.wantProfile {
				t.Errorf("profile present=%v, want %v", resp.Profile != nil, tt.wantProfile)
			}
		})
	}
}

func TestDashboardHandler_AdminFigures(t *testing.T) {
	employees := newEmployeeService(t)
	departments := service.NewDepartmentDirectory([]domain.Department{
		{ID: "1", Name: "Computer Science", Budget: 500000},
		{ID: "2", Name: "Business Administration", Budget: 350000},
	}, employees)
	h := NewDashboardHandler(employees, newStudentService(t, seedStudents()), departments)

	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil), rec)
	c.Set("user", domain.User{Username: "admin", Role: domain.RoleAdmin})

	if err := h.Overview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp dashboardResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	if resp.Employees.Total != 2 || resp.Employees.AverageSalary != 90000 {
		t.Errorf("unexpected employee stats: %+v", resp.Employees)
	}
	if resp.Departments.Count != 2 || resp.Departments.TotalBudget != 850000 {
		t.Errorf("unexpected department overview: %+v", resp.Departments)
	}
	if resp.Access["students"] != accessReadWrite {
		t.Errorf("expected admin rw on students, got %q", resp.Access["students"])
	}
}

func TestDashboardHandler_Anonymous(t *testing.T) {
	employees := newEmployeeService(t)
	h := NewDashboardHandler(employees, newStudentService(t, nil), service.NewDepartmentDirectory(nil, employees))

	e := newEcho()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil), httptest.NewRecorder())
	if err := h.Overview(c); err == nil {
		t.Fatal("expected error without session user")
	}
}
