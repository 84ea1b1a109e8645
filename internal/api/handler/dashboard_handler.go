package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
)

// Access levels per dashboard section.
const (
	accessReadWrite = "rw"
	accessRead      = "r"
	accessSelf      = "self"
)

// DashboardHandler renders the role-specific overview shown after login.
type DashboardHandler struct {
	employees   ports.EmployeeService
	students    ports.StudentService
	departments ports.DepartmentDirectory
}

func NewDashboardHandler(employees ports.EmployeeService, students ports.StudentService, departments ports.DepartmentDirectory) *DashboardHandler {
	return &DashboardHandler{
		employees:   employees,
		students:    students,
		departments: departments,
	}
}

type departmentOverview struct {
	Count       int     `json:"count"`
	TotalBudget float64 `json:"totalBudget"`
}

type dashboardResponse struct {
	User        userResponse         `json:"user"`
	Access      map[string]string    `json:"access"`
	Employees   *ports.EmployeeStats `json:"employees,omitempty"`
	Students    *ports.StudentStats  `json:"students,omitempty"`
	Departments *departmentOverview  `json:"departments,omitempty"`
	Profile     *domain.Student      `json:"profile,omitempty"`
}

// accessFor maps a role to the sections its dashboard exposes.
func accessFor(role domain.Role) map[string]string {
	switch role {
	case domain.RoleAdmin:
		return map[string]string{"employees": accessReadWrite, "students": accessReadWrite, "departments": accessRead}
	case domain.RoleHR:
		return map[string]string{"employees": accessReadWrite, "departments": accessRead}
	case domain.RoleLecturer:
		return map[string]string{"students": accessRead}
	case domain.RoleStudent:
		return map[string]string{"profile": accessSelf}
	default:
		return map[string]string{}
	}
}

// Overview handles GET /v1/dashboard.
//
// @Summary      Role dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	u, err := ctxUser(c)
	if err != nil {
		return err
	}

	access := accessFor(u.Role)
	resp := dashboardResponse{User: toUserResponse(u), Access: access}

	if _, ok := access["employees"]; ok {
		stats := h.employees.Stats()
		resp.Employees = &stats
	}
	if _, ok := access["students"]; ok {
		stats := h.students.Stats()
		resp.Students = &stats
	}
	if _, ok := access["departments"]; ok {
		resp.Departments = &departmentOverview{
			Count:       h.departments.Count(),
			TotalBudget: h.departments.TotalBudget(),
		}
	}
	if _, ok := access["profile"]; ok {
		if s, found := h.students.FindByEmail(u.Email); found {
			resp.Profile = &s
		}
	}

	return c.JSON(http.StatusOK, resp)
}
