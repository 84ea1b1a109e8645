package handler

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
	"github.com/campusdesk/portal/internal/pkg/metrics"
)

// EmployeeHandler handles HTTP requests for the employee store.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /v1/employees. A non-empty q filters by name, department
// or position, case-insensitively.
//
// @Summary      List or search employees
// @Tags         employees
// @Produce      json
// @Param        q    query     string  false  "Search term"
// @Success      200  {object}  listResponse[domain.Employee]
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusOK, newList(h.service.All()))
	}
	return c.JSON(http.StatusOK, newList(slices.Collect(h.service.Search(q))))
}

// Get handles GET /v1/employees/:id.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  errorResponse
// @Router       /v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	e, ok := h.service.Get(c.Param("id"))
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	return c.JSON(http.StatusOK, e)
}

// Create handles POST /v1/employees. Any id in the body is ignored.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      employeeRequest  true  "Employee"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created := h.service.Create(c.Request().Context(), req.toDomain(""))
	metrics.EntityMutationsTotal.WithLabelValues("employee", "create", "ok").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/employees/:id, replacing the whole record.
//
// @Summary      Replace an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Employee id"
// @Param        body  body      employeeRequest  true  "Employee"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	e := req.toDomain(c.Param("id"))
	if !h.service.Update(c.Request().Context(), e) {
		metrics.EntityMutationsTotal.WithLabelValues("employee", "update", "miss").Inc()
		return domain.ErrEmployeeNotFound
	}
	metrics.EntityMutationsTotal.WithLabelValues("employee", "update", "ok").Inc()
	return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /v1/employees/:id. Deleting an unknown id succeeds.
//
// @Summary      Delete an employee
// @Tags         employees
// @Param        id   path  string  true  "Employee id"
// @Success      204
// @Router       /v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	result := "ok"
	if !h.service.Delete(c.Request().Context(), c.Param("id")) {
		result = "miss"
	}
	metrics.EntityMutationsTotal.WithLabelValues("employee", "delete", result).Inc()
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/employees/stats.
//
// @Summary      Employee statistics
// @Tags         employees
// @Produce      json
// @Success      200  {object}  ports.EmployeeStats
// @Router       /v1/employees/stats [get]
func (h *EmployeeHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Stats())
}
