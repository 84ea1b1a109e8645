package handler

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
	"github.com/campusdesk/portal/internal/pkg/metrics"
)

// StudentHandler handles HTTP requests for the student store.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// List handles GET /v1/students. A non-empty q filters by name, department
// or student number.
//
// @Summary      List or search students
// @Tags         students
// @Produce      json
// @Param        q    query     string  false  "Search term"
// @Success      200  {object}  listResponse[domain.Student]
// @Router       /v1/students [get]
func (h *StudentHandler) List(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusOK, newList(h.service.All()))
	}
	return c.JSON(http.StatusOK, newList(slices.Collect(h.service.Search(q))))
}

// @Summary      Get a student
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  domain.Student
// @Failure      404  {object}  errorResponse
// @Router       /v1/students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	s, ok := h.service.Get(c.Param("id"))
	if !ok {
		return domain.ErrStudentNotFound
	}
	return c.JSON(http.StatusOK, s)
}

// Create handles POST /v1/students. A blank studentId is generated.
//
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body  body      studentRequest  true  "Student"
// @Success      201   {object}  domain.Student
// @Failure      422   {object}  errorResponse
// @Router       /v1/students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created := h.service.Create(c.Request().Context(), req.toDomain(""))
	metrics.EntityMutationsTotal.WithLabelValues("student", "create", "ok").Inc()
	return c.JSON(http.StatusCreated, created)
}

// @Summary      Replace a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Student id"
// @Param        body  body      studentRequest  true  "Student"
// @Success      200   {object}  domain.Student
// @Failure      404   {object}  errorResponse
// @Router       /v1/students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	s := req.toDomain(c.Param("id"))
	if !h.service.Update(c.Request().Context(), s) {
		metrics.EntityMutationsTotal.WithLabelValues("student", "update", "miss").Inc()
		return domain.ErrStudentNotFound
	}
	metrics.EntityMutationsTotal.WithLabelValues("student", "update", "ok").Inc()
	return c.JSON(http.StatusOK, s)
}

// @Summary      Delete a student
// @Tags         students
// @Param        id   path  string  true  "Student id"
// @Success      204
// @Router       /v1/students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	result := "ok"
	if !h.service.Delete(c.Request().Context(), c.Param("id")) {
		result = "miss"
	}
	metrics.EntityMutationsTotal.WithLabelValues("student", "delete", result).Inc()
	return c.NoContent(http.StatusNoContent)
}

// @Summary      Student statistics
// @Tags         students
// @Produce      json
// @Success      200  {object}  ports.StudentStats
// @Router       /v1/students/stats [get]
func (h *StudentHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Stats())
}

// Me handles GET /v1/students/me: the student record matching the session
// email, or the first student when none matches.
//
// @Summary      Own student record
// @Tags         students
// @Produce      json
// @Success      200  {object}  domain.Student
// @Failure      404  {object}  errorResponse
// @Router       /v1/students/me [get]
func (h *StudentHandler) Me(c echo.Context) error {
	u, err := ctxUser(c)
	if err != nil {
		return err
	}
	s, ok := h.service.FindByEmail(u.Email)
	if !ok {
		return domain.ErrStudentNotFound
	}
	return c.JSON(http.StatusOK, s)
}
