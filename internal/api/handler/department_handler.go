package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/portal/internal/core/ports"
)

type DepartmentHandler struct {
	directory ports.DepartmentDirectory
}

func NewDepartmentHandler(directory ports.DepartmentDirectory) *DepartmentHandler {
	return &DepartmentHandler{directory: directory}
}

type departmentsResponse struct {
	Items       []ports.DepartmentSummary `json:"items"`
	Total       int                       `json:"total"`
	TotalBudget float64                   `json:"totalBudget"`
}

// List handles GET /v1/departments.
//
// @Summary      List departments with live headcount
// @Tags         departments
// @Produce      json
// @Success      200  {object}  departmentsResponse
// @Router       /v1/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	items := h.directory.List()
	return c.JSON(http.StatusOK, departmentsResponse{
		Items:       items,
		Total:       len(items),
		TotalBudget: h.directory.TotalBudget(),
	})
}
