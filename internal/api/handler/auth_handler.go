package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
	"github.com/campusdesk/portal/internal/pkg/metrics"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Register creates a new user account. It does not start a session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ok := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Name:     req.Name,
		Email:    req.Email,
	})
	if !ok {
		metrics.RegistrationsTotal.WithLabelValues("taken").Inc()
		return domain.ErrUserExists
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, map[string]string{"username": req.Username})
}

// Login authenticates against the credential store and starts the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	ctx := c.Request().Context()
	u, ok := h.sessions.Login(ctx, req.Username, req.Password)
	if !ok {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return domain.ErrInvalidCredentials
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{User: toUserResponse(u)})
}

// Logout ends the current session. It always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session returns the authenticated user.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	u, ok := h.sessions.Current()
	if !ok {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, authResponse{User: toUserResponse(u)})
}
