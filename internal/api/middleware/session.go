package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/portal/internal/core/ports"
)

// Session requires an active session and injects the user and role into the
// request context.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := sessions.Current()
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			c.Set("user", u)
			c.Set("role", string(u.Role))

			return next(c)
		}
	}
}
