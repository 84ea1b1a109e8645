package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/portal/internal/core/domain"
)

// ctxUser returns the user injected by the Session middleware. Its absence
// means the route was mounted without the middleware; treat it as anonymous.
func ctxUser(c echo.Context) (domain.User, error) {
	u, ok := c.Get("user").(domain.User)
	if !ok || u.Username == "" {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return u, nil
}
