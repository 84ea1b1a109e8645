package ports

import (
	"context"

	"github.com/campusdesk/portal/internal/core/domain"
)

// RegisterInput carries a new account; the id is assigned by the service.
type RegisterInput struct {
	Username string
	Password string
	Role     domain.Role
	Name     string
	Email    string
}

// SessionService owns the single current session and the credential store.
// Failures are reported as plain booleans so callers cannot tell an unknown
// username from a wrong password. Login returns the user it authenticated.
type SessionService interface {
	Current() (domain.User, bool)
	Login(ctx context.Context, username, password string) (domain.User, bool)
	Logout(ctx context.Context)
	Register(ctx context.Context, in RegisterInput) bool
}
