package domain

// Role selects which dashboard a user sees.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleLecturer Role = "lecturer"
	RoleStudent  Role = "student"
)

// Valid reports whether r is one of the four portal roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleLecturer, RoleStudent:
		return true
	}
	return false
}

// User is a portal account. Seed users come from configuration; registered
// users are appended at runtime and persisted. The password is stored as
// given.
type User struct {
	ID       string `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Role     Role   `json:"role" yaml:"role"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
}

// WellFormed reports whether u carries enough to act as a session principal.
func (u User) WellFormed() bool {
	return u.Username != "" && u.Role.Valid()
}
