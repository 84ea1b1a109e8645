package domain

import "errors"

var (
	ErrKeyNotFound        = errors.New("key not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already taken")
	ErrUnauthenticated    = errors.New("no active session")
	ErrForbidden          = errors.New("access forbidden")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrStudentNotFound    = errors.New("student not found")
)
