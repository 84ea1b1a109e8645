package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusdesk/portal/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"employee not found", domain.ErrEmployeeNotFound, http.StatusNotFound, "employee not found"},
		{"wrapped student not found", fmt.Errorf("lookup: %w", domain.ErrStudentNotFound), http.StatusNotFound, "student not found"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"duplicate username", domain.ErrUserExists, http.StatusConflict, "username already taken"},
		{"anonymous", domain.ErrUnauthenticated, http.StatusUnauthorized, "not authenticated"},
		{"echo error", echo.NewHTTPError(http.StatusUnprocessableEntity, "year must be at most 4"), http.StatusUnprocessableEntity, "year must be at most 4"},
		{"unexpected", errors.New("redis: connection pool timeout"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}
