package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hourlog/timetracking-system/internal/core/domain"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate username", domain.ErrUserExists, http.StatusConflict},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"client missing or foreign", domain.ErrClientNotFound, http.StatusNotFound},
		{"entry missing or foreign", domain.ErrEntryNotFound, http.StatusNotFound},
		{"non-positive hours", domain.ErrInvalidHours, http.StatusUnprocessableEntity},
		{"echo error passthrough", echo.NewHTTPError(http.StatusTeapot, "teapot"), http.StatusTeapot},
		{"unknown error", errors.New("store exploded"), http.StatusInternalServerError},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestHTTPErrorHandler_HidesInternals(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("dial tcp 10.0.0.3: connection refused"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if body == "" || body == "null" {
		t.Fatalf("expected error envelope, got %q", body)
	}
	if want := "internal server error"; !strings.Contains(body, want) {
		t.Fatalf("expected generic message %q, got %q", want, body)
	}
	if strings.Contains(body, "10.0.0.3") {
		t.Fatalf("internal details leaked: %q", body)
	}
}
