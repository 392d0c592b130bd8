package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hourlog/timetracking-system/internal/core/domain"
)

// TokenVerifier verifies a bearer token and returns the subject user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder resolves a user id to the stored user.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth resolves the bearer token into an authenticated user and injects the
// identity into the request context. Fail-closed: any failure short-circuits
// with 401 before the handler runs. A token that verifies but whose user has
// since been deleted is rejected the same way.
func Auth(tokens TokenVerifier, users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", user.ID)
			c.Set("username", user.Username)

			return next(c)
		}
	}
}
