package ports

import (
	"context"

	"github.com/hourlog/timetracking-system/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and returns a signed access token for it.
	Register(ctx context.Context, username, password string) (string, *domain.User, error)
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
