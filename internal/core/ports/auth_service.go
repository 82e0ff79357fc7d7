package ports

import (
	"context"

	"github.com/elegance/timesheet-system/internal/core/domain"
)

type AuthService interface {
	// Login checks the credentials against the single configured pair and
	// returns a signed token on success.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context) error
}
