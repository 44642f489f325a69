package ports

import (
	"context"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

// AuthService issues and backs sessions.
type AuthService interface {
	// Login validates credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Verify resolves the user behind a previously verified token id.
	Verify(ctx context.Context, userID string) (*domain.User, error)
}
