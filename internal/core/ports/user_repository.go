package ports

import (
	"context"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

// UserRepository defines persistence operations for users. Accounts are
// provisioned out of band, so there is no Create here.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
