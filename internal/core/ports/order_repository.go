package ports

import (
	"context"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. The API only
// ever inserts; listing and status transitions happen in back-office tooling.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
}
