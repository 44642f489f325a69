package ports

import (
	"context"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

// OrderItemInput references a product with a quantity.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries all data needed to ring up an order.
// CashierID is filled by the transport layer from the verified identity;
// any cashier id present in the request body is discarded before this point.
type CreateOrderInput struct {
	Products  []OrderItemInput
	Total     float64
	CashierID string
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
}
