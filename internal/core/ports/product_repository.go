package ports

import (
	"context"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

// ProductRepository defines persistence operations for catalogue products.
type ProductRepository interface {
	// List returns the full catalogue, unfiltered and unpaginated.
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
}
