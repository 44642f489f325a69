package ports

import (
	"context"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

// CreateProductInput carries all data needed to add a catalogue product.
type CreateProductInput struct {
	Name     string
	Price    float64
	Category string
	Stock    int
}

// ProductService defines use-case operations for the catalogue.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
}
