package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/zoomarket/cashbox-system/internal/api/metrics"
	"github.com/zoomarket/cashbox-system/internal/core/domain"
	"github.com/zoomarket/cashbox-system/internal/core/ports"
)

// ProductCache abstracts the catalogue cache (Redis). A nil cache disables
// caching entirely; cache errors degrade to a direct repository read.
type ProductCache interface {
	Get(ctx context.Context) ([]domain.Product, bool, error)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

// ProductService implements catalogue listing and creation.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ProductCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ProductCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

// List returns the full catalogue, serving from cache when possible.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		products, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("product cache read failed, falling back to store")
		} else if ok {
			metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
			return products, nil
		} else {
			metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.logger.Warn().Err(err).Msg("product cache write failed")
		}
	}

	return products, nil
}

// Create persists a new catalogue product and drops the cached listing so the
// next read reflects the write.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		Stock:    input.Stock,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("product cache invalidation failed")
		}
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}
