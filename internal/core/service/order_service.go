package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zoomarket/cashbox-system/internal/api/metrics"
	"github.com/zoomarket/cashbox-system/internal/core/domain"
	"github.com/zoomarket/cashbox-system/internal/core/ports"
)

// OrderService implements order creation.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger, now: time.Now}
}

// Create rings up an order for the authenticated cashier. The cashier id in
// the input comes from the verified token; status defaults to pending and the
// date is the creation time.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	items := make([]domain.OrderItem, len(input.Products))
	for i, p := range input.Products {
		items[i] = domain.OrderItem{ProductID: p.ProductID, Quantity: p.Quantity}
	}

	order := &domain.Order{
		Number:    generateReceiptNumber(),
		Products:  items,
		Total:     input.Total,
		CashierID: input.CashierID,
		Date:      s.now().UTC(),
		Status:    domain.OrderPending,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("cashier_id", input.CashierID).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	s.logger.Info().
		Str("order_id", created.ID).
		Str("number", created.Number).
		Str("cashier_id", created.CashierID).
		Float64("total", created.Total).
		Msg("order created")

	return created, nil
}

// generateReceiptNumber returns a receipt number in the format POS-XXXXXXXX.
func generateReceiptNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "POS-" + id[:8]
}
