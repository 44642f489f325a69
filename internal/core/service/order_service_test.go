package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
	"github.com/zoomarket/cashbox-system/internal/core/ports"
)

type stubOrderRepo struct {
	created   []*domain.Order
	createErr error
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *o
	clone.ID = "o1"
	r.created = append(r.created, &clone)
	return &clone, nil
}

func TestOrderService_Create(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	frozen := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Products:  []ports.OrderItemInput{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}},
		Total:     1790,
		CashierID: "64f000000000000000000003",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if order.ID == "" {
		t.Fatalf("expected stored id")
	}
	if order.CashierID != "64f000000000000000000003" {
		t.Fatalf("unexpected cashier id: %q", order.CashierID)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	if !order.Date.Equal(frozen) {
		t.Fatalf("expected creation time %v, got %v", frozen, order.Date)
	}
	if len(order.Products) != 2 || order.Products[0].ProductID != "p1" || order.Products[0].Quantity != 2 {
		t.Fatalf("items not preserved: %+v", order.Products)
	}
	if !strings.HasPrefix(order.Number, "POS-") || len(order.Number) != len("POS-")+8 {
		t.Fatalf("unexpected receipt number: %q", order.Number)
	}
}

func TestOrderService_Create_UniqueReceiptNumbers(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		order, err := svc.Create(context.Background(), ports.CreateOrderInput{
			Products:  []ports.OrderItemInput{{ProductID: "p1", Quantity: 1}},
			Total:     100,
			CashierID: "c1",
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if _, dup := seen[order.Number]; dup {
			t.Fatalf("duplicate receipt number: %q", order.Number)
		}
		seen[order.Number] = struct{}{}
	}
}

func TestOrderService_Create_RepoError(t *testing.T) {
	repo := &stubOrderRepo{createErr: errors.New("insert failed")}
	svc := NewOrderService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Products:  []ports.OrderItemInput{{ProductID: "p1", Quantity: 1}},
		Total:     100,
		CashierID: "c1",
	}); err == nil {
		t.Fatalf("expected error to propagate")
	}
}
