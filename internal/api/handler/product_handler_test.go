package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
	"github.com/zoomarket/cashbox-system/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context) ([]domain.Product, error)
	createFn func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
}

func (s *stubProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func TestProductHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: "p1", Name: "Корм для кошек", Price: 450, Category: "корм", Stock: 12},
				{ID: "p2", Name: "Поводок", Price: 890, Category: "аксессуары", Stock: 3},
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected bare array, got %q: %v", rec.Body.String(), err)
	}
	if len(resp) != 2 || resp[0]["name"] != "Корм для кошек" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Name != "Аквариум" || input.Price != 3200 || input.Stock != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Product{ID: "p9", Name: input.Name, Price: input.Price, Category: input.Category, Stock: input.Stock}, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Аквариум","price":3200,"category":"аквариумистика","stock":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "p9" {
		t.Fatalf("expected generated id in response, got %+v", resp)
	}
}

func TestProductHandler_Create_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	// price missing
	body := strings.NewReader(`{"name":"Аквариум","category":"аквариумистика"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
