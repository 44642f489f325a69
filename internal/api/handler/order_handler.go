package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoomarket/cashbox-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create rings up an order for the authenticated cashier.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order items and total"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgBadRequest)
	}

	cashierID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items := make([]ports.OrderItemInput, len(req.Products))
	for i, p := range req.Products {
		items[i] = ports.OrderItemInput{ProductID: p.ProductID, Quantity: p.Quantity}
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		Products:  items,
		Total:     req.Total,
		CashierID: cashierID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, order)
}
