package handler

// --- Request types ---
// Responses reuse domain.Order directly.

type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

// createOrderRequest deliberately has no cashier field: the cashier identity
// comes from the verified token and any client-supplied value is ignored.
type createOrderRequest struct {
	Products []orderItemRequest `json:"products" validate:"required,min=1,dive"`
	Total    float64            `json:"total"    validate:"required,gt=0"`
}
