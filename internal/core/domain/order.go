package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
)

// OrderItem references a catalogue product with a quantity.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order is a sale rung up at the register. CashierID is always taken from the
// authenticated identity, never from client input.
type Order struct {
	ID        string      `json:"id"`
	Number    string      `json:"number"`
	Products  []OrderItem `json:"products"`
	Total     float64     `json:"total"`
	CashierID string      `json:"cashierId"`
	Date      time.Time   `json:"date"`
	Status    OrderStatus `json:"status"`
}
