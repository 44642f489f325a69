package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

const ordersCollection = "orders"

// OrderRepository is the Mongo-backed implementation of ports.OrderRepository.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type mongoOrderItem struct {
	ProductID string `bson:"productId"`
	Quantity  int    `bson:"quantity"`
}

type mongoOrder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Number    string             `bson:"number"`
	Products  []mongoOrderItem   `bson:"products"`
	Total     float64            `bson:"total"`
	CashierID string             `bson:"cashierId"`
	Date      time.Time          `bson:"date"`
	Status    string             `bson:"status"`
}

func (mo mongoOrder) toDomain() domain.Order {
	items := make([]domain.OrderItem, len(mo.Products))
	for i, it := range mo.Products {
		items[i] = domain.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return domain.Order{
		ID:        mo.ID.Hex(),
		Number:    mo.Number,
		Products:  items,
		Total:     mo.Total,
		CashierID: mo.CashierID,
		Date:      mo.Date,
		Status:    domain.OrderStatus(mo.Status),
	}
}

// Create inserts an order and returns the stored record with its generated id.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	items := make([]mongoOrderItem, len(o.Products))
	for i, it := range o.Products {
		items[i] = mongoOrderItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	doc := mongoOrder{
		Number:    o.Number,
		Products:  items,
		Total:     o.Total,
		CashierID: o.CashierID,
		Date:      o.Date,
		Status:    string(o.Status),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert order: unexpected id type %T", res.InsertedID)
	}

	doc.ID = oid
	stored := doc.toDomain()
	return &stored, nil
}

// EnsureIndexes creates the cashier lookup index on orders.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "cashierId", Value: 1}},
	})
	return err
}
