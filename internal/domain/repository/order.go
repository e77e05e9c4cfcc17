package repository

import (
	"context"

	"github.com/vkravets/chairshop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create inserts a new order with status forced to New and returns the generated id.
	Create(ctx context.Context, order model.Order) (int64, error)
	// List returns all orders, newest id first.
	List(ctx context.Context) ([]model.Order, error)
	// UpdateStatus changes the status of one order and reports how many rows matched.
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (int64, error)
	// Delete removes one order and reports how many rows matched.
	Delete(ctx context.Context, id int64) (int64, error)
}
