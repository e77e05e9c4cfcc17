package handlers

import (
	"context"

	"github.com/vkravets/chairshop/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, order model.Order) (int64, error)
	Orders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error
	DeleteOrder(ctx context.Context, id int64) error
}

// AddressFacade provides carrier address lookups.
type AddressFacade interface {
	Settlements(ctx context.Context) ([]model.Settlement, error)
	Warehouses(ctx context.Context, cityRef string) ([]model.Warehouse, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	OrderFacade
	AddressFacade
}
