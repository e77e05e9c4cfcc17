package app

import (
	"context"

	"github.com/vkravets/chairshop/internal/domain/model"
	"github.com/vkravets/chairshop/internal/usecase"
)

// OrderNotifier accepts orders for detached operator notification.
type OrderNotifier interface {
	Enqueue(order model.Order)
}

// ShopFacade aggregates the operations exposed across handlers.
type ShopFacade struct {
	orders   *usecase.OrderUseCase
	address  *usecase.AddressUseCase
	notifier OrderNotifier
}

// NewShopFacade constructs the facade.
func NewShopFacade(orders *usecase.OrderUseCase, address *usecase.AddressUseCase, notifier OrderNotifier) *ShopFacade {
	return &ShopFacade{orders: orders, address: address, notifier: notifier}
}

// CreateOrder stores the order and hands it to the notifier. The
// notification outcome never affects the returned result.
func (f *ShopFacade) CreateOrder(ctx context.Context, order model.Order) (int64, error) {
	id, err := f.orders.Create(ctx, order)
	if err != nil {
		return 0, err
	}
	order.ID = id
	order.Status = model.OrderStatusNew
	f.notifier.Enqueue(order)
	return id, nil
}

// Orders lists all stored orders, newest first.
func (f *ShopFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

// UpdateOrderStatus moves one order to a new lifecycle status.
func (f *ShopFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, id, status)
}

// DeleteOrder removes one order.
func (f *ShopFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

// Settlements returns the deliverable city list.
func (f *ShopFacade) Settlements(ctx context.Context) ([]model.Settlement, error) {
	return f.address.Settlements(ctx)
}

// Warehouses returns carrier branches for one city.
func (f *ShopFacade) Warehouses(ctx context.Context, cityRef string) ([]model.Warehouse, error) {
	return f.address.Warehouses(ctx, cityRef)
}
