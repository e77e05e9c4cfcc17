package test

import (
	"context"

	"github.com/vkravets/chairshop/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, model.Order) (int64, error)
	OrdersFn func(context.Context) ([]model.Order, error)
	UpdateFn func(context.Context, int64, model.OrderStatus) error
	DeleteFn func(context.Context, int64) error
}

// CreateOrder delegates to the provided function or reports id 1.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, order model.Order) (int64, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return 1, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusNew}}, nil
}

// UpdateOrderStatus executes the configured handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status)
	}
	return nil
}

// DeleteOrder executes the configured handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// AddressFacadeStub simulates carrier lookups.
type AddressFacadeStub struct {
	SettlementsFn func(context.Context) ([]model.Settlement, error)
	WarehousesFn  func(context.Context, string) ([]model.Warehouse, error)
}

// Settlements returns configured settlements or a default pair.
func (s AddressFacadeStub) Settlements(ctx context.Context) ([]model.Settlement, error) {
	if s.SettlementsFn != nil {
		return s.SettlementsFn(ctx)
	}
	return []model.Settlement{{Ref: "a", Description: "Kyiv"}}, nil
}

// Warehouses returns configured warehouses or a default entry.
func (s AddressFacadeStub) Warehouses(ctx context.Context, cityRef string) ([]model.Warehouse, error) {
	if s.WarehousesFn != nil {
		return s.WarehousesFn(ctx, cityRef)
	}
	return []model.Warehouse{{Ref: "w", Description: "Branch 1"}}, nil
}

// ShopFacadeStub aggregates the stubs for router-level tests.
type ShopFacadeStub struct {
	OrderFacadeStub
	AddressFacadeStub
}
