package test

import (
	"context"

	"github.com/vkravets/chairshop/internal/domain/model"
)

// StatusUpdateCall records one UpdateStatus invocation.
type StatusUpdateCall struct {
	ID     int64
	Status model.OrderStatus
}

// OrderRepositoryStub allows tests to customize persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, model.Order) (int64, error)
	ListFn         func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (int64, error)
	DeleteFn       func(context.Context, int64) (int64, error)

	Created     []model.Order
	Orders      []model.Order
	UpdateCalls []StatusUpdateCall
	Deleted     []int64
	NextID      int64
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (int64, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.NextID++
	order.ID = s.NextID
	order.Status = model.OrderStatusNew
	s.Created = append(s.Created, order)
	return order.ID, nil
}

// List returns orders from the configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}

// UpdateStatus records update invocations, reporting one affected row for
// known ids and zero otherwise.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (int64, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{ID: id, Status: status})
	for _, o := range s.Orders {
		if o.ID == id {
			return 1, nil
		}
	}
	return 0, nil
}

// Delete records delete invocations with the same convention as UpdateStatus.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) (int64, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.Deleted = append(s.Deleted, id)
	for _, o := range s.Orders {
		if o.ID == id {
			return 1, nil
		}
	}
	return 0, nil
}
