package usecase

import (
	"context"

	domainErrors "github.com/vkravets/chairshop/internal/domain/errors"
	"github.com/vkravets/chairshop/internal/domain/model"
	"github.com/vkravets/chairshop/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Create validates and stores a new order, returning its generated id.
func (u *OrderUseCase) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := ValidateOrderFields(order); err != nil {
		return 0, err
	}
	return u.orders.Create(ctx, order)
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// UpdateStatus changes the status of one order. The value is checked
// against the allowed set before storage is touched.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	affected, err := u.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// Delete removes one order.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	affected, err := u.orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
