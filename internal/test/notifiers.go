package test

import (
	"context"
	"sync"

	"github.com/vkravets/chairshop/internal/domain/model"
)

// NotifierStub records notification attempts for worker and facade tests.
type NotifierStub struct {
	NotifyFn func(context.Context, model.Order) error

	mu     sync.Mutex
	orders []model.Order
}

// NotifyNewOrder records the order and delegates to NotifyFn.
func (s *NotifierStub) NotifyNewOrder(ctx context.Context, order model.Order) error {
	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, order)
	}
	return nil
}

// Notified returns a copy of the recorded orders.
func (s *NotifierStub) Notified() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// EnqueueRecorder captures orders handed to the notification dispatcher.
type EnqueueRecorder struct {
	mu     sync.Mutex
	orders []model.Order
}

// Enqueue stores the order.
func (r *EnqueueRecorder) Enqueue(order model.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
}

// Enqueued returns a copy of the captured orders.
func (r *EnqueueRecorder) Enqueued() []model.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Order, len(r.orders))
	copy(out, r.orders)
	return out
}
