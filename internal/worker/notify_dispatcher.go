package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vkravets/chairshop/internal/adapter/telegram"
	"github.com/vkravets/chairshop/internal/domain/model"
)

// NotifyDispatcher delivers new-order notifications detached from the
// request that triggered them. Delivery failures are logged, never
// surfaced: order creation must not depend on the operator channel.
type NotifyDispatcher struct {
	notifier telegram.Notifier
	logger   *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotifyDispatcher constructs the dispatcher with a bounded queue.
func NewNotifyDispatcher(notifier telegram.Notifier, queueSize int, logger *slog.Logger) *NotifyDispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &NotifyDispatcher{
		notifier: notifier,
		logger:   logger,
		jobs:     make(chan model.Order, queueSize),
	}
}

// Start launches background delivery.
func (d *NotifyDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.wg.Add(1)
	go d.run(runCtx)
}

// Stop waits for in-flight deliveries to finish.
func (d *NotifyDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue hands an order over for delivery. It never blocks the caller:
// when the queue is full the notification is dropped with a log line.
func (d *NotifyDispatcher) Enqueue(order model.Order) {
	select {
	case d.jobs <- order:
	default:
		d.logger.Warn("notification queue full, dropping", slog.Int64("order_id", order.ID))
	}
}

func (d *NotifyDispatcher) run(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order := <-d.jobs:
			if err := d.notifier.NotifyNewOrder(ctx, order); err != nil {
				d.logger.Error("new order notification failed",
					slog.Int64("order_id", order.ID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
