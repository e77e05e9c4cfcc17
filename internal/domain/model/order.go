package model

import "time"

// OrderStatus describes order fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "New"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipping   OrderStatus = "Shipping"
	OrderStatusDone       OrderStatus = "Done"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses lists every status an order may hold, in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusProcessing,
	OrderStatusShipping,
	OrderStatusDone,
	OrderStatusCancelled,
}

// Valid reports whether the status belongs to the allowed set.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order describes a customer purchase stored by the shop.
type Order struct {
	ID        int64
	Name      string
	Phone     string
	City      string
	Warehouse string
	Chair     string
	Size      string
	Status    OrderStatus
	OrderDate time.Time
}

// FormattedTimestamp renders the order date the way the storefront expects:
// ISO-8601 in UTC with a fixed zero-millisecond suffix.
func (o Order) FormattedTimestamp() string {
	return o.OrderDate.UTC().Format("2006-01-02T15:04:05") + ".000Z"
}
