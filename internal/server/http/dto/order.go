package dto

import "time"

// CreateOrderRequest carries the checkout form payload.
type CreateOrderRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Warehouse string `json:"warehouse"`
	Chair     string `json:"chair"`
	Size      string `json:"size"`
}

// CreateOrderResponse acknowledges an accepted order.
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// OrderResponse mirrors one stored order row.
type OrderResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone"`
	City               string    `json:"city"`
	Warehouse          string    `json:"warehouse"`
	Chair              string    `json:"chair"`
	Size               string    `json:"size"`
	Status             string    `json:"status"`
	OrderDate          time.Time `json:"order_date"`
	FormattedTimestamp string    `json:"formatted_timestamp"`
}

// OrdersResponse wraps the order listing.
type OrdersResponse struct {
	Success bool            `json:"success"`
	Data    []OrderResponse `json:"data"`
}

// UpdateStatusRequest carries the target lifecycle status.
type UpdateStatusRequest struct {
	NewStatus string `json:"newStatus"`
}

// MessageResponse is the generic success/error envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
