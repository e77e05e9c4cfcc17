package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vkravets/chairshop/internal/domain/model"
	"github.com/vkravets/chairshop/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "invalid request body"})
		return
	}

	order := model.Order{
		Name:      req.Name,
		Phone:     req.Phone,
		City:      req.City,
		Warehouse: req.Warehouse,
		Chair:     req.Chair,
		Size:      req.Size,
	}

	id, err := h.facade.CreateOrder(c.Request.Context(), order)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Success: true,
		Message: "Order accepted",
		OrderID: id,
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		data = append(data, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, dto.OrdersResponse{Success: true, Data: data})
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "invalid request body"})
		return
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.NewStatus)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Order %d status updated to %s", id, req.NewStatus),
	})
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Order %d deleted", id),
	})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                 order.ID,
		Name:               order.Name,
		Phone:              order.Phone,
		City:               order.City,
		Warehouse:          order.Warehouse,
		Chair:              order.Chair,
		Size:               order.Size,
		Status:             string(order.Status),
		OrderDate:          order.OrderDate,
		FormattedTimestamp: order.FormattedTimestamp(),
	}
}
