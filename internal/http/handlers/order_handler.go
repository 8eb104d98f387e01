package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-marketplace/internal/interface/http/response"
	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// createOrderRequest: total_price из тела игнорируется, сумму считает сервер.
type createOrderRequest struct {
	Product         int64  `json:"product" binding:"required,gt=0"`
	Client          int64  `json:"client" binding:"required,gt=0"`
	Quantity        int    `json:"quantity"`
	ShippingAddress string `json:"shipping_address"`
}

// List обрабатывает GET /api/orders/?client_id=&creative_user_id=.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), models.OrderFilter{
		ClientID:       queryInt64(c, "client_id"),
		CreativeUserID: queryInt64(c, "creative_user_id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	response.Success(c, orders)
}

// Create обрабатывает POST /api/orders/.
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orders.Create(c.Request.Context(), service.CreateOrderInput{
		ProductID:       req.Product,
		ClientID:        req.Client,
		Quantity:        req.Quantity,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, order)
}

// Get обрабатывает GET /api/orders/:id/.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrOrderNotFound)
	if !ok {
		return
	}

	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, order)
}

type updateOrderRequest struct {
	Status          *string `json:"status"`
	ShippingAddress *string `json:"shipping_address"`
}

// Update обрабатывает PUT и PATCH /api/orders/:id/.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrOrderNotFound)
	if !ok {
		return
	}

	var req updateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orders.Update(c.Request.Context(), id, service.UpdateOrderInput{
		Status:          req.Status,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, order)
}

// Delete обрабатывает DELETE /api/orders/:id/.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrOrderNotFound)
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
