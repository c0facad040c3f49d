package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bengalbay/payserver/internal/domain/model"
	"github.com/bengalbay/payserver/internal/server/http/dto"
)

// OrderHandler manages processor order creation.
type OrderHandler struct {
	facade PaymentFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade PaymentFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/create-razorpay-order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	handle, err := h.facade.CreateOrder(c.Request.Context(), model.OrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		respondMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{Success: true, Order: handle})
}
