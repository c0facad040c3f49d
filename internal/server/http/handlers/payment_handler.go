package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bengalbay/payserver/internal/domain/model"
	"github.com/bengalbay/payserver/internal/server/http/dto"
)

// PaymentHandler manages callback signature verification.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Verify handles POST /api/verify-payment.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.facade.VerifyPayment(c.Request.Context(), model.PaymentCallback{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		respondMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Payment verified successfully"})
}
