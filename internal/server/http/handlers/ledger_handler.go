package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bengalbay/payserver/internal/domain/model"
	"github.com/bengalbay/payserver/internal/server/http/dto"
)

// LedgerHandler manages the optional external order log endpoints.
type LedgerHandler struct {
	facade LedgerFacade
}

// NewLedgerHandler constructs LedgerHandler.
func NewLedgerHandler(facade LedgerFacade) *LedgerHandler {
	return &LedgerHandler{facade: facade}
}

// LogOrder handles POST /api/log-order.
func (h *LedgerHandler) LogOrder(c *gin.Context) {
	var req dto.LogOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.facade.RecordOrder(c.Request.Context(), req.ToRecord()); err != nil {
		respondMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Order logged successfully"})
}

// UpdateStatus handles POST /api/update-payment-status.
func (h *LedgerHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.facade.UpdatePaymentStatus(c.Request.Context(), req.OrderID, model.PaymentStatus(req.PaymentStatus), req.PaymentID)
	if err != nil {
		respondMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Payment status updated successfully"})
}

// List handles GET /api/orders.
func (h *LedgerHandler) List(c *gin.Context) {
	records, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondMappedError(c, err)
		return
	}

	orders := make([]dto.OrderRecordResponse, 0, len(records))
	for _, record := range records {
		orders = append(orders, dto.FromRecord(record))
	}

	c.JSON(http.StatusOK, dto.ListOrdersResponse{Success: true, Orders: orders, Count: len(orders)})
}

// Status handles GET /api/test-sheets.
func (h *LedgerHandler) Status(c *gin.Context) {
	title, err := h.facade.LedgerStatus(c.Request.Context())
	if err != nil {
		respondMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LedgerStatusResponse{
		Success:    true,
		Message:    "Ledger connection successful",
		SheetTitle: title,
	})
}
