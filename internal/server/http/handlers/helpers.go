package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bengalbay/payserver/internal/adapter/razorpay"
	domainErrors "github.com/bengalbay/payserver/internal/domain/errors"
	"github.com/bengalbay/payserver/internal/server/http/dto"
)

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.ErrorResponse{Success: false, Error: msg})
}

// respondMappedError translates the domain error taxonomy into HTTP status
// codes and short client-facing messages. Nothing upstream of this function
// leaks into responses except the processor's own rejection description.
func respondMappedError(c *gin.Context, err error) {
	var validation *domainErrors.ValidationError
	var upstream *razorpay.UpstreamError

	switch {
	case errors.As(err, &validation):
		respondError(c, http.StatusBadRequest, validation.Error())
	case errors.Is(err, domainErrors.ErrSignatureMismatch):
		respondError(c, http.StatusBadRequest, "Invalid signature")
	case errors.Is(err, domainErrors.ErrInvalidAmount):
		respondError(c, http.StatusBadRequest, "Amount must be a positive integer in minor currency units")
	case errors.Is(err, domainErrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, domainErrors.ErrMultipleMatches):
		respondError(c, http.StatusConflict, "Multiple ledger rows match order id")
	case errors.Is(err, domainErrors.ErrLedgerDisabled), errors.Is(err, domainErrors.ErrLedgerUnavailable):
		respondError(c, http.StatusInternalServerError, "Order ledger unavailable")
	case errors.Is(err, domainErrors.ErrMisconfigured):
		respondError(c, http.StatusInternalServerError, "Payment service not configured")
	case errors.As(err, &upstream):
		respondError(c, http.StatusInternalServerError, upstream.Message)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
