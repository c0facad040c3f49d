package dto

import "github.com/bengalbay/payserver/internal/domain/model"

// CreateOrderRequest carries the storefront's order parameters. Amount is in
// the smallest currency unit.
type CreateOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrderResponse returns the processor's order handle verbatim.
type CreateOrderResponse struct {
	Success bool               `json:"success"`
	Order   *model.OrderHandle `json:"order"`
}
