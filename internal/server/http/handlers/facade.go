package handlers

import (
	"context"

	"github.com/bengalbay/payserver/internal/domain/model"
)

// PaymentFacade describes the payment lifecycle operations exposed via HTTP.
type PaymentFacade interface {
	CreateOrder(ctx context.Context, req model.OrderRequest) (*model.OrderHandle, error)
	VerifyPayment(ctx context.Context, cb model.PaymentCallback) error
}

// LedgerFacade provides order-log operations.
type LedgerFacade interface {
	RecordOrder(ctx context.Context, record model.OrderRecord) error
	UpdatePaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus, paymentID string) error
	Orders(ctx context.Context) ([]model.OrderRecord, error)
	LedgerStatus(ctx context.Context) (string, error)
}

// GatewayFacade aggregates the full set of operations used across handlers.
type GatewayFacade interface {
	PaymentFacade
	LedgerFacade
}
