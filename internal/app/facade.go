package app

import (
	"context"

	"github.com/bengalbay/payserver/internal/domain/model"
	"github.com/bengalbay/payserver/internal/usecase"
)

// GatewayFacade aggregates the payment and ledger use cases behind the
// surface the HTTP handlers consume.
type GatewayFacade struct {
	payments *usecase.PaymentUseCase
	ledger   *usecase.LedgerUseCase
}

func NewGatewayFacade(payments *usecase.PaymentUseCase, ledger *usecase.LedgerUseCase) *GatewayFacade {
	return &GatewayFacade{payments: payments, ledger: ledger}
}

func (f *GatewayFacade) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.OrderHandle, error) {
	return f.payments.CreateOrder(ctx, req)
}

func (f *GatewayFacade) VerifyPayment(ctx context.Context, cb model.PaymentCallback) error {
	return f.payments.VerifyPayment(ctx, cb)
}

func (f *GatewayFacade) RecordOrder(ctx context.Context, record model.OrderRecord) error {
	return f.ledger.RecordOrder(ctx, record)
}

func (f *GatewayFacade) UpdatePaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus, paymentID string) error {
	return f.ledger.UpdatePaymentStatus(ctx, orderID, status, paymentID)
}

func (f *GatewayFacade) Orders(ctx context.Context) ([]model.OrderRecord, error) {
	return f.ledger.Orders(ctx)
}

func (f *GatewayFacade) LedgerStatus(ctx context.Context) (string, error) {
	return f.ledger.LedgerStatus(ctx)
}
